// Package identity is the gateway's client for the auth service's token
// validation endpoint. Domain rejections (invalid token, unknown user)
// surface as the matching sentinel; timeouts, connection failures and
// unexpected statuses surface as ErrAuthUnavailable so the caller can tell
// rejection from infrastructure failure.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fenixAlex88/technical-support/internal/domain"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.HTTPClient = client
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.HTTPClient.Timeout = timeout
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type validateRequest struct {
	Token string `json:"token"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) ValidateToken(ctx context.Context, token string) (*domain.Identity, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("%w: auth service base URL is required", domain.ErrAuthUnavailable)
	}
	body, err := json.Marshal(validateRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("marshal validate request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/internal/validate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var identity domain.Identity
		if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
			return nil, fmt.Errorf("%w: decode response: %v", domain.ErrAuthUnavailable, err)
		}
		return &identity, nil
	}

	var failure errorBody
	if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil {
		switch failure.Code {
		case "INVALID_TOKEN":
			return nil, domain.ErrInvalidToken
		case "USER_NOT_FOUND":
			return nil, domain.ErrUserNotFound
		}
	}
	return nil, fmt.Errorf("%w: status %d", domain.ErrAuthUnavailable, resp.StatusCode)
}
