// Package token issues and parses the signed bearer tokens carried by
// clients. Tokens are self-contained: subject, role names and the validity
// window are all encoded in the claims and signed with a process-wide
// symmetric secret.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fenixAlex88/technical-support/internal/domain"
)

type Codec struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewCodec(secret string, expiry time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}
	if expiry <= 0 {
		return nil, errors.New("token expiry must be positive")
	}
	return &Codec{secret: []byte(secret), expiry: expiry, now: time.Now}, nil
}

type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

func (c *Codec) Issue(user domain.User) (string, error) {
	now := c.now()
	claims := tokenClaims{
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.secret)
}

func (c *Codec) Parse(tokenString string) (*domain.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS512 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	out := &domain.TokenClaims{
		Subject: claims.Subject,
		Roles:   claims.Roles,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
