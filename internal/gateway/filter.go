// Package gateway implements the ingress authorization filter: every
// inbound request is exempt-checked, token-extracted, validated against the
// auth service and role-checked before it is forwarded downstream with
// identity headers attached. Authorization is fail-closed: any validation
// failure, including an unreachable auth service, rejects the request.
package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/fenixAlex88/technical-support/internal/domain"
)

// TokenValidator is the remote identity boundary the filter calls.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*domain.Identity, error)
}

type Outcome int

const (
	OutcomeForward Outcome = iota
	OutcomeReject
)

// Decision is the per-request result of the filter pipeline. It lives only
// for the duration of one request.
type Decision struct {
	Outcome  Outcome
	Status   int
	Reason   string
	Identity *domain.Identity
}

type RouteRule struct {
	Prefix string
	Roles  []string
}

type Filter struct {
	exemptPrefixes []string
	routeRules     []RouteRule
	validator      TokenValidator
}

func NewFilter(exemptPrefixes []string, routeRules []RouteRule, validator TokenValidator) *Filter {
	return &Filter{
		exemptPrefixes: exemptPrefixes,
		routeRules:     routeRules,
		validator:      validator,
	}
}

// Evaluate runs the decision pipeline for one request. It performs no I/O
// besides the remote validation call and never mutates shared state.
func (f *Filter) Evaluate(ctx context.Context, path, authHeader string) Decision {
	if f.isExempt(path) {
		return Decision{Outcome: OutcomeForward}
	}

	token, ok := extractBearer(authHeader)
	if !ok {
		return Decision{Outcome: OutcomeReject, Status: http.StatusUnauthorized, Reason: "unauthorized"}
	}

	identity, err := f.validator.ValidateToken(ctx, token)
	if err != nil {
		return Decision{Outcome: OutcomeReject, Status: http.StatusUnauthorized, Reason: "unauthorized"}
	}

	if required := f.requiredRoles(path); len(required) > 0 && !rolesIntersect(identity.Roles, required) {
		return Decision{Outcome: OutcomeReject, Status: http.StatusForbidden, Reason: "forbidden"}
	}

	return Decision{Outcome: OutcomeForward, Identity: identity}
}

func (f *Filter) isExempt(path string) bool {
	for _, prefix := range f.exemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// requiredRoles returns the role list of the longest matching route rule,
// so a more specific prefix overrides a broader one.
func (f *Filter) requiredRoles(path string) []string {
	var best *RouteRule
	for i := range f.routeRules {
		rule := &f.routeRules[i]
		if !strings.HasPrefix(path, rule.Prefix) {
			continue
		}
		if best == nil || len(rule.Prefix) > len(best.Prefix) {
			best = rule
		}
	}
	if best == nil {
		return nil
	}
	return best.Roles
}

func extractBearer(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return token, token != ""
}

func rolesIntersect(held, required []string) bool {
	for _, have := range held {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}
