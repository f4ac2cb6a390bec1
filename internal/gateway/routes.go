package gateway

import (
	"fmt"
	"net/url"
	"strings"
)

// Backend maps a path prefix to the downstream service that serves it.
type Backend struct {
	Prefix string
	Target *url.URL
}

// ParseExemptPaths splits the comma-separated exemption list, preserving
// configuration order.
func ParseExemptPaths(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseRouteRoles parses "prefix=ROLE|ROLE,prefix=ROLE" into route rules.
func ParseRouteRoles(csv string) ([]RouteRule, error) {
	var rules []RouteRule
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prefix, rolesRaw, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("route role entry %q must be prefix=ROLE|ROLE", part)
		}
		var roles []string
		for _, role := range strings.Split(rolesRaw, "|") {
			if trimmed := strings.TrimSpace(role); trimmed != "" {
				roles = append(roles, trimmed)
			}
		}
		if len(roles) == 0 {
			return nil, fmt.Errorf("route role entry %q names no roles", part)
		}
		rules = append(rules, RouteRule{Prefix: strings.TrimSpace(prefix), Roles: roles})
	}
	return rules, nil
}

// ParseRouteBackends parses "prefix=http://host,prefix=http://host" into
// backend routes.
func ParseRouteBackends(csv string) ([]Backend, error) {
	var backends []Backend
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prefix, rawURL, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("backend entry %q must be prefix=url", part)
		}
		target, err := url.Parse(strings.TrimSpace(rawURL))
		if err != nil || target.Scheme == "" || target.Host == "" {
			return nil, fmt.Errorf("backend entry %q has an invalid url", part)
		}
		backends = append(backends, Backend{Prefix: strings.TrimSpace(prefix), Target: target})
	}
	return backends, nil
}

// MatchBackend returns the backend with the longest prefix matching path.
func MatchBackend(backends []Backend, path string) (*Backend, bool) {
	var best *Backend
	for i := range backends {
		backend := &backends[i]
		if !strings.HasPrefix(path, backend.Prefix) {
			continue
		}
		if best == nil || len(backend.Prefix) > len(best.Prefix) {
			best = backend
		}
	}
	return best, best != nil
}
