package gateway

import "testing"

func TestParseExemptPaths(t *testing.T) {
	paths := ParseExemptPaths(" /auth/login , /auth/register ,, ")
	if len(paths) != 2 || paths[0] != "/auth/login" || paths[1] != "/auth/register" {
		t.Fatalf("unexpected paths: %v", paths)
	}
	if got := ParseExemptPaths(""); len(got) != 0 {
		t.Fatalf("expected no paths for empty input, got %v", got)
	}
}

func TestParseRouteRoles(t *testing.T) {
	rules, err := ParseRouteRoles("/auth/users=ADMIN,/tickets=USER|SUPPORT")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Prefix != "/auth/users" || len(rules[0].Roles) != 1 || rules[0].Roles[0] != "ADMIN" {
		t.Fatalf("unexpected rule: %+v", rules[0])
	}
	if rules[1].Prefix != "/tickets" || len(rules[1].Roles) != 2 {
		t.Fatalf("unexpected rule: %+v", rules[1])
	}

	if _, err := ParseRouteRoles("/broken"); err == nil {
		t.Fatalf("expected error for entry without roles")
	}
	if _, err := ParseRouteRoles("/broken=|"); err == nil {
		t.Fatalf("expected error for empty role list")
	}
}

func TestParseRouteBackends(t *testing.T) {
	backends, err := ParseRouteBackends("/auth=http://auth:8081,/tickets=http://tickets:8082")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(backends) != 2 {
		t.Fatalf("expected 2 backends, got %d", len(backends))
	}
	if backends[0].Prefix != "/auth" || backends[0].Target.Host != "auth:8081" {
		t.Fatalf("unexpected backend: %+v", backends[0])
	}

	if _, err := ParseRouteBackends("/auth=not a url"); err == nil {
		t.Fatalf("expected error for invalid url")
	}
	if _, err := ParseRouteBackends("/auth"); err == nil {
		t.Fatalf("expected error for missing url")
	}
}

func TestMatchBackendLongestPrefix(t *testing.T) {
	backends, err := ParseRouteBackends("/=http://fallback:80,/tickets=http://tickets:8082")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	backend, ok := MatchBackend(backends, "/tickets/1")
	if !ok || backend.Target.Host != "tickets:8082" {
		t.Fatalf("expected tickets backend, got %+v", backend)
	}
	backend, ok = MatchBackend(backends, "/photos/1")
	if !ok || backend.Target.Host != "fallback:80" {
		t.Fatalf("expected fallback backend, got %+v", backend)
	}
	if _, ok := MatchBackend(nil, "/anything"); ok {
		t.Fatalf("expected no match without backends")
	}
}
