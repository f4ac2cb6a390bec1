package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.JWTExpiry() != time.Hour {
		t.Fatalf("expected default expiry 1h, got %v", cfg.JWTExpiry())
	}
	if cfg.CacheTTL() != 5*time.Minute {
		t.Fatalf("expected default cache ttl 5m, got %v", cfg.CacheTTL())
	}
	if cfg.AuthTimeout() != 5*time.Second {
		t.Fatalf("expected default auth timeout 5s, got %v", cfg.AuthTimeout())
	}
	if cfg.ExemptPaths != "/auth/login,/auth/register" {
		t.Fatalf("unexpected default exemptions: %q", cfg.ExemptPaths)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY_MINUTES", "15")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("AUTH_TIMEOUT_SECONDS", "2")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9999" || cfg.JWTSecret != "s3cret" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.JWTExpiry() != 15*time.Minute {
		t.Fatalf("expected 15m expiry, got %v", cfg.JWTExpiry())
	}
	if cfg.CacheTTL() != 30*time.Second {
		t.Fatalf("expected 30s ttl, got %v", cfg.CacheTTL())
	}
	if cfg.AuthTimeout() != 2*time.Second {
		t.Fatalf("expected 2s timeout, got %v", cfg.AuthTimeout())
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("expected redis addr, got %q", cfg.RedisAddr)
	}
}

func TestEnvIntDefaultRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_EXPIRY_MINUTES", "not-a-number")
	if cfg := FromEnv(); cfg.JWTExpiryMinutes != 60 {
		t.Fatalf("expected default on parse failure, got %d", cfg.JWTExpiryMinutes)
	}
	t.Setenv("JWT_EXPIRY_MINUTES", "-5")
	if cfg := FromEnv(); cfg.JWTExpiryMinutes != 60 {
		t.Fatalf("expected default on non-positive value, got %d", cfg.JWTExpiryMinutes)
	}
}
