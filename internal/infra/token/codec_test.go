package token

import (
	"errors"
	"testing"
	"time"

	"github.com/fenixAlex88/technical-support/internal/domain"
)

func newTestCodec(t *testing.T, expiry time.Duration) *Codec {
	t.Helper()
	codec, err := NewCodec("test-secret", expiry)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	return codec
}

func TestIssueParseRoundtrip(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	user := domain.User{Name: "alice", Roles: []string{"USER", "ADMIN"}}

	signed, err := codec.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := codec.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "USER" || claims.Roles[1] != "ADMIN" {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt) {
		t.Fatalf("expiry %v not after issued-at %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestParseExpiredToken(t *testing.T) {
	codec := newTestCodec(t, time.Minute)
	issued := time.Now().Add(-2 * time.Minute)
	codec.now = func() time.Time { return issued }
	signed, err := codec.Issue(domain.User{Name: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	codec.now = time.Now
	if _, err := codec.Parse(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	signed, err := codec.Issue(domain.User{Name: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other, err := NewCodec("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	if _, err := other.Parse(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for forged signature, got %v", err)
	}
}

func TestParseMalformedToken(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := codec.Parse(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestNewCodecRequiresSecretAndExpiry(t *testing.T) {
	if _, err := NewCodec("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewCodec("secret", 0); err == nil {
		t.Fatalf("expected error for zero expiry")
	}
}
