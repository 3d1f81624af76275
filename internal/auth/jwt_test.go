package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	in := Claims{AdminID: 7, Email: "admin@example.org", Role: "ADMIN"}

	raw, err := tokens.Sign(in)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	out, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if out != in {
		t.Fatalf("claims changed in transit: %+v != %+v", out, in)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)
	raw, err := tokens.Sign(Claims{AdminID: 1, Email: "a@b.c", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokens("secret-a", time.Hour).Sign(Claims{AdminID: 1, Email: "a@b.c", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := NewTokens("secret-b", time.Hour).Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyRejectsTampered(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	raw, err := tokens.Sign(Claims{AdminID: 1, Email: "a@b.c", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	parts := strings.Split(raw, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	if _, err := tokens.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestNewTokensDefaultTTL(t *testing.T) {
	tokens := NewTokens("s", 0)
	if tokens.ttl != 7*24*time.Hour {
		t.Fatalf("expected 7-day default ttl, got %v", tokens.ttl)
	}
}
