package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a valid token")
	})
	guard := Middleware(tokens)(next)

	for _, header := range []string{"", "Bearer ", "Bearer garbage", "Basic abc"} {
		req := httptest.NewRequest("GET", "/api/admin/applications", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestMiddlewarePassesClaimsThrough(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	raw, err := tokens.Sign(Claims{AdminID: 3, Email: "rh@cadeco.cd", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	var got Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	})
	req := httptest.NewRequest("GET", "/api/admin/applications", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	Middleware(tokens)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.AdminID != 3 || got.Email != "rh@cadeco.cd" || got.Role != "ADMIN" {
		t.Fatalf("claims not propagated: %+v", got)
	}
}
