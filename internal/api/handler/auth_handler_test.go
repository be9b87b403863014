package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/coreledger/banking-api/internal/core/domain"
)

func TestAuthHandlerLogin(t *testing.T) {
	svc := &stubAuthService{
		LoginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "ada@example.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials %q/%q", email, password)
			}
			return "signed-token", &domain.User{ID: 1, Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
	if resp.User == nil || resp.User.Email != "ada@example.com" {
		t.Fatalf("unexpected user %+v", resp.User)
	}
}

func TestAuthHandlerLoginBadCredentials(t *testing.T) {
	svc := &stubAuthService{
		LoginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandlerLoginValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		LoginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			t.Fatal("service reached despite invalid payload")
			return "", nil, nil
		},
	})

	for _, body := range []string{
		`{}`,
		`{"email":"not-an-email","password":"s3cret"}`,
		`{"email":"ada@example.com"}`,
	} {
		c, _ := newTestContext(http.MethodPost, "/auth/login", body)
		err := h.Login(c)
		if err == nil {
			t.Fatalf("body %s: expected error", body)
		}
	}
}
