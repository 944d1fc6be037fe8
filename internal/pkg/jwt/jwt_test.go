package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("secret", time.Minute)
	token, expiresAt, err := svc.GenerateAccessToken("admin@zenorawellness.com", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %s", expiresAt)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "admin@zenorawellness.com" || claims.Role != "admin" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestValidateRejectsExpiredAndForeignTokens(t *testing.T) {
	svc := NewService("secret", time.Minute)
	token, _, _ := svc.GenerateAccessToken("admin@zenorawellness.com", "admin")

	svc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := svc.ValidateAccessToken(token); err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}

	other := NewService("other-secret", time.Minute)
	if _, err := other.ValidateAccessToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
