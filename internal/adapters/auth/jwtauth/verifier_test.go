package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifier_RoundTrip(t *testing.T) {
	v := NewVerifier("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub":   "user-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %q", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestVerifier_ClaimIdLegacy(t *testing.T) {
	// Tokens viejos del servicio de usuarios traían `id` en vez de `sub`.
	v := NewVerifier("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"id":  "user-2",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-2" {
		t.Fatalf("expected user-2, got %q", claims.UserID)
	}
}

func TestVerifier_SecretEquivocado(t *testing.T) {
	v := NewVerifier("right-secret")

	token := signToken(t, "wrong-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
}

func TestVerifier_TokenExpirado(t *testing.T) {
	v := NewVerifier("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestVerifier_TokenVacio(t *testing.T) {
	v := NewVerifier("test-secret")

	if _, err := v.Verify(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestVerifier_SinUserID(t *testing.T) {
	v := NewVerifier("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); err == nil {
		t.Fatalf("expected error when claims carry no user id")
	}
}
