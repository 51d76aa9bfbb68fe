package auth

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Generate("9876543210")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.PhoneNumber != "9876543210" {
		t.Fatalf("expected phone 9876543210, got %s", claims.PhoneNumber)
	}
	if claims.UserID != "9876543210" {
		t.Fatalf("expected userId 9876543210, got %s", claims.UserID)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 59*time.Minute || ttl > time.Hour {
		t.Fatalf("expected ~1h lifetime, got %s", ttl)
	}
}

func TestValidateRejectsTamperedSignature(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Generate("9876543210")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Flip a byte inside the signature segment.
	idx := strings.LastIndex(token, ".") + 1
	sig := []byte(token[idx:])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := token[:idx] + string(sig)

	if _, err := svc.Validate(tampered); err == nil {
		t.Fatal("expected tampered token to fail validation")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Generate("9876543210")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewTokenService("secret-b").Validate(token); err == nil {
		t.Fatal("expected token signed with another secret to fail")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret")
	svc.lifetime = -time.Minute

	token, err := svc.Generate("9876543210")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")
	if _, err := svc.Validate("not-a-token"); err == nil {
		t.Fatal("expected malformed token to fail validation")
	}
}
