package service

import (
	"context"
	"errors"
	"testing"

	"safeher/auth"
	"safeher/customerrors"
	"safeher/repository"
)

func newAuthService() (AuthService, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret")
	return NewAuthService(repository.NewMemoryRepository(), tokens), tokens
}

func TestRegisterThenLogin(t *testing.T) {
	svc, tokens := newAuthService()
	ctx := context.Background()

	exists, err := svc.CheckUserExists(ctx, "9876543210")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if exists {
		t.Fatal("expected fresh phone number to not exist")
	}

	regToken, err := svc.Register(ctx, "9876543210", "1234")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := tokens.Validate(regToken); err != nil {
		t.Fatalf("registration token should verify: %v", err)
	}

	exists, err = svc.CheckUserExists(ctx, "9876543210")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !exists {
		t.Fatal("expected registered phone number to exist")
	}

	loginToken, err := svc.Login(ctx, "9876543210", "1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.Validate(loginToken)
	if err != nil {
		t.Fatalf("login token should verify: %v", err)
	}
	if claims.PhoneNumber != "9876543210" {
		t.Fatalf("token scoped to wrong phone: %s", claims.PhoneNumber)
	}
}

func TestRegisterExistingUserFails(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "9876543210", "1234"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(ctx, "9876543210", "another-secret")
	if !errors.Is(err, customerrors.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "9876543210", "1234"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "9876543210", "9999"); !errors.Is(err, customerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Login(context.Background(), "1111111111", "1234")
	if !errors.Is(err, customerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStoredPasswordIsHashed(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewAuthService(repo, auth.NewTokenService("test-secret"))
	ctx := context.Background()

	if _, err := svc.Register(ctx, "9876543210", "1234"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := repo.FindByPhone(ctx, "9876543210")
	if err != nil || user == nil {
		t.Fatalf("find: %v", err)
	}
	if user.Password == "1234" {
		t.Fatal("password stored in plaintext")
	}
}
