package service

import (
	"context"
	"fmt"

	"safeher/auth"
	"safeher/customerrors"
	"safeher/model"
	"safeher/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService drives the registration and login flow: existence check first,
// then credential creation or verification, then token issuance.
type AuthService interface {
	CheckUserExists(ctx context.Context, phoneNumber string) (bool, error)
	Register(ctx context.Context, phoneNumber, password string) (string, error)
	Login(ctx context.Context, phoneNumber, password string) (string, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &AuthServiceImpl{users: users, tokens: tokens}
}

func (s *AuthServiceImpl) CheckUserExists(ctx context.Context, phoneNumber string) (bool, error) {
	user, err := s.users.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// Register creates the account and returns a fresh session token. An
// existing record always wins: the up-front check gives the common case a
// clean error, and the conditional insert closes the race window behind it.
func (s *AuthServiceImpl) Register(ctx context.Context, phoneNumber, password string) (string, error) {
	existing, err := s.users.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", customerrors.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		PhoneNumber: phoneNumber,
		Password:    string(hashed),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Generate(phoneNumber)
}

// Login verifies the password and issues a fresh token. Earlier tokens stay
// valid until they expire on their own.
func (s *AuthServiceImpl) Login(ctx context.Context, phoneNumber, password string) (string, error) {
	user, err := s.users.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", customerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", customerrors.ErrInvalidCredentials
	}

	return s.tokens.Generate(phoneNumber)
}
