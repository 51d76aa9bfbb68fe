package service

import (
	"context"
	"fmt"

	"safeher/customerrors"
	"safeher/model"
	"safeher/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	SavePin(ctx context.Context, phoneNumber, pin string) error
	VerifyPin(ctx context.Context, phoneNumber, pin string) error
	SaveName(ctx context.Context, phoneNumber, name string) error
	AddFriend(ctx context.Context, phoneNumber string, friend model.Friend) error
	GetFriends(ctx context.Context, phoneNumber string) ([]model.Friend, error)
}

type UserServiceImpl struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &UserServiceImpl{users: users}
}

// SavePin overwrites the stored PIN hash. Other fields are untouched.
func (s *UserServiceImpl) SavePin(ctx context.Context, phoneNumber, pin string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	return s.users.SetPin(ctx, phoneNumber, string(hashed))
}

func (s *UserServiceImpl) VerifyPin(ctx context.Context, phoneNumber, pin string) error {
	user, err := s.users.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return err
	}
	if user == nil {
		return customerrors.ErrUserNotFound
	}

	if user.Pin == "" {
		return customerrors.ErrIncorrectPin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Pin), []byte(pin)); err != nil {
		return customerrors.ErrIncorrectPin
	}
	return nil
}

func (s *UserServiceImpl) SaveName(ctx context.Context, phoneNumber, name string) error {
	return s.users.SetName(ctx, phoneNumber, name)
}

func (s *UserServiceImpl) AddFriend(ctx context.Context, phoneNumber string, friend model.Friend) error {
	return s.users.AppendFriend(ctx, phoneNumber, friend)
}

// GetFriends never returns nil; an account without friends gets an empty
// list so the app can render it directly.
func (s *UserServiceImpl) GetFriends(ctx context.Context, phoneNumber string) ([]model.Friend, error) {
	friends, err := s.users.Friends(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if friends == nil {
		friends = []model.Friend{}
	}
	return friends, nil
}
