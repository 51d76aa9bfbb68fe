package repository

import (
	"context"
	"sync"
	"time"

	"safeher/customerrors"
	"safeher/model"
)

// MemoryUserRepository is an in-memory UserRepository used by tests and
// local development without a MongoDB instance.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]model.User
}

func NewMemoryRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]model.User)}
}

func (r *MemoryUserRepository) FindByPhone(_ context.Context, phoneNumber string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[phoneNumber]
	if !ok {
		return nil, nil
	}
	copied := user
	copied.Friends = append([]model.Friend(nil), user.Friends...)
	return &copied, nil
}

func (r *MemoryUserRepository) Insert(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.PhoneNumber]; ok {
		return customerrors.ErrUserAlreadyExists
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Friends == nil {
		user.Friends = []model.Friend{}
	}
	r.users[user.PhoneNumber] = *user
	return nil
}

func (r *MemoryUserRepository) SetPin(_ context.Context, phoneNumber, pinHash string) error {
	return r.patch(phoneNumber, func(u *model.User) { u.Pin = pinHash })
}

func (r *MemoryUserRepository) SetName(_ context.Context, phoneNumber, name string) error {
	return r.patch(phoneNumber, func(u *model.User) { u.Name = name })
}

func (r *MemoryUserRepository) AppendFriend(_ context.Context, phoneNumber string, friend model.Friend) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[phoneNumber]
	if !ok {
		return customerrors.ErrUserNotFound
	}
	for _, f := range user.Friends {
		if f.PhoneNumber == friend.PhoneNumber {
			return customerrors.ErrDuplicateFriend
		}
	}
	user.Friends = append(user.Friends, friend)
	user.UpdatedAt = time.Now().UTC()
	r.users[phoneNumber] = user
	return nil
}

func (r *MemoryUserRepository) Friends(ctx context.Context, phoneNumber string) ([]model.Friend, error) {
	user, err := r.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, customerrors.ErrUserNotFound
	}
	if user.Friends == nil {
		return []model.Friend{}, nil
	}
	return user.Friends, nil
}

func (r *MemoryUserRepository) patch(phoneNumber string, apply func(*model.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[phoneNumber]
	if !ok {
		return customerrors.ErrUserNotFound
	}
	apply(&user)
	user.UpdatedAt = time.Now().UTC()
	r.users[phoneNumber] = user
	return nil
}
