package service

import (
	"context"
	"errors"
	"testing"

	"safeher/customerrors"
	"safeher/model"
	"safeher/repository"
)

func newUserService(t *testing.T, phones ...string) (UserService, *repository.MemoryUserRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	for _, phone := range phones {
		if err := repo.Insert(context.Background(), &model.User{PhoneNumber: phone, Password: "x"}); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	return NewUserService(repo), repo
}

func TestSavePinAndVerify(t *testing.T) {
	svc, repo := newUserService(t, "9876543210")
	ctx := context.Background()

	if err := svc.SavePin(ctx, "9876543210", "4321"); err != nil {
		t.Fatalf("save pin: %v", err)
	}

	user, _ := repo.FindByPhone(ctx, "9876543210")
	if user.Pin == "" || user.Pin == "4321" {
		t.Fatal("pin should be stored hashed")
	}

	if err := svc.VerifyPin(ctx, "9876543210", "4321"); err != nil {
		t.Fatalf("verify pin: %v", err)
	}

	if err := svc.VerifyPin(ctx, "9876543210", "0000"); !errors.Is(err, customerrors.ErrIncorrectPin) {
		t.Fatalf("expected ErrIncorrectPin, got %v", err)
	}
}

func TestSavePinOverwrites(t *testing.T) {
	svc, _ := newUserService(t, "9876543210")
	ctx := context.Background()

	if err := svc.SavePin(ctx, "9876543210", "1111"); err != nil {
		t.Fatalf("save pin: %v", err)
	}
	if err := svc.SavePin(ctx, "9876543210", "2222"); err != nil {
		t.Fatalf("overwrite pin: %v", err)
	}

	if err := svc.VerifyPin(ctx, "9876543210", "1111"); !errors.Is(err, customerrors.ErrIncorrectPin) {
		t.Fatalf("old pin should no longer verify, got %v", err)
	}
	if err := svc.VerifyPin(ctx, "9876543210", "2222"); err != nil {
		t.Fatalf("new pin should verify: %v", err)
	}
}

func TestVerifyPinUnknownUser(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.VerifyPin(context.Background(), "1111111111", "1234")
	if !errors.Is(err, customerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestVerifyPinBeforeSave(t *testing.T) {
	svc, _ := newUserService(t, "9876543210")

	err := svc.VerifyPin(context.Background(), "9876543210", "1234")
	if !errors.Is(err, customerrors.ErrIncorrectPin) {
		t.Fatalf("expected ErrIncorrectPin for unset pin, got %v", err)
	}
}

func TestSaveName(t *testing.T) {
	svc, repo := newUserService(t, "9876543210")
	ctx := context.Background()

	if err := svc.SaveName(ctx, "9876543210", "Asha"); err != nil {
		t.Fatalf("save name: %v", err)
	}

	user, _ := repo.FindByPhone(ctx, "9876543210")
	if user.Name != "Asha" {
		t.Fatalf("expected name Asha, got %q", user.Name)
	}
}

func TestAddFriendRejectsDuplicate(t *testing.T) {
	svc, _ := newUserService(t, "9876543210")
	ctx := context.Background()

	friend := model.Friend{PhoneNumber: "9123456789", IsSOS: true, Name: "Meera"}
	if err := svc.AddFriend(ctx, "9876543210", friend); err != nil {
		t.Fatalf("add friend: %v", err)
	}

	err := svc.AddFriend(ctx, "9876543210", model.Friend{PhoneNumber: "9123456789"})
	if !errors.Is(err, customerrors.ErrDuplicateFriend) {
		t.Fatalf("expected ErrDuplicateFriend, got %v", err)
	}

	friends, err := svc.GetFriends(ctx, "9876543210")
	if err != nil {
		t.Fatalf("get friends: %v", err)
	}
	if len(friends) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(friends))
	}
	if !friends[0].IsSOS || friends[0].Name != "Meera" {
		t.Fatalf("first add should win: %+v", friends[0])
	}
}

func TestGetFriendsNeverNil(t *testing.T) {
	svc, _ := newUserService(t, "9876543210")

	friends, err := svc.GetFriends(context.Background(), "9876543210")
	if err != nil {
		t.Fatalf("get friends: %v", err)
	}
	if friends == nil {
		t.Fatal("friends must be an empty list, not nil")
	}
	if len(friends) != 0 {
		t.Fatalf("expected no friends, got %d", len(friends))
	}
}
