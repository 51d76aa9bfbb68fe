package customerrors

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrIncorrectPin       = errors.New("incorrect PIN")
	ErrDuplicateFriend    = errors.New("friend already added")
	ErrInvalidOtp         = errors.New("invalid OTP")
)
