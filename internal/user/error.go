package user

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid company code or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrFailedSaveUser     = errors.New("failed to save user")
)
