package cart

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrInvalidQuantity      = errors.New("invalid cart quantity")

	ErrFailedLoadSession = errors.New("failed to load session state")
	ErrFailedSaveSession = errors.New("failed to save session state")
)
