package apperrors

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUnknownCategory    = errors.New("unknown category value")
	ErrInvalidInput       = errors.New("invalid input")
)
