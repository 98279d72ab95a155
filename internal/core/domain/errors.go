package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("every registration field is required")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrPostNotFound       = errors.New("post not found")
	ErrDuplicateTitle     = errors.New("a post with this title already exists")
	ErrForbidden          = errors.New("access forbidden")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrSessionNotFound    = errors.New("session not found")
)
