package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRoleNotFound       = errors.New("role not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAuthUnavailable    = errors.New("auth service unavailable")
)
