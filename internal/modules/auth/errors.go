package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrNotFound           = errors.New("user not found")
)
