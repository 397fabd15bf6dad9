package service

import "errors"

// Domain errors shared by the services.
var (
	ErrEmptyPassword   = errors.New("password is empty")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrInvalidToken    = errors.New("invalid token")
)
