package service

import "errors"

var (
	// ErrEmailAlreadyExists is returned when registration hits the unique
	// email index.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrEmailMismatch is returned when a self-update names a different
	// email than the authenticated principal.
	ErrEmailMismatch = errors.New("email does not match authenticated user")

	ErrProfilePicExists   = errors.New("profile picture already exists")
	ErrProfilePicNotFound = errors.New("profile picture not found")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
	ErrUserNotFound = errors.New("user not found")
)
