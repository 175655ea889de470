package service

import "errors"

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateUsername is returned when registering an already-taken username.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the identity does not own the post it is
	// trying to mutate.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation is returned when a required field is missing or empty.
	ErrValidation = errors.New("validation failed")
)
