package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist for the given key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a uniqueness constraint rejects a write.
	ErrDuplicate = errors.New("record already exists")
)
