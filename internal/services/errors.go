package services

import "errors"

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInternal wraps storage and other unexpected failures.
	ErrInternal = errors.New("internal error")
)
