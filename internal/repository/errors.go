package repository

import "errors"

var (
	// ErrInvalidFormat is returned when a store path lacks the required extension
	ErrInvalidFormat = errors.New("invalid store format")

	// ErrDecodeFailure is returned when stored content cannot be decoded
	ErrDecodeFailure = errors.New("decode failure")
)
