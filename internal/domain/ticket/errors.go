package ticket

import "errors"

var (
	// ErrInvalidArgument indicates an unrecognized enum token or a malformed value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound indicates the requested ticket id doesn't exist.
	ErrNotFound = errors.New("ticket not found")
	// ErrInvalidTicket indicates a stored ticket breaks a model invariant.
	ErrInvalidTicket = errors.New("invalid ticket")
)
