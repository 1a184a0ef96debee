package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/yamtik/internal/domain/ticket"
	"github.com/rpggio/yamtik/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. Errors it does not
// recognise are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ticket.ErrNotFound):
		return &APIError{Code: "TICKET_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call list_tickets with filter all to see ids"}
	case errors.Is(err, ticket.ErrInvalidArgument):
		return &APIError{Code: "INVALID_ARGUMENT", Message: err.Error(), RecoveryHint: "Check urgency, filter and sort values"}
	case errors.Is(err, repository.ErrDecodeFailure):
		return &APIError{Code: "STORE_UNREADABLE", Message: err.Error(), RecoveryHint: "Fix the tickets file by hand"}
	case errors.Is(err, repository.ErrInvalidFormat):
		return &APIError{Code: "INVALID_STORE_PATH", Message: err.Error()}
	default:
		return err
	}
}
