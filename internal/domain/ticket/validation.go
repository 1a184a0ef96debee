package ticket

import (
	"fmt"
	"strings"
)

// ValidateNew validates the fields required to create a ticket.
func ValidateNew(id int, urgency Urgency, title string) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidArgument, id)
	}
	if !urgency.Valid() {
		return fmt.Errorf("%w: unknown urgency %q", ErrInvalidArgument, urgency)
	}
	// Whitespace-only titles count as empty.
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidArgument)
	}
	return nil
}

// ValidateCollection checks the invariants a stored collection must hold:
// positive unique ids, every required field set, and a closed date present
// exactly when closed. Missing or null keys decode to zero values, so this
// is where they are caught.
func ValidateCollection(tickets []Ticket) error {
	seen := make(map[int]struct{}, len(tickets))
	for i, t := range tickets {
		if t.ID <= 0 {
			return fmt.Errorf("%w: entry %d has non-positive id %d", ErrInvalidTicket, i, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidTicket, t.ID)
		}
		seen[t.ID] = struct{}{}
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("%w: ticket %d has no title", ErrInvalidTicket, t.ID)
		}
		if !t.Urgency.Valid() {
			return fmt.Errorf("%w: ticket %d has urgency %q", ErrInvalidTicket, t.ID, t.Urgency)
		}
		if !t.Status.Valid() {
			return fmt.Errorf("%w: ticket %d has status %q", ErrInvalidTicket, t.ID, t.Status)
		}
		if t.Created.IsZero() {
			return fmt.Errorf("%w: ticket %d has no created date", ErrInvalidTicket, t.ID)
		}
		if t.Closed != nil && t.Closed.IsZero() {
			return fmt.Errorf("%w: ticket %d has an empty closed date", ErrInvalidTicket, t.ID)
		}
		if t.IsClosed() != (t.Closed != nil) {
			return fmt.Errorf("%w: ticket %d has status %q but closed date %v", ErrInvalidTicket, t.ID, t.Status, t.Closed)
		}
	}
	return nil
}
