package ticket

import "context"

// Repository loads and saves the whole ticket collection. There are no
// partial writes: Save replaces everything Load returned.
type Repository interface {
	Load(ctx context.Context) ([]Ticket, error)
	Save(ctx context.Context, tickets []Ticket) error
}
