package mocks

import (
	"context"

	"github.com/rpggio/yamtik/internal/domain/ticket"
	"github.com/stretchr/testify/mock"
)

// TicketRepository is a mock for ticket.Repository.
type TicketRepository struct {
	mock.Mock
}

var _ ticket.Repository = (*TicketRepository)(nil)

// Load returns the tickets and error configured with On("Load", ctx).
func (m *TicketRepository) Load(ctx context.Context) ([]ticket.Ticket, error) {
	args := m.Called(ctx)
	if tickets, ok := args.Get(0).([]ticket.Ticket); ok {
		return tickets, args.Error(1)
	}
	return nil, args.Error(1)
}

// Save records the saved collection and returns the configured error.
func (m *TicketRepository) Save(ctx context.Context, tickets []ticket.Ticket) error {
	args := m.Called(ctx, tickets)
	return args.Error(0)
}
