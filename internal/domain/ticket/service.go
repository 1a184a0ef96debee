package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service runs one load, compute, optional save cycle per call.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp created and closed dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new ticket service. A nil logger discards output.
func NewService(repo Repository, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{repo: repo, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRequest describes a ticket creation request.
type CreateRequest struct {
	Urgency     Urgency
	Title       string
	Description string
}

// Create appends a new open ticket and persists the collection.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Ticket, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	t, err := NewAt(AllocateID(tickets), req.Urgency, req.Title, req.Description, s.now())
	if err != nil {
		return nil, err
	}
	tickets = append(tickets, *t)

	if err := s.repo.Save(ctx, tickets); err != nil {
		return nil, fmt.Errorf("saving tickets: %w", err)
	}
	s.logger.Info("ticket created", "id", t.ID, "urgency", t.Urgency)
	return t, nil
}

// List returns the filtered then sorted view of the stored tickets.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Ticket, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	view := List(tickets, opts)
	s.logger.Debug("tickets listed", "filter", opts.Filter, "sort", opts.Sort, "matched", len(view), "total", len(tickets))
	return view, nil
}

// Get returns the ticket with the given id.
func (s *Service) Get(ctx context.Context, id int) (*Ticket, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := Find(tickets, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: #%d", ErrNotFound, id)
	}
	t := tickets[i]
	return &t, nil
}

// Close marks a ticket closed and persists the collection. Closing an
// already closed ticket succeeds and moves its closed date.
func (s *Service) Close(ctx context.Context, id int) (*Ticket, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := Find(tickets, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: #%d", ErrNotFound, id)
	}

	wasClosed := tickets[i].IsClosed()
	tickets[i].CloseAt(s.now())

	if err := s.repo.Save(ctx, tickets); err != nil {
		return nil, fmt.Errorf("saving tickets: %w", err)
	}
	s.logger.Info("ticket closed", "id", id, "reclosed", wasClosed)
	t := tickets[i]
	return &t, nil
}

func (s *Service) load(ctx context.Context) ([]Ticket, error) {
	tickets, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tickets: %w", err)
	}
	s.logger.Debug("tickets loaded", "count", len(tickets))
	return tickets, nil
}
