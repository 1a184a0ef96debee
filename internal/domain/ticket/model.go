package ticket

import "time"

// Urgency classifies how pressing a ticket is.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Status represents the lifecycle state of a ticket
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Ticket is a single issue record. Field order is the on-disk key order.
type Ticket struct {
	ID          int     `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
	Urgency     Urgency `yaml:"urgency" json:"urgency"`
	Status      Status  `yaml:"status" json:"status"`
	Created     Date    `yaml:"created" json:"created"`
	Closed      *Date   `yaml:"closed,omitempty" json:"closed,omitempty"`
}

// AllocateID returns one past the highest id in tickets, or 1 for an empty
// collection. Gaps are never refilled.
func AllocateID(tickets []Ticket) int {
	highest := 0
	for _, t := range tickets {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest + 1
}

// New builds an open ticket created today (UTC).
func New(id int, urgency Urgency, title, description string) (*Ticket, error) {
	return NewAt(id, urgency, title, description, time.Now())
}

// NewAt builds an open ticket whose created date is the UTC date of now.
func NewAt(id int, urgency Urgency, title, description string, now time.Time) (*Ticket, error) {
	if err := ValidateNew(id, urgency, title); err != nil {
		return nil, err
	}
	return &Ticket{
		ID:          id,
		Title:       title,
		Description: description,
		Urgency:     urgency,
		Status:      StatusOpen,
		Created:     DateOf(now),
	}, nil
}

// Close marks the ticket closed as of today (UTC).
func (t *Ticket) Close() {
	t.CloseAt(time.Now())
}

// CloseAt marks the ticket closed on the UTC date of now. Closing a ticket
// that is already closed re-stamps the date.
func (t *Ticket) CloseAt(now time.Time) {
	closed := DateOf(now)
	t.Status = StatusClosed
	t.Closed = &closed
}

// IsClosed reports whether the ticket has been closed.
func (t Ticket) IsClosed() bool {
	return t.Status == StatusClosed
}

// Find returns the index of the ticket with the given id, or -1.
func Find(tickets []Ticket, id int) int {
	for i := range tickets {
		if tickets[i].ID == id {
			return i
		}
	}
	return -1
}
