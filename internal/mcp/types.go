package mcp

import "github.com/rpggio/yamtik/internal/domain/ticket"

type NewTicketParams struct {
	Urgency     string `json:"urgency" jsonschema:"low, medium or high (abbreviations such as h or med are accepted)"`
	Title       string `json:"title" jsonschema:"short ticket title"`
	Description string `json:"description,omitempty" jsonschema:"longer free-form description"`
}

type ListTicketsParams struct {
	Filter   string `json:"filter,omitempty" jsonschema:"all, open, closed, low, medium or high (default open)"`
	Sort     string `json:"sort,omitempty" jsonschema:"priority, most-recent or none (default none)"`
	LowFirst bool   `json:"low_first,omitempty" jsonschema:"with priority sorting, list low urgency first"`
}

type TicketIDParams struct {
	ID int `json:"id" jsonschema:"ticket id"`
}

// TicketView is the wire shape of a ticket. Dates are YYYY-MM-DD strings.
type TicketView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
	Status      string `json:"status"`
	Created     string `json:"created"`
	Closed      string `json:"closed,omitempty"`
}

type TicketResponse struct {
	Ticket TicketView `json:"ticket"`
}

type ListTicketsResponse struct {
	Tickets []TicketView `json:"tickets"`
	Count   int          `json:"count"`
}

func toView(t ticket.Ticket) TicketView {
	view := TicketView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Urgency:     string(t.Urgency),
		Status:      string(t.Status),
		Created:     t.Created.String(),
	}
	if t.Closed != nil {
		view.Closed = t.Closed.String()
	}
	return view
}

func toViews(tickets []ticket.Ticket) []TicketView {
	views := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		views = append(views, toView(t))
	}
	return views
}
