package mcp

import (
	"context"
	"sync"

	"github.com/rpggio/yamtik/internal/domain/ticket"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolHandlers runs one store load/save cycle per call. Calls are
// serialised so two tools never interleave on the same file.
type toolHandlers struct {
	mu            sync.Mutex
	tickets       TicketService
	defaultFilter string
	defaultSort   string
}

func registerTools(server *sdkmcp.Server, cfg Config) {
	h := &toolHandlers{
		tickets:       cfg.Tickets,
		defaultFilter: valueOr(cfg.DefaultFilter, string(ticket.FilterOpen)),
		defaultSort:   valueOr(cfg.DefaultSort, string(ticket.SortNone)),
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "new_ticket",
		Description: "Create a new open ticket and return it with its allocated id",
	}, h.newTicket)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tickets",
		Description: "List tickets, filtered then sorted",
	}, h.listTickets)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "show_ticket",
		Description: "Get one ticket by id",
	}, h.showTicket)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "close_ticket",
		Description: "Mark a ticket closed and stamp today's date",
	}, h.closeTicket)
}

func (h *toolHandlers) newTicket(ctx context.Context, _ *sdkmcp.CallToolRequest, in NewTicketParams) (*sdkmcp.CallToolResult, TicketResponse, error) {
	urgency, err := ticket.ParseUrgency(in.Urgency)
	if err != nil {
		return nil, TicketResponse{}, MapError(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	t, err := h.tickets.Create(ctx, ticket.CreateRequest{
		Urgency:     urgency,
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		return nil, TicketResponse{}, MapError(err)
	}
	return nil, TicketResponse{Ticket: toView(*t)}, nil
}

func (h *toolHandlers) listTickets(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListTicketsParams) (*sdkmcp.CallToolResult, ListTicketsResponse, error) {
	filter, err := ticket.ParseFilterMethod(valueOr(in.Filter, h.defaultFilter))
	if err != nil {
		return nil, ListTicketsResponse{}, MapError(err)
	}
	sort, err := ticket.ParseSortMethod(valueOr(in.Sort, h.defaultSort))
	if err != nil {
		return nil, ListTicketsResponse{}, MapError(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	view, err := h.tickets.List(ctx, ticket.ListOptions{Filter: filter, Sort: sort, LowFirst: in.LowFirst})
	if err != nil {
		return nil, ListTicketsResponse{}, MapError(err)
	}
	return nil, ListTicketsResponse{Tickets: toViews(view), Count: len(view)}, nil
}

func (h *toolHandlers) showTicket(ctx context.Context, _ *sdkmcp.CallToolRequest, in TicketIDParams) (*sdkmcp.CallToolResult, TicketResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	t, err := h.tickets.Get(ctx, in.ID)
	if err != nil {
		return nil, TicketResponse{}, MapError(err)
	}
	return nil, TicketResponse{Ticket: toView(*t)}, nil
}

func (h *toolHandlers) closeTicket(ctx context.Context, _ *sdkmcp.CallToolRequest, in TicketIDParams) (*sdkmcp.CallToolResult, TicketResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	t, err := h.tickets.Close(ctx, in.ID)
	if err != nil {
		return nil, TicketResponse{}, MapError(err)
	}
	return nil, TicketResponse{Ticket: toView(*t)}, nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
