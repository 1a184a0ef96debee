package mcp

import (
	"context"
	"log/slog"

	"github.com/rpggio/yamtik/internal/domain/ticket"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// TicketService defines ticket operations needed by MCP.
type TicketService interface {
	Create(ctx context.Context, req ticket.CreateRequest) (*ticket.Ticket, error)
	List(ctx context.Context, opts ticket.ListOptions) ([]ticket.Ticket, error)
	Get(ctx context.Context, id int) (*ticket.Ticket, error)
	Close(ctx context.Context, id int) (*ticket.Ticket, error)
}

// Config contains server configuration.
type Config struct {
	Tickets TicketService
	// DefaultFilter and DefaultSort apply when list_tickets omits them.
	// Empty means open and none.
	DefaultFilter string
	DefaultSort   string
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "yamtik",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg)

	return server
}
