package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `yamtik keeps personal issue tickets in a single YAML file.

Workflow:
1) list_tickets to see open work (filter all to include closed tickets).
2) show_ticket for one ticket's full description.
3) new_ticket to record an issue; the id is allocated for you.
4) close_ticket when the work is done. Closing is one-way.

Docs:
- yamtik://docs/tickets (fields and accepted abbreviations)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "yamtik://docs/tickets",
		Name:        "docs_tickets",
		Title:       "Ticket fields and abbreviations",
		Description: "What each ticket field means and which short forms the tools accept.",
		Content: `# Tickets

Fields:
- id: positive integer, one more than the highest existing id. Never reused while a higher id exists.
- title: non-empty text.
- description: free text, may be empty.
- urgency: low, medium or high. Fixed at creation.
- status: open or closed.
- created / closed: YYYY-MM-DD. closed is present only on closed tickets.

Urgency: l, lo, low | m, med, medium | h, hi, high

Filters: a, all | o, op, open | c, cl, closed | any urgency form

Sorts:
- priority (p, pri): high first, ties keep file order. low_first reverses the ranking.
- most-recent (r, recent, t, time, mostrecent): reverse file order.
- none (n, no): file order.

Tokens are case-sensitive.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
