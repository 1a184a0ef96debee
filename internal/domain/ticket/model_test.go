package ticket_test

import (
	"testing"
	"time"

	"github.com/rpggio/yamtik/internal/domain/ticket"
	"github.com/stretchr/testify/require"
)

func TestParseUrgency_AliasTable(t *testing.T) {
	cases := map[string]ticket.Urgency{
		"l": ticket.UrgencyLow, "lo": ticket.UrgencyLow, "low": ticket.UrgencyLow,
		"m": ticket.UrgencyMedium, "med": ticket.UrgencyMedium, "medium": ticket.UrgencyMedium,
		"h": ticket.UrgencyHigh, "hi": ticket.UrgencyHigh, "high": ticket.UrgencyHigh,
	}
	for token, want := range cases {
		got, err := ticket.ParseUrgency(token)
		require.NoError(t, err, token)
		require.Equal(t, want, got, token)
	}

	for _, token := range []string{"", "L", "Low", "HIGH", "urgent", "mid", " low", "hig"} {
		_, err := ticket.ParseUrgency(token)
		require.ErrorIs(t, err, ticket.ErrInvalidArgument, token)
	}
}

func TestParseSortMethod_AliasTable(t *testing.T) {
	cases := map[string]ticket.SortMethod{
		"p": ticket.SortPriority, "pri": ticket.SortPriority, "priority": ticket.SortPriority,
		"r":           ticket.SortMostRecent,
		"recent":      ticket.SortMostRecent,
		"t":           ticket.SortMostRecent,
		"time":        ticket.SortMostRecent,
		"most-recent": ticket.SortMostRecent,
		"most recent": ticket.SortMostRecent,
		"mostrecent":  ticket.SortMostRecent,
		"n":           ticket.SortNone,
		"no":          ticket.SortNone,
		"none":        ticket.SortNone,
	}
	for token, want := range cases {
		got, err := ticket.ParseSortMethod(token)
		require.NoError(t, err, token)
		require.Equal(t, want, got, token)
	}

	for _, token := range []string{"", "P", "urgency", "most_recent", "recent ", "oldest"} {
		_, err := ticket.ParseSortMethod(token)
		require.ErrorIs(t, err, ticket.ErrInvalidArgument, token)
	}
}

func TestParseFilterMethod_AliasTable(t *testing.T) {
	cases := map[string]ticket.FilterMethod{
		"a": ticket.FilterAll, "all": ticket.FilterAll,
		"o": ticket.FilterOpen, "op": ticket.FilterOpen, "open": ticket.FilterOpen,
		"c": ticket.FilterClosed, "cl": ticket.FilterClosed, "closed": ticket.FilterClosed,
		"l": ticket.FilterLow, "lo": ticket.FilterLow, "low": ticket.FilterLow,
		"m": ticket.FilterMedium, "med": ticket.FilterMedium, "medium": ticket.FilterMedium,
		"h": ticket.FilterHigh, "hi": ticket.FilterHigh, "high": ticket.FilterHigh,
	}
	for token, want := range cases {
		got, err := ticket.ParseFilterMethod(token)
		require.NoError(t, err, token)
		require.Equal(t, want, got, token)
	}

	for _, token := range []string{"", "A", "opened", "close", "none"} {
		_, err := ticket.ParseFilterMethod(token)
		require.ErrorIs(t, err, ticket.ErrInvalidArgument, token)
	}
}

func TestAllocateID(t *testing.T) {
	require.Equal(t, 1, ticket.AllocateID(nil))
	require.Equal(t, 1, ticket.AllocateID([]ticket.Ticket{}))
	require.Equal(t, 4, ticket.AllocateID([]ticket.Ticket{{ID: 1}, {ID: 2}, {ID: 3}}))
	require.Equal(t, 10, ticket.AllocateID([]ticket.Ticket{{ID: 9}, {ID: 2}, {ID: 5}}))
}

func TestNewAt(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	now := time.Date(2025, time.June, 9, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

	tk, err := ticket.NewAt(3, ticket.UrgencyHigh, "Fix crash", "", now)
	require.NoError(t, err)
	require.Equal(t, &ticket.Ticket{
		ID:          3,
		Title:       "Fix crash",
		Description: "",
		Urgency:     ticket.UrgencyHigh,
		Status:      ticket.StatusOpen,
		Created:     ticket.Date{Year: 2025, Month: time.June, Day: 10},
	}, tk)
	require.Nil(t, tk.Closed)
}

func TestNew_Validation(t *testing.T) {
	_, err := ticket.New(1, ticket.UrgencyLow, "", "desc")
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)

	_, err = ticket.New(1, ticket.UrgencyLow, "   ", "desc")
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)

	_, err = ticket.New(1, ticket.Urgency("urgent"), "title", "")
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)

	_, err = ticket.New(1, ticket.Urgency("h"), "title", "")
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)

	_, err = ticket.New(0, ticket.UrgencyLow, "title", "")
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)

	tk, err := ticket.New(1, ticket.UrgencyMedium, "title", "")
	require.NoError(t, err)
	require.Equal(t, ticket.DateOf(time.Now()), tk.Created)
}

func TestCloseAt_RestampsWhenAlreadyClosed(t *testing.T) {
	created := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	tk, err := ticket.NewAt(1, ticket.UrgencyLow, "title", "", created)
	require.NoError(t, err)

	tk.CloseAt(created.AddDate(0, 0, 1))
	require.True(t, tk.IsClosed())
	require.Equal(t, "2025-01-02", tk.Closed.String())

	tk.CloseAt(created.AddDate(0, 0, 5))
	require.Equal(t, ticket.StatusClosed, tk.Status)
	require.Equal(t, "2025-01-06", tk.Closed.String())
	require.Equal(t, "2025-01-01", tk.Created.String())
}

func TestFind(t *testing.T) {
	tickets := []ticket.Ticket{{ID: 4}, {ID: 7}}
	require.Equal(t, 1, ticket.Find(tickets, 7))
	require.Equal(t, -1, ticket.Find(tickets, 5))
	require.Equal(t, -1, ticket.Find(nil, 1))
}

func TestValidateCollection(t *testing.T) {
	created := ticket.Date{Year: 2025, Month: time.April, Day: 30}
	closed := ticket.Date{Year: 2025, Month: time.May, Day: 1}
	valid := func(id int) ticket.Ticket {
		return ticket.Ticket{ID: id, Title: "x", Urgency: ticket.UrgencyLow, Status: ticket.StatusOpen, Created: created}
	}
	closedTicket := valid(3)
	closedTicket.Status = ticket.StatusClosed
	closedTicket.Closed = &closed

	require.NoError(t, ticket.ValidateCollection(nil))
	require.NoError(t, ticket.ValidateCollection([]ticket.Ticket{valid(1), closedTicket}))

	tests := map[string]func(*ticket.Ticket){
		"non-positive id":       func(tk *ticket.Ticket) { tk.ID = -2 },
		"blank title":           func(tk *ticket.Ticket) { tk.Title = "  " },
		"missing urgency":       func(tk *ticket.Ticket) { tk.Urgency = "" },
		"missing status":        func(tk *ticket.Ticket) { tk.Status = "" },
		"missing created":       func(tk *ticket.Ticket) { tk.Created = ticket.Date{} },
		"closed without date":   func(tk *ticket.Ticket) { tk.Status = ticket.StatusClosed },
		"open with closed date": func(tk *ticket.Ticket) { tk.Closed = &closed },
		"zero closed date":      func(tk *ticket.Ticket) { tk.Status, tk.Closed = ticket.StatusClosed, &ticket.Date{} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			tk := valid(1)
			mutate(&tk)
			require.ErrorIs(t, ticket.ValidateCollection([]ticket.Ticket{tk}), ticket.ErrInvalidTicket)
		})
	}

	require.ErrorIs(t, ticket.ValidateCollection([]ticket.Ticket{valid(1), valid(1)}), ticket.ErrInvalidTicket)
}
