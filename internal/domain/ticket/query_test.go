package ticket_test

import (
	"slices"
	"testing"
	"time"

	"github.com/rpggio/yamtik/internal/domain/ticket"
	"github.com/stretchr/testify/require"
)

func fixture() []ticket.Ticket {
	closed := ticket.Date{Year: 2025, Month: time.February, Day: 1}
	created := ticket.Date{Year: 2025, Month: time.January, Day: 1}
	return []ticket.Ticket{
		{ID: 1, Title: "a", Urgency: ticket.UrgencyMedium, Status: ticket.StatusOpen, Created: created},
		{ID: 2, Title: "b", Urgency: ticket.UrgencyHigh, Status: ticket.StatusClosed, Created: created, Closed: &closed},
		{ID: 3, Title: "c", Urgency: ticket.UrgencyLow, Status: ticket.StatusOpen, Created: created},
		{ID: 4, Title: "d", Urgency: ticket.UrgencyHigh, Status: ticket.StatusOpen, Created: created},
		{ID: 5, Title: "e", Urgency: ticket.UrgencyMedium, Status: ticket.StatusClosed, Created: created, Closed: &closed},
		{ID: 6, Title: "f", Urgency: ticket.UrgencyLow, Status: ticket.StatusClosed, Created: created, Closed: &closed},
		{ID: 7, Title: "g", Urgency: ticket.UrgencyMedium, Status: ticket.StatusOpen, Created: created},
	}
}

func ids(tickets []ticket.Ticket) []int {
	out := make([]int, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tickets := fixture()

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ids(ticket.Filter(tickets, ticket.FilterAll)))
	require.Equal(t, []int{1, 3, 4, 7}, ids(ticket.Filter(tickets, ticket.FilterOpen)))
	require.Equal(t, []int{2, 5, 6}, ids(ticket.Filter(tickets, ticket.FilterClosed)))
	require.Equal(t, []int{3, 6}, ids(ticket.Filter(tickets, ticket.FilterLow)))
	require.Equal(t, []int{1, 5, 7}, ids(ticket.Filter(tickets, ticket.FilterMedium)))
	require.Equal(t, []int{2, 4}, ids(ticket.Filter(tickets, ticket.FilterHigh)))
	require.Empty(t, ticket.Filter(nil, ticket.FilterOpen))
}

func TestFilter_OpenAndClosedPartitionCollection(t *testing.T) {
	tickets := fixture()
	open := ticket.Filter(tickets, ticket.FilterOpen)
	closed := ticket.Filter(tickets, ticket.FilterClosed)

	union := append(ids(open), ids(closed)...)
	slices.Sort(union)
	require.Equal(t, ids(tickets), union)
	require.Len(t, union, len(tickets))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	tickets := fixture()
	view := ticket.Filter(tickets, ticket.FilterOpen)
	view[0].Title = "changed"

	require.Equal(t, fixture(), tickets)
}

func TestSort_PriorityIsStableAndDescending(t *testing.T) {
	tickets := fixture()
	sorted := ticket.Sort(tickets, ticket.SortPriority)

	require.Equal(t, []int{2, 4, 1, 5, 7, 3, 6}, ids(sorted))
	for i := 1; i < len(sorted); i++ {
		require.GreaterOrEqual(t, sorted[i-1].Urgency.Rank(), sorted[i].Urgency.Rank())
	}
	require.Equal(t, fixture(), tickets)
}

func TestSort_PriorityLowFirst(t *testing.T) {
	sorted := ticket.List(fixture(), ticket.ListOptions{
		Filter:   ticket.FilterAll,
		Sort:     ticket.SortPriority,
		LowFirst: true,
	})
	require.Equal(t, []int{3, 6, 1, 5, 7, 2, 4}, ids(sorted))
}

func TestSort_MostRecentReversesInput(t *testing.T) {
	tickets := fixture()
	sorted := ticket.Sort(tickets, ticket.SortMostRecent)

	require.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, ids(sorted))
	require.Equal(t, fixture(), tickets)

	// Reversal follows input order, not ids or dates.
	shuffled := []ticket.Ticket{{ID: 3}, {ID: 1}, {ID: 2}}
	require.Equal(t, []int{2, 1, 3}, ids(ticket.Sort(shuffled, ticket.SortMostRecent)))
}

func TestSort_NoneReturnsCopy(t *testing.T) {
	tickets := fixture()
	sorted := ticket.Sort(tickets, ticket.SortNone)
	require.Equal(t, tickets, sorted)

	sorted[0].Title = "changed"
	require.Equal(t, "a", tickets[0].Title)
}

func TestList_FiltersThenSorts(t *testing.T) {
	view := ticket.List(fixture(), ticket.ListOptions{
		Filter: ticket.FilterOpen,
		Sort:   ticket.SortPriority,
	})
	require.Equal(t, []int{4, 1, 7, 3}, ids(view))

	view = ticket.List(fixture(), ticket.ListOptions{
		Filter: ticket.FilterMedium,
		Sort:   ticket.SortMostRecent,
	})
	require.Equal(t, []int{7, 5, 1}, ids(view))
}
