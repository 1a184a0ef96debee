package ticket

import "slices"

// Filter returns the tickets matching method in their original order. The
// input is never modified. An empty or unknown method keeps every ticket.
func Filter(tickets []Ticket, method FilterMethod) []Ticket {
	keep := func(Ticket) bool { return true }
	switch method {
	case FilterOpen, FilterClosed:
		status := Status(method)
		keep = func(t Ticket) bool { return t.Status == status }
	case FilterLow, FilterMedium, FilterHigh:
		urgency := Urgency(method)
		keep = func(t Ticket) bool { return t.Urgency == urgency }
	}

	view := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if keep(t) {
			view = append(view, t)
		}
	}
	return view
}

// Sort returns a reordered copy of tickets.
//
// SortPriority is a stable sort on urgency rank, highest first, so equal
// urgencies keep their input (creation) order. SortMostRecent reverses the
// input: it assumes append order is chronological and does not compare
// created dates, so imported or reordered files can come out wrong.
func Sort(tickets []Ticket, method SortMethod) []Ticket {
	return sortView(tickets, method, false)
}

// List filters then sorts. The order of the two steps is part of the contract.
func List(tickets []Ticket, opts ListOptions) []Ticket {
	return sortView(Filter(tickets, opts.Filter), opts.Sort, opts.LowFirst)
}

func sortView(tickets []Ticket, method SortMethod, lowFirst bool) []Ticket {
	view := slices.Clone(tickets)
	if view == nil {
		view = []Ticket{}
	}
	switch method {
	case SortPriority:
		slices.SortStableFunc(view, func(a, b Ticket) int {
			if lowFirst {
				return a.Urgency.Rank() - b.Urgency.Rank()
			}
			return b.Urgency.Rank() - a.Urgency.Rank()
		})
	case SortMostRecent:
		slices.Reverse(view)
	}
	return view
}
