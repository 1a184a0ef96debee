package ticket

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SortMethod selects the ordering applied to a ticket view.
type SortMethod string

const (
	SortPriority   SortMethod = "priority"
	SortMostRecent SortMethod = "most-recent"
	SortNone       SortMethod = "none"
)

// FilterMethod selects which tickets survive into a view.
type FilterMethod string

const (
	FilterAll    FilterMethod = "all"
	FilterOpen   FilterMethod = "open"
	FilterClosed FilterMethod = "closed"
	FilterLow    FilterMethod = "low"
	FilterMedium FilterMethod = "medium"
	FilterHigh   FilterMethod = "high"
)

// Alias tables are case-sensitive and must stay in sync with the
// documented CLI abbreviations.
var urgencyAliases = map[string]Urgency{
	"l": UrgencyLow, "lo": UrgencyLow, "low": UrgencyLow,
	"m": UrgencyMedium, "med": UrgencyMedium, "medium": UrgencyMedium,
	"h": UrgencyHigh, "hi": UrgencyHigh, "high": UrgencyHigh,
}

var sortAliases = map[string]SortMethod{
	"p": SortPriority, "pri": SortPriority, "priority": SortPriority,
	"r": SortMostRecent, "recent": SortMostRecent, "t": SortMostRecent, "time": SortMostRecent,
	"most-recent": SortMostRecent, "most recent": SortMostRecent, "mostrecent": SortMostRecent,
	"n": SortNone, "no": SortNone, "none": SortNone,
}

var filterAliases = map[string]FilterMethod{
	"a": FilterAll, "all": FilterAll,
	"o": FilterOpen, "op": FilterOpen, "open": FilterOpen,
	"c": FilterClosed, "cl": FilterClosed, "closed": FilterClosed,
}

// ParseUrgency maps an urgency token or abbreviation to its canonical value.
func ParseUrgency(s string) (Urgency, error) {
	if u, ok := urgencyAliases[s]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: unknown urgency %q (want low, medium or high)", ErrInvalidArgument, s)
}

// ParseSortMethod maps a sort token or abbreviation to its canonical value.
func ParseSortMethod(s string) (SortMethod, error) {
	if m, ok := sortAliases[s]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown sort method %q (want priority, most-recent or none)", ErrInvalidArgument, s)
}

// ParseFilterMethod maps a filter token or abbreviation to its canonical
// value. Urgency tokens select tickets of that urgency.
func ParseFilterMethod(s string) (FilterMethod, error) {
	if m, ok := filterAliases[s]; ok {
		return m, nil
	}
	if u, ok := urgencyAliases[s]; ok {
		return FilterMethod(u), nil
	}
	return "", fmt.Errorf("%w: unknown filter method %q (want all, open, closed, low, medium or high)", ErrInvalidArgument, s)
}

// Rank orders urgencies low < medium < high. Unknown values rank below low.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyLow:
		return 0
	case UrgencyMedium:
		return 1
	case UrgencyHigh:
		return 2
	default:
		return -1
	}
}

// Valid reports whether u is one of the canonical urgencies.
func (u Urgency) Valid() bool {
	return u.Rank() >= 0
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

// UnmarshalYAML only accepts canonical urgency names; abbreviations are a
// CLI convenience and never appear on disk.
func (u *Urgency) UnmarshalYAML(value *yaml.Node) error {
	candidate := Urgency(value.Value)
	if value.Kind != yaml.ScalarNode || !candidate.Valid() {
		return fmt.Errorf("line %d: unknown urgency %q", value.Line, value.Value)
	}
	*u = candidate
	return nil
}

// UnmarshalYAML only accepts open and closed.
func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	candidate := Status(value.Value)
	if value.Kind != yaml.ScalarNode || !candidate.Valid() {
		return fmt.Errorf("line %d: unknown status %q", value.Line, value.Value)
	}
	*s = candidate
	return nil
}
