package ticket

// ListOptions selects and orders a view of the collection.
type ListOptions struct {
	Filter FilterMethod
	Sort   SortMethod
	// LowFirst reverses the priority order so low urgency comes first.
	LowFirst bool
}
