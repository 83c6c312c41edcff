package client

// FilterChanged is the command produced by a search or category input
// event. Nil fields leave the corresponding filter input unchanged,
// so the two inputs compose instead of discarding each other.
type FilterChanged struct {
	Query    *string
	Category *string
}

// RecordSelected is the command produced by clicking a listing entry:
// center the map on the record and request a route to it.
type RecordSelected struct {
	ID string
}

func stringPtr(s string) *string { return &s }

// QueryChanged builds the command for a text input event.
func QueryChanged(query string) FilterChanged {
	return FilterChanged{Query: stringPtr(query)}
}

// CategoryChanged builds the command for a category selector event.
// An empty category clears the selection.
func CategoryChanged(category string) FilterChanged {
	return FilterChanged{Category: stringPtr(category)}
}
