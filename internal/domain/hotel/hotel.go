package hotel

// UnknownName labels hotels that could not be resolved from the store.
const UnknownName = "Unknown Hotel"

// Summary is the slice of a hotel the analytics pipeline needs: identity,
// display name and location for filtering.
type Summary struct {
	ID       string
	Name     string
	City     string
	Country  string
	MinPrice *float64
}

// Placeholder synthesizes a summary for an id that did not resolve, so the
// cache can treat the id as settled instead of re-querying it.
func Placeholder(id string) Summary {
	return Summary{ID: id, Name: UnknownName}
}
