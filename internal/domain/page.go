package domain

// Page size bounds for GET /itineraries.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PaginationParams selects one page of the saved itineraries, newest first.
// Page is 1-indexed.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams reads the optional ?page= and ?limit= values of the
// itinerary list. Missing or non-positive values fall back to page 1 and
// DefaultPageLimit; limits above MaxPageLimit are capped.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset is the number of itineraries before this page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
