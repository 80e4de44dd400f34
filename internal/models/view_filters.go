package models

const (
	SortFieldDate   = "date"
	SortFieldAmount = "amount"
	SortFieldTitle  = "title"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// ViewFilters is the ephemeral filter/sort state the dashboard view is
// computed against. It is never persisted; it arrives as query parameters
// on each request.
type ViewFilters struct {
	SearchQuery string
	Categories  []string
	SortField   string
	SortOrder   string
}

// HasSearch reports whether a search query is set
func (f ViewFilters) HasSearch() bool {
	return f.SearchQuery != ""
}

// HasCategoryFilter reports whether the category set is non-empty
func (f ViewFilters) HasCategoryFilter() bool {
	return len(f.Categories) > 0
}

// IsValidSortField checks if the sort field is one of date, amount, or title
func IsValidSortField(field string) bool {
	switch field {
	case SortFieldDate, SortFieldAmount, SortFieldTitle:
		return true
	default:
		return false
	}
}

// IsValidSortOrder checks if the sort order is asc or desc
func IsValidSortOrder(order string) bool {
	switch order {
	case SortOrderAsc, SortOrderDesc:
		return true
	default:
		return false
	}
}
