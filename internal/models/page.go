package models

// Page is one page of a number-paginated listing.
// swagger:model Page
type Page[T any] struct {
	// Total number of items across all pages
	Count int `json:"count"`

	// Number of pages
	Pages int `json:"pages"`

	// Current page, starting at 1
	Page int `json:"page"`

	// Items on this page
	Results []T `json:"results"`
}

// NewPage builds a page from the total item count and the requested page size.
func NewPage[T any](results []T, count, page, size int) Page[T] {
	pages := 0
	if size > 0 {
		pages = (count + size - 1) / size
	}
	if results == nil {
		results = []T{}
	}
	return Page[T]{Count: count, Pages: pages, Page: page, Results: results}
}
