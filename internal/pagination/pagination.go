// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import "strconv"

// PageSize is the number of items on a page.
const PageSize = 10

// DefaultPage is used when no page is requested.
const DefaultPage = 1

// ParsePage reads a 1-based page number from a query value.
// Empty or non-integer values fall back to DefaultPage.
func ParsePage(raw string) int {
	if raw == "" {
		return DefaultPage
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPage
	}
	return page
}

// Paginate returns items[(page-1)*PageSize : page*PageSize] clipped to len(items).
// Pages below 1 or past the end yield an empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
