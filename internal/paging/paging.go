// Package paging implements the 1-based page slicing used by every list
// screen. It is a pure derivation with no clamping and no state. The policy
// that keeps a page in range, resetting to 1 whenever a filter changes,
// belongs to the screens, not here.
package paging

// TotalPages returns ceil(total/perPage). An empty list has zero pages,
// matching the convention that the pager is simply not shown.
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Page returns the 1-based page slice. Pages outside [1, TotalPages] yield
// an empty slice rather than panicking; callers that narrowed a list are
// expected to have reset to page 1 already.
func Page[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage <= 0 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
