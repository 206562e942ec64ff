// Package paginate provides the paginated list container used by every
// article listing, plus the pure page arithmetic shared with the API layer.
package paginate

import (
	"net/url"
	"strconv"
)

// List pairs one page of values with the total number of pages the server
// holds. Total is a page count, not an item count; the conversion from the
// server's reported item count happens exactly once, in FromCount.
type List[T any] struct {
	Values []T
	Total  int
}

// QueryParams returns the limit/offset query parameters selecting the given
// 1-based page of the given size.
func QueryParams(page, pageSize int) url.Values {
	return url.Values{
		"limit":  []string{strconv.Itoa(pageSize)},
		"offset": []string{strconv.Itoa((page - 1) * pageSize)},
	}
}

// TotalPages converts a server-reported item count into a page count by
// ceiling division. Zero items is zero pages. pageSize must be positive.
func TotalPages(itemCount, pageSize int) int {
	if itemCount <= 0 {
		return 0
	}
	return (itemCount + pageSize - 1) / pageSize
}

// FromCount builds a List from one page of values and the server-reported
// total item count.
func FromCount[T any](values []T, itemCount, pageSize int) List[T] {
	return List[T]{Values: values, Total: TotalPages(itemCount, pageSize)}
}

// Replace returns a copy of l in which the first element matched by match
// is replaced with item. Order and all other elements are untouched; an
// unmatched item leaves the list unchanged.
func Replace[T any](l List[T], match func(T) bool, item T) List[T] {
	values := make([]T, len(l.Values))
	copy(values, l.Values)

	for i, v := range values {
		if match(v) {
			values[i] = item
			break
		}
	}
	return List[T]{Values: values, Total: l.Total}
}
