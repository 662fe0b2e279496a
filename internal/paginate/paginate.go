// Package paginate slices ordered listings into fixed-size, 1-based pages.
//
// A page number that is missing, malformed or out of range resolves to page 1;
// callers always get a valid page back.
package paginate

import (
	"strconv"
	"strings"
)

type Page[T any] struct {
	Items       []T  `json:"items"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	Number      int  `json:"number"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// Window is a resolved page over a collection of Total items, expressed as an
// offset/limit pair so the store can fetch only that page.
type Window struct {
	Total      int
	TotalPages int
	Number     int
	Offset     int
	Limit      int
}

func NewWindow(total int, pageSize int, requested string) Window {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	number := parseNumber(requested, totalPages)

	return Window{
		Total:      total,
		TotalPages: totalPages,
		Number:     number,
		Offset:     (number - 1) * pageSize,
		Limit:      pageSize,
	}
}

func parseNumber(requested string, totalPages int) int {
	n, err := strconv.Atoi(strings.TrimSpace(requested))
	if err != nil || n < 1 || n > totalPages {
		return 1
	}
	return n
}

// FromWindow wraps the items fetched for w into a Page.
func FromWindow[T any](w Window, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Total:       w.Total,
		TotalPages:  w.TotalPages,
		Number:      w.Number,
		HasPrevious: w.Number > 1,
		HasNext:     w.Number < w.TotalPages,
	}
}

// Paginate returns the requested page of an in-memory ordered slice.
// The returned items share the backing array of items.
func Paginate[T any](items []T, pageSize int, requested string) Page[T] {
	w := NewWindow(len(items), pageSize, requested)

	end := w.Offset + w.Limit
	if end > len(items) {
		end = len(items)
	}

	return FromWindow(w, items[w.Offset:end])
}
