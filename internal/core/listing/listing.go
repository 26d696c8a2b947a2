// Package listing implements the search/sort/paginate algorithm shared by
// the author and news collections. It is parameterized per entity with the
// set of searchable text fields and an enumerated table of sort comparators;
// unknown sort names fall back to identifier ordering.
package listing

import (
	"slices"
	"strings"

	"github.com/newsdesk/news-api/internal/core/ports"
)

// Page size bounds applied to every listing call.
const (
	MinPageSize = 1
	MaxPageSize = 20
)

// Comparator orders two items: negative when a sorts before b.
type Comparator[T any] func(a, b T) int

// Config describes how one entity collection is searched and sorted.
type Config[T any] struct {
	// Search fields are substring-matched (case-sensitive); a match on
	// any field includes the record.
	Search []func(T) string
	// Exact fields match on full equality, OR'd with Search.
	Exact []func(T) string
	// Sort maps sort-type names to comparators.
	Sort map[string]Comparator[T]
	// Default orders by the stable identifier; it is used for unknown
	// sort names and as the tie-break for equal sort keys.
	Default Comparator[T]
}

func (c Config[T]) matches(item T, term string) bool {
	for _, field := range c.Search {
		if strings.Contains(field(item), term) {
			return true
		}
	}
	for _, field := range c.Exact {
		if field(item) == term {
			return true
		}
	}
	return false
}

// Filter returns the items matching term. An empty term matches everything.
func Filter[T any](items []T, cfg Config[T], term string) []T {
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if cfg.matches(item, term) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns the number of items matching term, ignoring pagination.
// Total-pages computations must use this, never the page length.
func Count[T any](items []T, cfg Config[T], term string) int {
	return len(Filter(items, cfg, term))
}

// Apply filters by params.Search, sorts by params.SortType in
// params.SortOrder direction, and returns the requested page. Equal sort
// keys are tie-broken by the identifier ascending, so pagination is stable
// across calls with identical parameters.
func Apply[T any](items []T, cfg Config[T], params ports.ListParams) []T {
	pageSize := clamp(params.PageSize, MinPageSize, MaxPageSize)
	pageNumber := params.PageNumber
	if pageNumber < 1 {
		pageNumber = 1
	}

	matched := Filter(items, cfg, params.Search)
	sorted := make([]T, len(matched))
	copy(sorted, matched)

	cmp := cfg.Default
	if byField, ok := cfg.Sort[params.SortType]; ok {
		cmp = byField
	}
	descending := params.SortOrder == "desc"

	slices.SortStableFunc(sorted, func(a, b T) int {
		order := cmp(a, b)
		if descending {
			order = -order
		}
		if order != 0 {
			return order
		}
		return cfg.Default(a, b)
	})

	skip := (pageNumber - 1) * pageSize
	if skip >= len(sorted) {
		return []T{}
	}
	end := skip + pageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[skip:end]
}

// ByString builds a comparator over a string field.
func ByString[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int { return strings.Compare(field(a), field(b)) }
}

// ByInt64 builds a comparator over an int64 field.
func ByInt64[T any](field func(T) int64) Comparator[T] {
	return func(a, b T) int {
		switch {
		case field(a) < field(b):
			return -1
		case field(a) > field(b):
			return 1
		default:
			return 0
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
