// Package listview is the shared engine behind every list page: filter and
// search predicates, tri-state sorting, summary tallies, and the in-memory
// collection each page holds between fetches. Pages supply only their record
// shape and field accessors.
package listview

import "strings"

// CategoryAll is the sentinel filter value meaning no category restriction.
const CategoryAll = "all"

// SortOrder is the tri-state sort toggle.
type SortOrder string

const (
	SortNone SortOrder = "none"
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ToggleAsc advances the state for a click on the ascending control:
// none→asc, asc→none, desc→asc.
func (o SortOrder) ToggleAsc() SortOrder {
	if o == SortAsc {
		return SortNone
	}
	return SortAsc
}

// ToggleDesc advances the state for a click on the descending control:
// none→desc, desc→none, asc→desc.
func (o SortOrder) ToggleDesc() SortOrder {
	if o == SortDesc {
		return SortNone
	}
	return SortDesc
}

// ParseSortOrder maps a query value to a SortOrder, defaulting to none.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(s) {
	case string(SortAsc):
		return SortAsc
	case string(SortDesc):
		return SortDesc
	default:
		return SortNone
	}
}

// FilterState is the ephemeral page-local filter/search/sort selection.
// It is plain data so the pipeline stays testable without an HTTP harness.
type FilterState struct {
	Search   string    `json:"search"`
	Category string    `json:"category"`
	Sort     SortOrder `json:"sort"`
}

// Config binds a record type to the engine: how to read its id, which
// fields free-text search scans, and which field the category filter
// matches. Category may be nil for pages without a category control.
type Config[R any] struct {
	ID         func(R) string
	SearchText func(R) []string
	Category   func(R) string
}

// ApplyFilters returns the records matching both the category predicate
// and the search predicate. Category and search comparisons are both
// case-insensitive. An empty search term matches everything; the
// CategoryAll sentinel disables the category predicate.
func ApplyFilters[R any](records []R, state FilterState, cfg Config[R]) []R {
	term := strings.ToLower(strings.TrimSpace(state.Search))
	category := strings.ToLower(strings.TrimSpace(state.Category))
	filterCategory := category != "" && category != CategoryAll && cfg.Category != nil

	out := make([]R, 0, len(records))
	for _, r := range records {
		if filterCategory && strings.ToLower(cfg.Category(r)) != category {
			continue
		}
		if term != "" && !matchesSearch(r, term, cfg.SearchText) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesSearch reports whether any designated field contains term as a
// case-insensitive substring.
func matchesSearch[R any](r R, term string, fields func(R) []string) bool {
	if fields == nil {
		return false
	}
	for _, f := range fields(r) {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
