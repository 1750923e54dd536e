package http

import (
	"net/http"

	"github.com/worklane-hq/worklane-bff-go/internal/listview"
)

// parseFilterState reads the shared list controls every page exposes:
// free-text search, category filter, and the tri-state sort.
func parseFilterState(r *http.Request) listview.FilterState {
	q := r.URL.Query()
	return listview.FilterState{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     listview.ParseSortOrder(q.Get("sort")),
	}
}
