package listview

// View runs the read-side pipeline over the collection: filter, then
// sort, returning the result alongside the fetch state. The rendered
// page is a pure function of this output.
func View[R any](c *Collection[R], state FilterState, cfg Config[R], sortKey func(R) (int64, bool)) ([]R, State) {
	records := ApplyFilters(c.Records(), state, cfg)
	records = ApplySort(records, state.Sort, sortKey)
	return records, c.State()
}
