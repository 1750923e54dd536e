package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Label string
	Key   int64
	HasKey bool
}

func rowKey(r row) (int64, bool) {
	return r.Key, r.HasKey
}

func TestApplySort_NoneIsNoOp(t *testing.T) {
	records := []row{
		{Label: "b", Key: 2, HasKey: true},
		{Label: "a", Key: 1, HasKey: true},
	}

	got := ApplySort(records, SortNone, rowKey)

	assert.Equal(t, records, got)
}

func TestApplySort_Ascending(t *testing.T) {
	records := []row{
		{Label: "late", Key: 910, HasKey: true},
		{Label: "early", Key: 850, HasKey: true},
		{Label: "missing", HasKey: false},
	}

	got := ApplySort(records, SortAsc, rowKey)

	assert.Equal(t, []string{"early", "late", "missing"}, labels(got))
}

func TestApplySort_Descending(t *testing.T) {
	records := []row{
		{Label: "early", Key: 850, HasKey: true},
		{Label: "missing", HasKey: false},
		{Label: "late", Key: 910, HasKey: true},
	}

	got := ApplySort(records, SortDesc, rowKey)

	assert.Equal(t, []string{"late", "early", "missing"}, labels(got))
}

func TestApplySort_MissingLastBothDirections(t *testing.T) {
	records := []row{
		{Label: "missing-1", HasKey: false},
		{Label: "keyed", Key: 5, HasKey: true},
		{Label: "missing-2", HasKey: false},
	}

	for _, order := range []SortOrder{SortAsc, SortDesc} {
		got := ApplySort(records, order, rowKey)
		assert.Equal(t, "keyed", got[0].Label, "order %s", order)
		// Missing keys keep their relative order at the end.
		assert.Equal(t, []string{"missing-1", "missing-2"}, labels(got[1:]), "order %s", order)
	}
}

func TestApplySort_Stable(t *testing.T) {
	records := []row{
		{Label: "first", Key: 1, HasKey: true},
		{Label: "second", Key: 1, HasKey: true},
		{Label: "third", Key: 1, HasKey: true},
	}

	for _, order := range []SortOrder{SortAsc, SortDesc} {
		got := ApplySort(records, order, rowKey)
		assert.Equal(t, []string{"first", "second", "third"}, labels(got), "order %s", order)
	}
}

func TestApplySort_DoesNotMutateInput(t *testing.T) {
	records := []row{
		{Label: "b", Key: 2, HasKey: true},
		{Label: "a", Key: 1, HasKey: true},
	}

	_ = ApplySort(records, SortAsc, rowKey)

	assert.Equal(t, []string{"b", "a"}, labels(records))
}

func labels(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}
