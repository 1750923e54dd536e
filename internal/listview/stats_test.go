package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountBy(t *testing.T) {
	records := []person{
		{ID: "1", Dept: "HR"},
		{ID: "2", Dept: "IT"},
		{ID: "3", Dept: "HR"},
		{ID: "4", Dept: ""},
	}

	counts := CountBy(records, func(p person) (string, bool) {
		return p.Dept, p.Dept != ""
	})

	assert.Equal(t, map[string]int{"HR": 2, "IT": 1}, counts)
	// Absent categories have no key; callers read missing as zero.
	_, present := counts["Finance"]
	assert.False(t, present)
}

func TestCountBy_Empty(t *testing.T) {
	counts := CountBy(nil, func(p person) (string, bool) { return p.Dept, true })
	assert.Empty(t, counts)
}

func TestSumBy(t *testing.T) {
	records := []row{
		{Key: 2, HasKey: true},
		{Key: 3, HasKey: true},
	}
	assert.Equal(t, 5.0, SumBy(records, func(r row) float64 { return float64(r.Key) }))
}

func TestAverage(t *testing.T) {
	assert.Equal(t, "7.5", Average(15, 2))
	assert.Equal(t, "0.0", Average(0, 0))
	assert.Equal(t, "0.0", Average(12.3, 0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "50", Percent(1, 2))
	assert.Equal(t, "0", Percent(3, 0))
}
