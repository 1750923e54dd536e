package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequest_RatingBounds(t *testing.T) {
	valid := CreateRequest{EmployeeID: "emp-1", Period: "2024-H1", Rating: 3.5}
	assert.NoError(t, valid.Validate())

	for _, rating := range []float64{0, 0.9, 5.1} {
		req := valid
		req.Rating = rating
		assert.Error(t, req.Validate(), "rating %v should be rejected", rating)
	}

	// Both ends of the scale are inclusive.
	for _, rating := range []float64{1, 5} {
		req := valid
		req.Rating = rating
		assert.NoError(t, req.Validate())
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]Record{
		{Rating: 4},
		{Rating: 3},
	})
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, "3.5", stats.AverageRating)

	empty := ComputeStats(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, "0.0", empty.AverageRating)
}
