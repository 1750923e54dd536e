package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequest_Validate(t *testing.T) {
	valid := CreateRequest{
		Item:      "Laptop stand",
		Direction: DirectionIn,
		Quantity:  5,
	}
	assert.NoError(t, valid.Validate())

	badDirection := valid
	badDirection.Direction = "inbound"
	assert.Error(t, badDirection.Validate())

	zeroQty := valid
	zeroQty.Quantity = 0
	assert.Error(t, zeroQty.Validate())

	negativeQty := valid
	negativeQty.Quantity = -3
	assert.Error(t, negativeQty.Validate())
}

func TestComputeStats_Net(t *testing.T) {
	stats := ComputeStats([]Record{
		{Direction: DirectionIn, Quantity: 10},
		{Direction: DirectionIn, Quantity: 4},
		{Direction: DirectionOut, Quantity: 6},
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 14, stats.TotalIn)
	assert.Equal(t, 6, stats.TotalOut)
	assert.Equal(t, 8, stats.Net)
}
