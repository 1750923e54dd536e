package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequest_DateOrdering(t *testing.T) {
	valid := CreateRequest{
		EmployeeID: "emp-1",
		Type:       "annual",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-03",
	}
	assert.NoError(t, valid.Validate())

	sameDay := valid
	sameDay.EndDate = sameDay.StartDate
	assert.NoError(t, sameDay.Validate())

	reversed := valid
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	assert.Error(t, reversed.Validate())
}

func TestStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&StatusRequest{ID: "1", Status: StatusApproved}).Validate())
	assert.NoError(t, (&StatusRequest{ID: "1", Status: StatusRejected}).Validate())
	// Requests can only be decided, not reset to pending.
	assert.Error(t, (&StatusRequest{ID: "1", Status: StatusPending}).Validate())
	assert.Error(t, (&StatusRequest{Status: StatusApproved}).Validate())
}

func TestNormalizeRecord_Defaults(t *testing.T) {
	record := NormalizeRecord(RawRecord{})

	assert.Equal(t, "Unknown", record.Name)
	assert.Equal(t, "N/A", record.Type)
	assert.Equal(t, StatusPending, record.Status)
	assert.Equal(t, 0.0, record.Days)
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]Record{
		{Status: StatusPending, Days: 2},
		{Status: StatusApproved, Days: 3.5},
		{Status: StatusApproved, Days: 1},
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[StatusApproved])
	assert.Equal(t, 1, stats.ByStatus[StatusPending])
	assert.Equal(t, 6.5, stats.TotalDays)
}
