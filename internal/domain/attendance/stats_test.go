package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, "0.0", stats.AverageHours)
	assert.Empty(t, stats.ByStatus)
}

func TestComputeStats_LateCountsAsPresent(t *testing.T) {
	stats := ComputeStats([]Record{
		{Status: StatusPresent, ArrivalStatus: ArrivalLate},
	})

	assert.Equal(t, 1, stats.ByStatus["late"])
	assert.Equal(t, 1, stats.ByStatus[StatusPresent])
	assert.Equal(t, 1, stats.Total)
}

func TestComputeStats_NotMarkedExcludedFromTally(t *testing.T) {
	stats := ComputeStats([]Record{
		{Status: StatusNotMarked},
	})

	assert.Equal(t, 1, stats.Total)
	_, present := stats.ByStatus[StatusNotMarked]
	assert.False(t, present)
	assert.Empty(t, stats.ByStatus)
}

func TestComputeStats_Tally(t *testing.T) {
	stats := ComputeStats([]Record{
		{Status: StatusPresent, ArrivalStatus: ArrivalOnTime, WorkHours: 8},
		{Status: StatusPresent, ArrivalStatus: ArrivalLate, WorkHours: 7},
		{Status: StatusAbsent},
		{Status: StatusLeave},
		{Status: StatusNotMarked},
	})

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[StatusPresent])
	assert.Equal(t, 1, stats.ByStatus["late"])
	assert.Equal(t, 1, stats.ByStatus[StatusAbsent])
	assert.Equal(t, 1, stats.ByStatus[StatusLeave])
	assert.Equal(t, 15.0, stats.TotalHours)
	assert.Equal(t, "3.0", stats.AverageHours)
}

func TestNormalizeRecord_Defaults(t *testing.T) {
	record := NormalizeRecord(RawRecord{})

	assert.Equal(t, "", record.ID)
	assert.Equal(t, "Unknown", record.Name)
	assert.Equal(t, "-", record.Department)
	assert.Equal(t, "-", record.SignIn)
	assert.Equal(t, "-", record.SignOut)
	assert.Equal(t, StatusNotMarked, record.Status)
	assert.Equal(t, "-", record.ArrivalStatus)
	assert.Equal(t, 0.0, record.WorkHours)
}

func TestNormalizeRecord_ArrivalStatus(t *testing.T) {
	early := "08:50"
	late := "09:10"
	boundary := "09:00"

	assert.Equal(t, ArrivalOnTime, NormalizeRecord(RawRecord{CheckInTime: &early}).ArrivalStatus)
	assert.Equal(t, ArrivalLate, NormalizeRecord(RawRecord{CheckInTime: &late}).ArrivalStatus)
	assert.Equal(t, ArrivalOnTime, NormalizeRecord(RawRecord{CheckInTime: &boundary}).ArrivalStatus)
}

func TestSortKey(t *testing.T) {
	_, ok := SortKey(Record{SignIn: "-"})
	assert.False(t, ok)

	_, ok = SortKey(Record{SignIn: ""})
	assert.False(t, ok)

	_, ok = SortKey(Record{SignIn: "garbled"})
	assert.False(t, ok)

	early, ok := SortKey(Record{Date: "2024-06-02", SignIn: "08:50"})
	assert.True(t, ok)
	late, ok := SortKey(Record{Date: "2024-06-01", SignIn: "09:10"})
	assert.True(t, ok)
	// Sign-in time of day decides the order, not the date.
	assert.Less(t, early, late)
}

func TestViewQuery_Validate(t *testing.T) {
	q := ViewQuery{}
	assert.NoError(t, q.Validate())
	assert.Equal(t, RangeToday, q.Range)

	q = ViewQuery{Range: RangeMonth}
	assert.NoError(t, q.Validate())

	q = ViewQuery{Range: "decade"}
	assert.Error(t, q.Validate())
}

func TestCreateRequest_Validate(t *testing.T) {
	valid := CreateRequest{
		EmployeeID: "emp-1",
		Date:       "2024-06-01",
		SignIn:     "09:10",
		Status:     StatusPresent,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  CreateRequest
	}{
		{"missing employee", CreateRequest{Date: "2024-06-01"}},
		{"missing date", CreateRequest{EmployeeID: "emp-1"}},
		{"malformed date", CreateRequest{EmployeeID: "emp-1", Date: "01/06/2024"}},
		{"malformed sign in", CreateRequest{EmployeeID: "emp-1", Date: "2024-06-01", SignIn: "9am"}},
		{"unknown status", CreateRequest{EmployeeID: "emp-1", Date: "2024-06-01", Status: "vacationing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}
