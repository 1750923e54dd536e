package attendance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/attendance"
	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

// fakeUpstream serves a canned attendance collection and records
// mutations, standing in for the backend API.
type fakeUpstream struct {
	mux        *methodMux
	listBody   string
	listStatus int
}

// methodMux routes "METHOD /path" patterns (with a trailing "/{id}"
// wildcard segment); Go 1.21's ServeMux does not support method or
// wildcard patterns.
type methodMux struct {
	handlers map[string]http.HandlerFunc
}

func (m *methodMux) HandleFunc(pattern string, h http.HandlerFunc) {
	m.handlers[pattern] = h
}

func (m *methodMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := m.handlers[r.Method+" "+r.URL.Path]; ok {
		h(w, r)
		return
	}
	for pattern, h := range m.handlers {
		method, path, ok := strings.Cut(pattern, " ")
		if !ok || method != r.Method {
			continue
		}
		base, wildcard := strings.CutSuffix(path, "/{id}")
		if !wildcard {
			continue
		}
		if rest, found := strings.CutPrefix(r.URL.Path, base+"/"); found && rest != "" && !strings.Contains(rest, "/") {
			h(w, r)
			return
		}
	}
	http.NotFound(w, r)
}

func newFakeUpstream(t *testing.T, listBody string) (*fakeUpstream, *upstream.Client) {
	t.Helper()
	f := &fakeUpstream{
		mux:        &methodMux{handlers: map[string]http.HandlerFunc{}},
		listBody:   listBody,
		listStatus: http.StatusOK,
	}

	f.mux.HandleFunc("GET /api/attendance", func(w http.ResponseWriter, r *http.Request) {
		if f.listStatus != http.StatusOK {
			w.WriteHeader(f.listStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(f.listBody))
	})

	server := httptest.NewServer(f.mux)
	t.Cleanup(server.Close)

	client, err := upstream.New(server.URL, 5*time.Second)
	require.NoError(t, err)
	return f, client
}

const mixedDatesBody = `[
	{"id": 1, "employeeName": "Asha", "department": "HR", "date": "2024-06-01T00:00:00Z", "checkInTime": "09:10", "status": "present", "workHours": 8},
	{"id": 2, "employeeName": "Ravi", "department": "IT", "date": [2024, 6, 2], "checkInTime": "08:50", "status": "present", "workHours": 7.5},
	{"id": 3, "employeeName": "Maria", "department": "HR", "date": [2024, 6, 3], "checkInTime": null, "status": "not_marked", "workHours": 0}
]`

func TestGetView_NormalizesMixedDateEncodings(t *testing.T) {
	_, client := newFakeUpstream(t, mixedDatesBody)
	svc := NewAttendanceService(client)

	view, err := svc.GetView(context.Background(), attendance.ViewQuery{Range: attendance.RangeMonth})

	require.NoError(t, err)
	require.Len(t, view.Records, 3)
	assert.Equal(t, "2024-06-01", view.Records[0].Date)
	assert.Equal(t, "2024-06-02", view.Records[1].Date)
	assert.Equal(t, "2024-06-03", view.Records[2].Date)
	assert.Equal(t, "-", view.Records[2].SignIn)
	assert.Equal(t, listview.State{}, view.State)
}

func TestGetView_AscendingSortPutsMissingSignInLast(t *testing.T) {
	_, client := newFakeUpstream(t, mixedDatesBody)
	svc := NewAttendanceService(client)

	view, err := svc.GetView(context.Background(), attendance.ViewQuery{
		Range:  attendance.RangeMonth,
		Filter: listview.FilterState{Sort: listview.SortAsc},
	})

	require.NoError(t, err)
	require.Len(t, view.Records, 3)
	assert.Equal(t, "08:50", view.Records[0].SignIn)
	assert.Equal(t, "09:10", view.Records[1].SignIn)
	assert.Equal(t, "-", view.Records[2].SignIn)
}

func TestGetView_SearchAndStatusFilter(t *testing.T) {
	_, client := newFakeUpstream(t, mixedDatesBody)
	svc := NewAttendanceService(client)

	view, err := svc.GetView(context.Background(), attendance.ViewQuery{
		Range: attendance.RangeMonth,
		Filter: listview.FilterState{
			Search:   "as",
			Category: "present",
		},
	})

	require.NoError(t, err)
	require.Len(t, view.Records, 1)
	assert.Equal(t, "Asha", view.Records[0].Name)
}

func TestGetView_StatsReflectFilteredSet(t *testing.T) {
	_, client := newFakeUpstream(t, mixedDatesBody)
	svc := NewAttendanceService(client)

	view, err := svc.GetView(context.Background(), attendance.ViewQuery{Range: attendance.RangeMonth})

	require.NoError(t, err)
	assert.Equal(t, 3, view.Stats.Total)
	// Asha signed in at 09:10: late, which also counts as present.
	assert.Equal(t, 1, view.Stats.ByStatus["late"])
	assert.Equal(t, 2, view.Stats.ByStatus[attendance.StatusPresent])
	// Maria's not_marked row is in Total but absent from the tally.
	_, hasNotMarked := view.Stats.ByStatus[attendance.StatusNotMarked]
	assert.False(t, hasNotMarked)
}

func TestGetView_FetchFailureKeepsStaleRecords(t *testing.T) {
	f, client := newFakeUpstream(t, mixedDatesBody)
	svc := NewAttendanceService(client)

	_, err := svc.GetView(context.Background(), attendance.ViewQuery{Range: attendance.RangeMonth})
	require.NoError(t, err)

	f.listStatus = http.StatusBadGateway
	require.Error(t, svc.Refresh(context.Background()))

	view, err := svc.GetView(context.Background(), attendance.ViewQuery{Range: attendance.RangeMonth})
	require.NoError(t, err)
	assert.Len(t, view.Records, 3)
	assert.NotEmpty(t, view.State.Error)
}

func TestCreateRecord_AppendsServerVersion(t *testing.T) {
	f, client := newFakeUpstream(t, `[]`)
	f.mux.HandleFunc("POST /api/attendance", func(w http.ResponseWriter, r *http.Request) {
		var req attendance.CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// The server assigns the id and reshapes the date.
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":           42,
			"employeeId":   req.EmployeeID,
			"employeeName": "Asha",
			"date":         []int{2024, 6, 1},
			"checkInTime":  req.SignIn,
			"status":       req.Status,
		})
	})
	svc := NewAttendanceService(client)
	_, err := svc.GetView(context.Background(), attendance.ViewQuery{})
	require.NoError(t, err)

	record, err := svc.CreateRecord(context.Background(), attendance.CreateRequest{
		EmployeeID: "emp-1",
		Date:       "2024-06-01",
		SignIn:     "09:10",
		Status:     attendance.StatusPresent,
	})

	require.NoError(t, err)
	assert.Equal(t, "42", record.ID)
	assert.Equal(t, "2024-06-01", record.Date)

	view, err := svc.GetView(context.Background(), attendance.ViewQuery{})
	require.NoError(t, err)
	require.Len(t, view.Records, 1)
	assert.Equal(t, record, view.Records[0])
}

func TestCreateRecord_ValidationSkipsNetwork(t *testing.T) {
	f, client := newFakeUpstream(t, `[]`)
	called := false
	f.mux.HandleFunc("POST /api/attendance", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})
	svc := NewAttendanceService(client)

	_, err := svc.CreateRecord(context.Background(), attendance.CreateRequest{})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestUpdateRecord_FailureLeavesCollectionUnchanged(t *testing.T) {
	f, client := newFakeUpstream(t, mixedDatesBody)
	f.mux.HandleFunc("PUT /api/attendance/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	svc := NewAttendanceService(client)

	before, err := svc.GetView(context.Background(), attendance.ViewQuery{Range: attendance.RangeMonth})
	require.NoError(t, err)

	_, err = svc.UpdateRecord(context.Background(), attendance.UpdateRequest{
		ID: "1",
		CreateRequest: attendance.CreateRequest{
			EmployeeID: "emp-1",
			Date:       "2024-06-01",
			Status:     attendance.StatusAbsent,
		},
	})
	require.Error(t, err)

	after, err := svc.GetView(context.Background(), attendance.ViewQuery{Range: attendance.RangeMonth})
	require.NoError(t, err)
	assert.Equal(t, before.Records, after.Records)
}

func TestUpdateRecord_NotFound(t *testing.T) {
	f, client := newFakeUpstream(t, mixedDatesBody)
	f.mux.HandleFunc("PUT /api/attendance/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	svc := NewAttendanceService(client)

	_, err := svc.UpdateRecord(context.Background(), attendance.UpdateRequest{
		ID: "99",
		CreateRequest: attendance.CreateRequest{
			EmployeeID: "emp-1",
			Date:       "2024-06-01",
		},
	})

	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestDeleteRecord_RemovesLocally(t *testing.T) {
	f, client := newFakeUpstream(t, mixedDatesBody)
	f.mux.HandleFunc("DELETE /api/attendance/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	svc := NewAttendanceService(client)

	_, err := svc.GetView(context.Background(), attendance.ViewQuery{Range: attendance.RangeMonth})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(context.Background(), "2"))

	view, err := svc.GetView(context.Background(), attendance.ViewQuery{Range: attendance.RangeMonth})
	require.NoError(t, err)
	require.Len(t, view.Records, 2)
	for _, r := range view.Records {
		assert.NotEqual(t, "2", r.ID)
	}
}

func TestRangeBounds(t *testing.T) {
	// A Wednesday.
	now := time.Date(2024, 6, 5, 15, 0, 0, 0, time.UTC)

	start, end := rangeBounds(attendance.RangeToday, now)
	assert.Equal(t, "2024-06-05", start)
	assert.Equal(t, "2024-06-05", end)

	start, end = rangeBounds(attendance.RangeWeek, now)
	assert.Equal(t, "2024-06-03", start)
	assert.Equal(t, "2024-06-09", end)

	start, end = rangeBounds(attendance.RangeMonth, now)
	assert.Equal(t, "2024-06-01", start)
	assert.Equal(t, "2024-06-30", end)

	start, end = rangeBounds(attendance.RangeYear, now)
	assert.Equal(t, "2024-01-01", start)
	assert.Equal(t, "2024-12-31", end)
}
