package attendance

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/attendance"
	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

type AttendanceServiceImpl struct {
	client  *upstream.Client
	records *listview.Collection[attendance.Record]

	// Guards the loaded-range bookkeeping; the collection guards itself.
	mu          sync.Mutex
	loadedRange string
	now         func() time.Time
}

func NewAttendanceService(client *upstream.Client) attendance.Service {
	return &AttendanceServiceImpl{
		client:  client,
		records: listview.NewCollection(attendance.ListConfig.ID),
		now:     time.Now,
	}
}

// GetView implements attendance.Service. A range change re-fetches
// from the upstream (range filtering is server-side); search, status
// and sort run on the fetched collection.
func (s *AttendanceServiceImpl) GetView(ctx context.Context, query attendance.ViewQuery) (attendance.View, error) {
	if err := query.Validate(); err != nil {
		return attendance.View{}, err
	}

	s.ensureRange(ctx, query.Range)

	records, state := listview.View(s.records, query.Filter, attendance.ListConfig, attendance.SortKey)
	return attendance.View{
		Records: records,
		Stats:   attendance.ComputeStats(records),
		State:   state,
	}, nil
}

// Refresh implements attendance.Service.
func (s *AttendanceServiceImpl) Refresh(ctx context.Context) error {
	s.mu.Lock()
	rng := s.loadedRange
	s.mu.Unlock()
	if rng == "" {
		rng = attendance.RangeToday
	}
	return s.load(ctx, rng)
}

// ensureRange re-fetches when the requested range differs from the
// loaded one. A fetch failure is not fatal here: the stale collection
// stays visible and the state carries the error.
func (s *AttendanceServiceImpl) ensureRange(ctx context.Context, rng string) {
	s.mu.Lock()
	needsLoad := rng != s.loadedRange || !s.records.Loaded()
	s.mu.Unlock()

	if !needsLoad {
		return
	}
	if err := s.load(ctx, rng); err != nil {
		slog.Error("Failed to load attendance collection", "range", rng, "error", err)
	}
}

func (s *AttendanceServiceImpl) load(ctx context.Context, rng string) error {
	err := s.records.Load(ctx, func(ctx context.Context) ([]attendance.Record, error) {
		start, end := rangeBounds(rng, s.now())
		query := url.Values{}
		query.Set("start_date", start)
		query.Set("end_date", end)

		var raw []attendance.RawRecord
		if err := s.client.GetJSON(ctx, "/api/attendance", query, &raw); err != nil {
			return nil, err
		}
		return normalize.All(raw, attendance.NormalizeRecord), nil
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.loadedRange = rng
	s.mu.Unlock()
	return nil
}

// rangeBounds resolves a range mode to inclusive start/end dates.
// Weeks start on Monday.
func rangeBounds(rng string, now time.Time) (string, string) {
	const layout = "2006-01-02"
	switch rng {
	case attendance.RangeWeek:
		offset := (int(now.Weekday()) + 6) % 7
		start := now.AddDate(0, 0, -offset)
		return start.Format(layout), start.AddDate(0, 0, 6).Format(layout)
	case attendance.RangeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start.Format(layout), start.AddDate(0, 1, -1).Format(layout)
	case attendance.RangeYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return start.Format(layout), time.Date(now.Year(), 12, 31, 0, 0, 0, 0, now.Location()).Format(layout)
	default:
		day := now.Format(layout)
		return day, day
	}
}

// CreateRecord implements attendance.Service. On success the
// server-confirmed record, not the request payload, joins the
// collection.
func (s *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	opID := uuid.NewString()
	var raw attendance.RawRecord
	if err := s.client.PostJSON(ctx, "/api/attendance", req, &raw); err != nil {
		slog.Error("Attendance create failed", "op_id", opID, "error", err)
		return attendance.Record{}, err
	}

	record := attendance.NormalizeRecord(raw)
	s.records.Store().Append(record)
	slog.Info("Attendance record created", "op_id", opID, "id", record.ID)
	return record, nil
}

// UpdateRecord implements attendance.Service.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	var raw attendance.RawRecord
	if err := s.client.PutJSON(ctx, "/api/attendance/"+req.ID, req.CreateRequest, &raw); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}

	record := attendance.NormalizeRecord(raw)
	s.records.Store().ReplaceByID(record)
	return record, nil
}

// DeleteRecord implements attendance.Service.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/attendance/"+id); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return attendance.ErrRecordNotFound
		}
		return err
	}

	s.records.Store().RemoveByID(id)
	return nil
}
