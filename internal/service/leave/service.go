package leave

import (
	"context"
	"errors"
	"log/slog"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/leave"
	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

type LeaveServiceImpl struct {
	client  *upstream.Client
	records *listview.Collection[leave.Record]
}

func NewLeaveService(client *upstream.Client) leave.Service {
	return &LeaveServiceImpl{
		client:  client,
		records: listview.NewCollection(leave.ListConfig.ID),
	}
}

// GetView implements leave.Service.
func (s *LeaveServiceImpl) GetView(ctx context.Context, filter listview.FilterState) (leave.View, error) {
	if !s.records.Loaded() {
		if err := s.Refresh(ctx); err != nil {
			slog.Error("Failed to load leave collection", "error", err)
		}
	}

	records, state := listview.View(s.records, filter, leave.ListConfig, nil)
	return leave.View{
		Records: records,
		Stats:   leave.ComputeStats(records),
		State:   state,
	}, nil
}

// Refresh implements leave.Service.
func (s *LeaveServiceImpl) Refresh(ctx context.Context) error {
	return s.records.Load(ctx, func(ctx context.Context) ([]leave.Record, error) {
		var raw []leave.RawRecord
		if err := s.client.GetJSON(ctx, "/api/leaves", nil, &raw); err != nil {
			return nil, err
		}
		return normalize.All(raw, leave.NormalizeRecord), nil
	})
}

// CreateRecord implements leave.Service.
func (s *LeaveServiceImpl) CreateRecord(ctx context.Context, req leave.CreateRequest) (leave.Record, error) {
	if err := req.Validate(); err != nil {
		return leave.Record{}, err
	}

	var raw leave.RawRecord
	if err := s.client.PostJSON(ctx, "/api/leaves", req, &raw); err != nil {
		return leave.Record{}, err
	}

	record := leave.NormalizeRecord(raw)
	s.records.Store().Append(record)
	return record, nil
}

// SetStatus implements leave.Service: approve or reject a request.
func (s *LeaveServiceImpl) SetStatus(ctx context.Context, req leave.StatusRequest) (leave.Record, error) {
	if err := req.Validate(); err != nil {
		return leave.Record{}, err
	}

	var raw leave.RawRecord
	if err := s.client.PutJSON(ctx, "/api/leaves/"+req.ID+"/status", req, &raw); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return leave.Record{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Record{}, err
	}

	record := leave.NormalizeRecord(raw)
	s.records.Store().ReplaceByID(record)
	return record, nil
}

// DeleteRecord implements leave.Service.
func (s *LeaveServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/leaves/"+id); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return leave.ErrLeaveRequestNotFound
		}
		return err
	}

	s.records.Store().RemoveByID(id)
	return nil
}
