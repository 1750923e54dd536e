package memo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/memo"
	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

type MemoServiceImpl struct {
	client  *upstream.Client
	records *listview.Collection[memo.Record]
}

func NewMemoService(client *upstream.Client) memo.Service {
	return &MemoServiceImpl{
		client:  client,
		records: listview.NewCollection(memo.ListConfig.ID),
	}
}

// GetView implements memo.Service.
func (s *MemoServiceImpl) GetView(ctx context.Context, filter listview.FilterState) (memo.View, error) {
	if !s.records.Loaded() {
		if err := s.Refresh(ctx); err != nil {
			slog.Error("Failed to load memo collection", "error", err)
		}
	}

	records, state := listview.View(s.records, filter, memo.ListConfig, nil)
	return memo.View{
		Records: records,
		Stats:   memo.ComputeStats(records),
		State:   state,
	}, nil
}

// Refresh implements memo.Service.
func (s *MemoServiceImpl) Refresh(ctx context.Context) error {
	return s.records.Load(ctx, func(ctx context.Context) ([]memo.Record, error) {
		var raw []memo.RawRecord
		if err := s.client.GetJSON(ctx, "/api/memos", nil, &raw); err != nil {
			return nil, err
		}
		return normalize.All(raw, memo.NormalizeRecord), nil
	})
}

// CreateRecord implements memo.Service.
func (s *MemoServiceImpl) CreateRecord(ctx context.Context, req memo.CreateRequest) (memo.Record, error) {
	if err := req.Validate(); err != nil {
		return memo.Record{}, err
	}

	var raw memo.RawRecord
	if err := s.client.PostJSON(ctx, "/api/memos", req, &raw); err != nil {
		return memo.Record{}, err
	}

	record := memo.NormalizeRecord(raw)
	s.records.Store().Append(record)
	return record, nil
}

// UpdateRecord implements memo.Service.
func (s *MemoServiceImpl) UpdateRecord(ctx context.Context, req memo.UpdateRequest) (memo.Record, error) {
	if err := req.Validate(); err != nil {
		return memo.Record{}, err
	}

	var raw memo.RawRecord
	if err := s.client.PutJSON(ctx, "/api/memos/"+req.ID, req.CreateRequest, &raw); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return memo.Record{}, memo.ErrMemoNotFound
		}
		return memo.Record{}, err
	}

	record := memo.NormalizeRecord(raw)
	s.records.Store().ReplaceByID(record)
	return record, nil
}

// DeleteRecord implements memo.Service.
func (s *MemoServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/memos/"+id); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return memo.ErrMemoNotFound
		}
		return err
	}

	s.records.Store().RemoveByID(id)
	return nil
}
