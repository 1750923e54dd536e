package review

import (
	"context"
	"errors"
	"log/slog"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/review"
	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

type ReviewServiceImpl struct {
	client  *upstream.Client
	records *listview.Collection[review.Record]
}

func NewReviewService(client *upstream.Client) review.Service {
	return &ReviewServiceImpl{
		client:  client,
		records: listview.NewCollection(review.ListConfig.ID),
	}
}

// GetView implements review.Service.
func (s *ReviewServiceImpl) GetView(ctx context.Context, filter listview.FilterState) (review.View, error) {
	if !s.records.Loaded() {
		if err := s.Refresh(ctx); err != nil {
			slog.Error("Failed to load review collection", "error", err)
		}
	}

	records, state := listview.View(s.records, filter, review.ListConfig, nil)
	return review.View{
		Records: records,
		Stats:   review.ComputeStats(records),
		State:   state,
	}, nil
}

// Refresh implements review.Service.
func (s *ReviewServiceImpl) Refresh(ctx context.Context) error {
	return s.records.Load(ctx, func(ctx context.Context) ([]review.Record, error) {
		var raw []review.RawRecord
		if err := s.client.GetJSON(ctx, "/api/reviews", nil, &raw); err != nil {
			return nil, err
		}
		return normalize.All(raw, review.NormalizeRecord), nil
	})
}

// CreateRecord implements review.Service.
func (s *ReviewServiceImpl) CreateRecord(ctx context.Context, req review.CreateRequest) (review.Record, error) {
	if err := req.Validate(); err != nil {
		return review.Record{}, err
	}

	var raw review.RawRecord
	if err := s.client.PostJSON(ctx, "/api/reviews", req, &raw); err != nil {
		return review.Record{}, err
	}

	record := review.NormalizeRecord(raw)
	s.records.Store().Append(record)
	return record, nil
}

// UpdateRecord implements review.Service.
func (s *ReviewServiceImpl) UpdateRecord(ctx context.Context, req review.UpdateRequest) (review.Record, error) {
	if err := req.Validate(); err != nil {
		return review.Record{}, err
	}

	var raw review.RawRecord
	if err := s.client.PutJSON(ctx, "/api/reviews/"+req.ID, req.CreateRequest, &raw); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return review.Record{}, review.ErrReviewNotFound
		}
		return review.Record{}, err
	}

	record := review.NormalizeRecord(raw)
	s.records.Store().ReplaceByID(record)
	return record, nil
}

// DeleteRecord implements review.Service.
func (s *ReviewServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/reviews/"+id); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return review.ErrReviewNotFound
		}
		return err
	}

	s.records.Store().RemoveByID(id)
	return nil
}
