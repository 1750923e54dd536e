package inventory

import (
	"context"
	"errors"
	"log/slog"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/inventory"
	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

type InventoryServiceImpl struct {
	client  *upstream.Client
	records *listview.Collection[inventory.Record]
}

func NewInventoryService(client *upstream.Client) inventory.Service {
	return &InventoryServiceImpl{
		client:  client,
		records: listview.NewCollection(inventory.ListConfig.ID),
	}
}

// GetView implements inventory.Service.
func (s *InventoryServiceImpl) GetView(ctx context.Context, filter listview.FilterState) (inventory.View, error) {
	if !s.records.Loaded() {
		if err := s.Refresh(ctx); err != nil {
			slog.Error("Failed to load inventory collection", "error", err)
		}
	}

	records, state := listview.View(s.records, filter, inventory.ListConfig, nil)
	return inventory.View{
		Records: records,
		Stats:   inventory.ComputeStats(records),
		State:   state,
	}, nil
}

// Refresh implements inventory.Service.
func (s *InventoryServiceImpl) Refresh(ctx context.Context) error {
	return s.records.Load(ctx, func(ctx context.Context) ([]inventory.Record, error) {
		var raw []inventory.RawRecord
		if err := s.client.GetJSON(ctx, "/api/inventory/transactions", nil, &raw); err != nil {
			return nil, err
		}
		return normalize.All(raw, inventory.NormalizeRecord), nil
	})
}

// CreateRecord implements inventory.Service.
func (s *InventoryServiceImpl) CreateRecord(ctx context.Context, req inventory.CreateRequest) (inventory.Record, error) {
	if err := req.Validate(); err != nil {
		return inventory.Record{}, err
	}

	var raw inventory.RawRecord
	if err := s.client.PostJSON(ctx, "/api/inventory/transactions", req, &raw); err != nil {
		return inventory.Record{}, err
	}

	record := inventory.NormalizeRecord(raw)
	s.records.Store().Append(record)
	return record, nil
}

// UpdateRecord implements inventory.Service.
func (s *InventoryServiceImpl) UpdateRecord(ctx context.Context, req inventory.UpdateRequest) (inventory.Record, error) {
	if err := req.Validate(); err != nil {
		return inventory.Record{}, err
	}

	var raw inventory.RawRecord
	if err := s.client.PutJSON(ctx, "/api/inventory/transactions/"+req.ID, req.CreateRequest, &raw); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return inventory.Record{}, inventory.ErrTransactionNotFound
		}
		return inventory.Record{}, err
	}

	record := inventory.NormalizeRecord(raw)
	s.records.Store().ReplaceByID(record)
	return record, nil
}

// DeleteRecord implements inventory.Service.
func (s *InventoryServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/inventory/transactions/"+id); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return inventory.ErrTransactionNotFound
		}
		return err
	}

	s.records.Store().RemoveByID(id)
	return nil
}
