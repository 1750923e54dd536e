package document

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/document"
	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

type DocumentServiceImpl struct {
	client  *upstream.Client
	records *listview.Collection[document.Record]
}

func NewDocumentService(client *upstream.Client) document.Service {
	return &DocumentServiceImpl{
		client:  client,
		records: listview.NewCollection(document.ListConfig.ID),
	}
}

// GetView implements document.Service.
func (s *DocumentServiceImpl) GetView(ctx context.Context, filter listview.FilterState) (document.View, error) {
	if !s.records.Loaded() {
		if err := s.Refresh(ctx); err != nil {
			slog.Error("Failed to load document collection", "error", err)
		}
	}

	records, state := listview.View(s.records, filter, document.ListConfig, nil)
	return document.View{
		Records: records,
		Stats:   document.ComputeStats(records),
		State:   state,
	}, nil
}

// Refresh implements document.Service.
func (s *DocumentServiceImpl) Refresh(ctx context.Context) error {
	return s.records.Load(ctx, func(ctx context.Context) ([]document.Record, error) {
		var raw []document.RawRecord
		if err := s.client.GetJSON(ctx, "/api/documents", nil, &raw); err != nil {
			return nil, err
		}
		return normalize.All(raw, document.NormalizeRecord), nil
	})
}

// Upload implements document.Service. The file streams through to the
// upstream in a single multipart request: a "documentData" JSON field
// and the file part side by side. Nothing is stored locally.
func (s *DocumentServiceImpl) Upload(ctx context.Context, req document.UploadRequest) (document.Record, error) {
	if err := req.Validate(); err != nil {
		return document.Record{}, err
	}

	opID := uuid.NewString()
	var raw document.RawRecord
	err := s.client.PostMultipart(
		ctx,
		"/api/documents",
		"documentData",
		req,
		req.FileHeader.Filename,
		req.File,
		&raw,
	)
	if err != nil {
		slog.Error("Document upload failed", "op_id", opID, "file", req.FileHeader.Filename, "error", err)
		return document.Record{}, err
	}

	record := document.NormalizeRecord(raw)
	s.records.Store().Append(record)
	slog.Info("Document uploaded", "op_id", opID, "id", record.ID)
	return record, nil
}

// UpdateRecord implements document.Service.
func (s *DocumentServiceImpl) UpdateRecord(ctx context.Context, req document.UpdateRequest) (document.Record, error) {
	if err := req.Validate(); err != nil {
		return document.Record{}, err
	}

	var raw document.RawRecord
	if err := s.client.PutJSON(ctx, "/api/documents/"+req.ID, req, &raw); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return document.Record{}, document.ErrDocumentNotFound
		}
		return document.Record{}, err
	}

	record := document.NormalizeRecord(raw)
	s.records.Store().ReplaceByID(record)
	return record, nil
}

// DeleteRecord implements document.Service.
func (s *DocumentServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/documents/"+id); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return document.ErrDocumentNotFound
		}
		return err
	}

	s.records.Store().RemoveByID(id)
	return nil
}
