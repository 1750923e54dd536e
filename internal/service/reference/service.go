package reference

import (
	"context"
	"errors"
	"log/slog"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/reference"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/cache"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

const (
	keyDepartments   = "reference:departments"
	keyDocumentTypes = "reference:document-types"
	keyLeaveTypes    = "reference:leave-types"
)

type ReferenceServiceImpl struct {
	client *upstream.Client
	cache  *cache.Cache
}

func NewReferenceService(client *upstream.Client, c *cache.Cache) reference.Service {
	return &ReferenceServiceImpl{client: client, cache: c}
}

// Departments implements reference.Service.
func (s *ReferenceServiceImpl) Departments(ctx context.Context) ([]reference.Department, error) {
	return cachedFetch(ctx, s, keyDepartments, "/api/departments", reference.NormalizeDepartment)
}

// DocumentTypes implements reference.Service.
func (s *ReferenceServiceImpl) DocumentTypes(ctx context.Context) ([]reference.DocumentType, error) {
	return cachedFetch(ctx, s, keyDocumentTypes, "/api/document-types", reference.NormalizeDocumentType)
}

// LeaveTypes implements reference.Service.
func (s *ReferenceServiceImpl) LeaveTypes(ctx context.Context) ([]reference.LeaveType, error) {
	return cachedFetch(ctx, s, keyLeaveTypes, "/api/leave-types", reference.NormalizeLeaveType)
}

// cachedFetch is cache-aside: serve from Redis when possible, fetch
// and backfill otherwise. Cache failures other than a miss degrade to
// a fetch rather than an error.
func cachedFetch[D, R any](ctx context.Context, s *ReferenceServiceImpl, key, path string, fn func(D) R) ([]R, error) {
	var cached []R
	err := s.cache.GetJSON(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("Reference cache read failed", "key", key, "error", err)
	}

	var raw []D
	if err := s.client.GetJSON(ctx, path, nil, &raw); err != nil {
		return nil, err
	}
	out := normalize.All(raw, fn)

	if err := s.cache.SetJSON(ctx, key, out); err != nil {
		slog.Warn("Reference cache write failed", "key", key, "error", err)
	}
	return out, nil
}
