package attendance

import "context"

// Service is the attendance page controller: one in-memory collection,
// refreshed when the range changes, read through the filter/sort/stats
// pipeline, patched by mutations.
type Service interface {
	// GetView returns the filtered, sorted records with their stats.
	// Changing the range triggers a re-fetch; search/category/sort are
	// applied to the already-fetched collection.
	GetView(ctx context.Context, query ViewQuery) (View, error)

	// Refresh forces a re-fetch of the current range.
	Refresh(ctx context.Context) error

	// CreateRecord creates a record upstream and appends the
	// server-confirmed version to the collection.
	CreateRecord(ctx context.Context, req CreateRequest) (Record, error)

	// UpdateRecord updates a record upstream and replaces the local
	// copy with the server-returned version.
	UpdateRecord(ctx context.Context, req UpdateRequest) (Record, error)

	// DeleteRecord deletes a record upstream and removes it locally.
	DeleteRecord(ctx context.Context, id string) error
}
