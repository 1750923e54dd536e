package document

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/validator"
)

// ========================================
// DOCUMENT DTOs
// ========================================

type RawRecord struct {
	ID         normalize.FlexID   `json:"id"`
	Title      *string            `json:"title"`
	FileName   *string            `json:"fileName"`
	FileURL    *string            `json:"fileUrl"`
	Type       *string            `json:"type"`
	Owner      *string            `json:"owner"`
	UploadedAt normalize.FlexDate `json:"uploadedAt"`
}

type Record struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	FileName   string `json:"file_name"`
	FileURL    string `json:"file_url"`
	Type       string `json:"type"`
	Owner      string `json:"owner"`
	UploadedAt string `json:"uploaded_at"`
}

func NormalizeRecord(raw RawRecord) Record {
	return Record{
		ID:         raw.ID.String(),
		Title:      normalize.String(raw.Title, normalize.DefaultDash),
		FileName:   normalize.String(raw.FileName, normalize.DefaultDash),
		FileURL:    normalize.String(raw.FileURL, ""),
		Type:       normalize.String(raw.Type, "other"),
		Owner:      normalize.String(raw.Owner, normalize.DefaultUnknown),
		UploadedAt: raw.UploadedAt.String(),
	}
}

// ListConfig: search scans title, file name, and owner; the category
// filter matches document type.
var ListConfig = listview.Config[Record]{
	ID:         func(r Record) string { return r.ID },
	SearchText: func(r Record) []string { return []string{r.Title, r.FileName, r.Owner} },
	Category:   func(r Record) string { return r.Type },
}

type Stats struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
}

func ComputeStats(records []Record) Stats {
	return Stats{
		Total: len(records),
		ByType: listview.CountBy(records, func(r Record) (string, bool) {
			return r.Type, r.Type != ""
		}),
	}
}

// ========================================
// REQUESTS
// ========================================

var allowedExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".png", ".jpg", ".jpeg"}

// UploadRequest is the multipart create: metadata plus the file,
// streamed through to the upstream without local storage.
type UploadRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Owner string `json:"owner"`

	File       io.Reader             `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file is required",
		})
	} else {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if !validator.IsInSlice(ext, allowedExtensions) {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "unsupported file type: " + ext,
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "file size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID    string `json:"-"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type View struct {
	Records []Record       `json:"records"`
	Stats   Stats          `json:"stats"`
	State   listview.State `json:"state"`
}

// Service is the document page controller.
type Service interface {
	GetView(ctx context.Context, filter listview.FilterState) (View, error)
	Refresh(ctx context.Context) error
	Upload(ctx context.Context, req UploadRequest) (Record, error)
	UpdateRecord(ctx context.Context, req UpdateRequest) (Record, error)
	DeleteRecord(ctx context.Context, id string) error
}
