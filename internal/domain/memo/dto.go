package memo

import (
	"context"
	"fmt"
	"strings"

	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/validator"
)

// ========================================
// MEMO DTOs
// ========================================

type RawRecord struct {
	ID        normalize.FlexID   `json:"id"`
	Title     *string            `json:"title"`
	Body      *string            `json:"body"`
	Author    *string            `json:"author"`
	Priority  *string            `json:"priority"`
	CreatedAt normalize.FlexDate `json:"createdAt"`
}

type Record struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Author    string `json:"author"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
}

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// BodyWordLimit caps the memo body, matching the compose form's
// word-count limiter.
const BodyWordLimit = 200

func NormalizeRecord(raw RawRecord) Record {
	return Record{
		ID:        raw.ID.String(),
		Title:     normalize.String(raw.Title, normalize.DefaultDash),
		Body:      normalize.String(raw.Body, ""),
		Author:    normalize.String(raw.Author, normalize.DefaultUnknown),
		Priority:  normalize.String(raw.Priority, PriorityNormal),
		CreatedAt: raw.CreatedAt.String(),
	}
}

// ListConfig: search scans title and author; the category filter
// matches priority.
var ListConfig = listview.Config[Record]{
	ID:         func(r Record) string { return r.ID },
	SearchText: func(r Record) []string { return []string{r.Title, r.Author} },
	Category:   func(r Record) string { return r.Priority },
}

type Stats struct {
	Total      int            `json:"total"`
	ByPriority map[string]int `json:"by_priority"`
}

func ComputeStats(records []Record) Stats {
	return Stats{
		Total: len(records),
		ByPriority: listview.CountBy(records, func(r Record) (string, bool) {
			return r.Priority, r.Priority != ""
		}),
	}
}

// ========================================
// REQUESTS
// ========================================

var validPriorities = []string{PriorityLow, PriorityNormal, PriorityHigh}

type CreateRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority string `json:"priority"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	} else if words := validator.WordCount(r.Body); words > BodyWordLimit {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("body must not exceed %d words (got %d)", BodyWordLimit, words),
		})
	}

	if r.Priority != "" && !validator.IsInSlice(r.Priority, validPriorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: " + strings.Join(validPriorities, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID string `json:"-"`
	CreateRequest
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if err := r.CreateRequest.Validate(); err != nil {
		if inner, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, inner...)
		}
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

// Service is the memo board controller.
type Service interface {
	GetView(ctx context.Context, filter listview.FilterState) (View, error)
	Refresh(ctx context.Context) error
	CreateRecord(ctx context.Context, req CreateRequest) (Record, error)
	UpdateRecord(ctx context.Context, req UpdateRequest) (Record, error)
	DeleteRecord(ctx context.Context, id string) error
}
