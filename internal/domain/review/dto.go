package review

import (
	"context"

	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/validator"
)

// ========================================
// PERFORMANCE REVIEW DTOs
// ========================================

type RawRecord struct {
	ID           normalize.FlexID   `json:"id"`
	EmployeeName *string            `json:"employeeName"`
	Reviewer     *string            `json:"reviewer"`
	Period       *string            `json:"period"`
	Rating       *float64           `json:"rating"`
	Summary      *string            `json:"summary"`
	ReviewedAt   normalize.FlexDate `json:"reviewedAt"`
}

type Record struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Reviewer   string  `json:"reviewer"`
	Period     string  `json:"period"`
	Rating     float64 `json:"rating"`
	Summary    string  `json:"summary"`
	ReviewedAt string  `json:"reviewed_at"`
}

func NormalizeRecord(raw RawRecord) Record {
	return Record{
		ID:         raw.ID.String(),
		Name:       normalize.String(raw.EmployeeName, normalize.DefaultUnknown),
		Reviewer:   normalize.String(raw.Reviewer, normalize.DefaultUnknown),
		Period:     normalize.String(raw.Period, normalize.DefaultNA),
		Rating:     normalize.Float(raw.Rating),
		Summary:    normalize.String(raw.Summary, normalize.DefaultDash),
		ReviewedAt: raw.ReviewedAt.String(),
	}
}

// ListConfig: search scans employee and reviewer names; the category
// filter matches the review period.
var ListConfig = listview.Config[Record]{
	ID:         func(r Record) string { return r.ID },
	SearchText: func(r Record) []string { return []string{r.Name, r.Reviewer} },
	Category:   func(r Record) string { return r.Period },
}

type Stats struct {
	Total         int    `json:"total"`
	AverageRating string `json:"average_rating"`
}

func ComputeStats(records []Record) Stats {
	sum := listview.SumBy(records, func(r Record) float64 { return r.Rating })
	return Stats{
		Total:         len(records),
		AverageRating: listview.Average(sum, len(records)),
	}
}

// ========================================
// REQUESTS
// ========================================

type CreateRequest struct {
	EmployeeID string  `json:"employee_id"`
	Period     string  `json:"period"`
	Rating     float64 `json:"rating"`
	Summary    string  `json:"summary"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period is required",
		})
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
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

// Service is the performance review controller.
type Service interface {
	GetView(ctx context.Context, filter listview.FilterState) (View, error)
	Refresh(ctx context.Context) error
	CreateRecord(ctx context.Context, req CreateRequest) (Record, error)
	UpdateRecord(ctx context.Context, req UpdateRequest) (Record, error)
	DeleteRecord(ctx context.Context, id string) error
}
