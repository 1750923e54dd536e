package leave

import (
	"context"
	"strings"

	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type RawRecord struct {
	ID           normalize.FlexID   `json:"id"`
	EmployeeName *string            `json:"employeeName"`
	Type         *string            `json:"type"`
	StartDate    normalize.FlexDate `json:"startDate"`
	EndDate      normalize.FlexDate `json:"endDate"`
	Days         *float64           `json:"days"`
	Status       *string            `json:"status"`
	Reason       *string            `json:"reason"`
}

type Record struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Days      float64 `json:"days"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason"`
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func NormalizeRecord(raw RawRecord) Record {
	return Record{
		ID:        raw.ID.String(),
		Name:      normalize.String(raw.EmployeeName, normalize.DefaultUnknown),
		Type:      normalize.String(raw.Type, normalize.DefaultNA),
		StartDate: raw.StartDate.String(),
		EndDate:   raw.EndDate.String(),
		Days:      normalize.Float(raw.Days),
		Status:    normalize.String(raw.Status, StatusPending),
		Reason:    normalize.String(raw.Reason, normalize.DefaultDash),
	}
}

// ListConfig: search scans employee name and leave type; the category
// filter matches status.
var ListConfig = listview.Config[Record]{
	ID:         func(r Record) string { return r.ID },
	SearchText: func(r Record) []string { return []string{r.Name, r.Type} },
	Category:   func(r Record) string { return r.Status },
}

type Stats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	TotalDays float64        `json:"total_days"`
}

func ComputeStats(records []Record) Stats {
	return Stats{
		Total: len(records),
		ByStatus: listview.CountBy(records, func(r Record) (string, bool) {
			return r.Status, r.Status != ""
		}),
		TotalDays: listview.SumBy(records, func(r Record) float64 { return r.Days }),
	}
}

// ========================================
// REQUESTS
// ========================================

type CreateRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

var decidableStatuses = []string{StatusApproved, StatusRejected}

func (r *StatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !validator.IsInSlice(r.Status, decidableStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(decidableStatuses, ", "),
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

// Service is the leave requests controller.
type Service interface {
	GetView(ctx context.Context, filter listview.FilterState) (View, error)
	Refresh(ctx context.Context) error
	CreateRecord(ctx context.Context, req CreateRequest) (Record, error)
	SetStatus(ctx context.Context, req StatusRequest) (Record, error)
	DeleteRecord(ctx context.Context, id string) error
}
