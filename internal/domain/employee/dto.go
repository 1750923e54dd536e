package employee

import (
	"context"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/reference"
	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type RawRecord struct {
	ID         normalize.FlexID   `json:"id"`
	FullName   *string            `json:"fullName"`
	Email      *string            `json:"email"`
	Department *string            `json:"department"`
	Position   *string            `json:"position"`
	Status     *string            `json:"status"`
	JoinDate   normalize.FlexDate `json:"joinDate"`
}

type Record struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Status     string `json:"status"`
	JoinDate   string `json:"join_date"`
}

const (
	StatusActive   = "active"
	StatusResigned = "resigned"
)

func NormalizeRecord(raw RawRecord) Record {
	return Record{
		ID:         raw.ID.String(),
		Name:       normalize.String(raw.FullName, normalize.DefaultUnknown),
		Email:      normalize.String(raw.Email, normalize.DefaultDash),
		Department: normalize.String(raw.Department, normalize.DefaultUnknown),
		Position:   normalize.String(raw.Position, normalize.DefaultDash),
		Status:     normalize.String(raw.Status, StatusActive),
		JoinDate:   raw.JoinDate.String(),
	}
}

// ListConfig: search scans name, email, and department; the category
// filter matches department.
var ListConfig = listview.Config[Record]{
	ID:         func(r Record) string { return r.ID },
	SearchText: func(r Record) []string { return []string{r.Name, r.Email, r.Department} },
	Category:   func(r Record) string { return r.Department },
}

// Stats feeds the directory stat cards.
type Stats struct {
	Total         int            `json:"total"`
	ByDepartment  map[string]int `json:"by_department"`
	Active        int            `json:"active"`
	ActivePercent string         `json:"active_percent"`
}

func ComputeStats(records []Record) Stats {
	stats := Stats{
		Total: len(records),
		ByDepartment: listview.CountBy(records, func(r Record) (string, bool) {
			return r.Department, r.Department != normalize.DefaultUnknown
		}),
	}
	for _, r := range records {
		if r.Status == StatusActive {
			stats.Active++
		}
	}
	stats.ActivePercent = listview.Percent(stats.Active, stats.Total)
	return stats
}

// ========================================
// REQUESTS
// ========================================

type CreateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	JoinDate   string `json:"join_date"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
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

// View carries both collections the directory page needs. The
// department list backs the filter dropdown and has its own fetch
// state, independent of the employee collection's.
type View struct {
	Records         []Record               `json:"records"`
	Stats           Stats                  `json:"stats"`
	State           listview.State         `json:"state"`
	Departments     []reference.Department `json:"departments"`
	DepartmentState listview.State         `json:"department_state"`
}

// Service is the employee directory controller.
type Service interface {
	GetView(ctx context.Context, filter listview.FilterState) (View, error)
	Refresh(ctx context.Context) error
	CreateRecord(ctx context.Context, req CreateRequest) (Record, error)
	UpdateRecord(ctx context.Context, req UpdateRequest) (Record, error)
	DeleteRecord(ctx context.Context, id string) error
}
