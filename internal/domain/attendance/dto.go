package attendance

import (
	"strings"
	"time"

	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// RawRecord is the attendance DTO as the upstream returns it. Dates
// arrive as either ISO strings or [year, month, day] tuples depending
// on the endpoint; most fields are nullable.
type RawRecord struct {
	ID           normalize.FlexID   `json:"id"`
	EmployeeID   *string            `json:"employeeId"`
	EmployeeName *string            `json:"employeeName"`
	Department   *string            `json:"department"`
	Date         normalize.FlexDate `json:"date"`
	CheckInTime  *string            `json:"checkInTime"`
	CheckOutTime *string            `json:"checkOutTime"`
	Status       *string            `json:"status"`
	WorkHours    *float64           `json:"workHours"`
}

// Record is the normalized view shape. Every date is "YYYY-MM-DD" or
// empty, every nullable field has its default, and ArrivalStatus is
// derived once here rather than in view code.
type Record struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	Department    string  `json:"department"`
	Date          string  `json:"date"`
	SignIn        string  `json:"sign_in"`
	SignOut       string  `json:"sign_out"`
	Status        string  `json:"status"`
	ArrivalStatus string  `json:"arrival_status"`
	WorkHours     float64 `json:"work_hours"`
	HoursLabel    string  `json:"hours_label"`
}

// Attendance statuses as the upstream reports them.
const (
	StatusPresent   = "present"
	StatusAbsent    = "absent"
	StatusLeave     = "leave"
	StatusNotMarked = "not_marked"
)

const (
	ArrivalOnTime = "On Time"
	ArrivalLate   = "Late"
)

// Sign-ins at or before this clock time count as on time.
const onTimeDeadline = "09:00"

// NormalizeRecord maps the upstream DTO to the view shape. Absent
// fields produce defaults, never a panic.
func NormalizeRecord(raw RawRecord) Record {
	signIn := normalize.String(raw.CheckInTime, "")
	hours := normalize.Float(raw.WorkHours)

	return Record{
		ID:            raw.ID.String(),
		EmployeeID:    normalize.String(raw.EmployeeID, normalize.DefaultDash),
		Name:          normalize.String(raw.EmployeeName, normalize.DefaultUnknown),
		Department:    normalize.String(raw.Department, normalize.DefaultDash),
		Date:          raw.Date.String(),
		SignIn:        defaultDash(signIn),
		SignOut:       normalize.String(raw.CheckOutTime, normalize.DefaultDash),
		Status:        normalize.String(raw.Status, StatusNotMarked),
		ArrivalStatus: arrivalStatus(signIn),
		WorkHours:     hours,
		HoursLabel:    listview.Average(hours, 1) + "h",
	}
}

func defaultDash(s string) string {
	if s == "" {
		return normalize.DefaultDash
	}
	return s
}

// arrivalStatus derives the display status from the sign-in time.
// HH:MM strings compare correctly as text.
func arrivalStatus(signIn string) string {
	if signIn == "" {
		return normalize.DefaultDash
	}
	if signIn > onTimeDeadline {
		return ArrivalLate
	}
	return ArrivalOnTime
}

// ListConfig binds Record to the list engine: free-text search scans
// name, employee id, and department; the category filter matches status.
var ListConfig = listview.Config[Record]{
	ID:         func(r Record) string { return r.ID },
	SearchText: func(r Record) []string { return []string{r.Name, r.EmployeeID, r.Department} },
	Category:   func(r Record) string { return r.Status },
}

// SortKey orders records by sign-in time of day. Records without a
// sign-in have no key and sort last.
func SortKey(r Record) (int64, bool) {
	if r.SignIn == "" || r.SignIn == normalize.DefaultDash {
		return 0, false
	}
	t, err := time.Parse("15:04", r.SignIn)
	if err != nil {
		return 0, false
	}
	return int64(t.Hour()*60 + t.Minute()), true
}

// ========================================
// REQUESTS
// ========================================

// ViewQuery selects the server-side date range and the in-memory
// filter state for one view read.
type ViewQuery struct {
	Range  string
	Filter listview.FilterState
}

// Range modes; ranges are resolved server-side via query parameters,
// search and status filtering stay on the fetched page.
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

var validRanges = []string{RangeToday, RangeWeek, RangeMonth, RangeYear}

func (q *ViewQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Range == "" {
		q.Range = RangeToday
	}
	if !validator.IsInSlice(q.Range, validRanges) {
		errs = append(errs, validator.ValidationError{
			Field:   "range",
			Message: "range must be one of: " + strings.Join(validRanges, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	SignIn     string `json:"sign_in"`
	SignOut    string `json:"sign_out"`
	Status     string `json:"status"`
}

var validStatuses = []string{StatusPresent, StatusAbsent, StatusLeave, StatusNotMarked}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.SignIn != "" && !validator.IsValidClockTime(r.SignIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "sign_in",
			Message: "sign_in must be in HH:MM format",
		})
	}

	if r.SignOut != "" && !validator.IsValidClockTime(r.SignOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "sign_out",
			Message: "sign_out must be in HH:MM format",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(validStatuses, ", "),
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

// View is the full page payload: the filtered and sorted records, the
// stat-card numbers derived from them, and the fetch state.
type View struct {
	Records []Record       `json:"records"`
	Stats   Stats          `json:"stats"`
	State   listview.State `json:"state"`
}
