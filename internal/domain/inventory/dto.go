package inventory

import (
	"context"
	"strings"

	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/validator"
)

// ========================================
// INVENTORY TRANSACTION DTOs
// ========================================

type RawRecord struct {
	ID        normalize.FlexID   `json:"id"`
	Item      *string            `json:"item"`
	SKU       *string            `json:"sku"`
	Direction *string            `json:"direction"`
	Quantity  *int               `json:"quantity"`
	UnitPrice *float64           `json:"unitPrice"`
	Date      normalize.FlexDate `json:"date"`
	Note      *string            `json:"note"`
}

type Record struct {
	ID        string  `json:"id"`
	Item      string  `json:"item"`
	SKU       string  `json:"sku"`
	Direction string  `json:"direction"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Date      string  `json:"date"`
	Note      string  `json:"note"`
}

const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

func NormalizeRecord(raw RawRecord) Record {
	return Record{
		ID:        raw.ID.String(),
		Item:      normalize.String(raw.Item, normalize.DefaultUnknown),
		SKU:       normalize.String(raw.SKU, normalize.DefaultDash),
		Direction: normalize.String(raw.Direction, DirectionIn),
		Quantity:  normalize.Int(raw.Quantity),
		UnitPrice: normalize.Float(raw.UnitPrice),
		Date:      raw.Date.String(),
		Note:      normalize.String(raw.Note, normalize.DefaultDash),
	}
}

// ListConfig: search scans item name and SKU; the category filter
// matches the transaction direction.
var ListConfig = listview.Config[Record]{
	ID:         func(r Record) string { return r.ID },
	SearchText: func(r Record) []string { return []string{r.Item, r.SKU} },
	Category:   func(r Record) string { return r.Direction },
}

type Stats struct {
	Total    int `json:"total"`
	TotalIn  int `json:"total_in"`
	TotalOut int `json:"total_out"`
	Net      int `json:"net"`
}

func ComputeStats(records []Record) Stats {
	stats := Stats{Total: len(records)}
	for _, r := range records {
		switch r.Direction {
		case DirectionOut:
			stats.TotalOut += r.Quantity
		default:
			stats.TotalIn += r.Quantity
		}
	}
	stats.Net = stats.TotalIn - stats.TotalOut
	return stats
}

// ========================================
// REQUESTS
// ========================================

var validDirections = []string{DirectionIn, DirectionOut}

type CreateRequest struct {
	Item      string  `json:"item"`
	SKU       string  `json:"sku"`
	Direction string  `json:"direction"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Date      string  `json:"date"`
	Note      string  `json:"note"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Item) {
		errs = append(errs, validator.ValidationError{
			Field:   "item",
			Message: "item is required",
		})
	}
	if !validator.IsInSlice(r.Direction, validDirections) {
		errs = append(errs, validator.ValidationError{
			Field:   "direction",
			Message: "direction must be one of: " + strings.Join(validDirections, ", "),
		})
	}
	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than zero",
		})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
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

type View struct {
	Records []Record       `json:"records"`
	Stats   Stats          `json:"stats"`
	State   listview.State `json:"state"`
}

// Service is the inventory transactions controller.
type Service interface {
	GetView(ctx context.Context, filter listview.FilterState) (View, error)
	Refresh(ctx context.Context) error
	CreateRecord(ctx context.Context, req CreateRequest) (Record, error)
	UpdateRecord(ctx context.Context, req UpdateRequest) (Record, error)
	DeleteRecord(ctx context.Context, id string) error
}
