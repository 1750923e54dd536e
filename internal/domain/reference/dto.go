// Package reference holds the auxiliary lookup lists that back the
// filter dropdowns. They change rarely and are cached, unlike page
// collections.
package reference

import (
	"context"

	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
)

type RawDepartment struct {
	ID   normalize.FlexID `json:"id"`
	Name *string          `json:"name"`
}

type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NormalizeDepartment(raw RawDepartment) Department {
	return Department{
		ID:   raw.ID.String(),
		Name: normalize.String(raw.Name, normalize.DefaultUnknown),
	}
}

type RawDocumentType struct {
	ID   normalize.FlexID `json:"id"`
	Name *string          `json:"name"`
}

type DocumentType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NormalizeDocumentType(raw RawDocumentType) DocumentType {
	return DocumentType{
		ID:   raw.ID.String(),
		Name: normalize.String(raw.Name, normalize.DefaultUnknown),
	}
}

type RawLeaveType struct {
	ID   normalize.FlexID `json:"id"`
	Name *string          `json:"name"`
}

type LeaveType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NormalizeLeaveType(raw RawLeaveType) LeaveType {
	return LeaveType{
		ID:   raw.ID.String(),
		Name: normalize.String(raw.Name, normalize.DefaultUnknown),
	}
}

// Service serves the lookup lists, cache-aside over the upstream.
type Service interface {
	Departments(ctx context.Context) ([]Department, error)
	DocumentTypes(ctx context.Context) ([]DocumentType, error)
	LeaveTypes(ctx context.Context) ([]LeaveType, error)
}
