package employee

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/employee"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/reference"
	"github.com/worklane-hq/worklane-bff-go/internal/listview"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/normalize"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
	"golang.org/x/sync/errgroup"
)

type EmployeeServiceImpl struct {
	client       *upstream.Client
	referenceSvc reference.Service

	records     *listview.Collection[employee.Record]
	departments *listview.Collection[reference.Department]

	refreshMu sync.Mutex
}

func NewEmployeeService(client *upstream.Client, referenceSvc reference.Service) employee.Service {
	return &EmployeeServiceImpl{
		client:       client,
		referenceSvc: referenceSvc,
		records:      listview.NewCollection(employee.ListConfig.ID),
		departments:  listview.NewCollection(func(d reference.Department) string { return d.ID }),
	}
}

// GetView implements employee.Service. The directory and the
// department dropdown have independent fetch states; a failure in one
// never blanks the other.
func (s *EmployeeServiceImpl) GetView(ctx context.Context, filter listview.FilterState) (employee.View, error) {
	if !s.records.Loaded() || !s.departments.Loaded() {
		s.refresh(ctx)
	}

	records, state := listview.View(s.records, filter, employee.ListConfig, nil)
	return employee.View{
		Records:         records,
		Stats:           employee.ComputeStats(records),
		State:           state,
		Departments:     s.departments.Records(),
		DepartmentState: s.departments.State(),
	}, nil
}

// Refresh implements employee.Service.
func (s *EmployeeServiceImpl) Refresh(ctx context.Context) error {
	s.refresh(ctx)
	if state := s.records.State(); state.Error != "" {
		return errors.New(state.Error)
	}
	return nil
}

// refresh fetches both collections concurrently. Responses may land in
// any order; each goroutine swallows its error so a failed fetch never
// cancels its sibling, and each collection records its own outcome.
func (s *EmployeeServiceImpl) refresh(ctx context.Context) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.records.Load(gctx, s.fetchEmployees); err != nil {
			slog.Error("Failed to load employee collection", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.departments.Load(gctx, s.fetchDepartments); err != nil {
			slog.Error("Failed to load departments", "error", err)
		}
		return nil
	})
	_ = g.Wait()
}

func (s *EmployeeServiceImpl) fetchEmployees(ctx context.Context) ([]employee.Record, error) {
	var raw []employee.RawRecord
	if err := s.client.GetJSON(ctx, "/api/employees", nil, &raw); err != nil {
		return nil, err
	}
	return normalize.All(raw, employee.NormalizeRecord), nil
}

func (s *EmployeeServiceImpl) fetchDepartments(ctx context.Context) ([]reference.Department, error) {
	return s.referenceSvc.Departments(ctx)
}

// CreateRecord implements employee.Service.
func (s *EmployeeServiceImpl) CreateRecord(ctx context.Context, req employee.CreateRequest) (employee.Record, error) {
	if err := req.Validate(); err != nil {
		return employee.Record{}, err
	}

	var raw employee.RawRecord
	if err := s.client.PostJSON(ctx, "/api/employees", req, &raw); err != nil {
		return employee.Record{}, err
	}

	record := employee.NormalizeRecord(raw)
	s.records.Store().Append(record)
	return record, nil
}

// UpdateRecord implements employee.Service.
func (s *EmployeeServiceImpl) UpdateRecord(ctx context.Context, req employee.UpdateRequest) (employee.Record, error) {
	if err := req.Validate(); err != nil {
		return employee.Record{}, err
	}

	var raw employee.RawRecord
	if err := s.client.PutJSON(ctx, "/api/employees/"+req.ID, req.CreateRequest, &raw); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return employee.Record{}, employee.ErrEmployeeNotFound
		}
		return employee.Record{}, err
	}

	record := employee.NormalizeRecord(raw)
	s.records.Store().ReplaceByID(record)
	return record, nil
}

// DeleteRecord implements employee.Service.
func (s *EmployeeServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/api/employees/"+id); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return employee.ErrEmployeeNotFound
		}
		return err
	}

	s.records.Store().RemoveByID(id)
	return nil
}
