package repository

import (
	"context"

	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/persistence"
)

const employeesKey = "employees"

// EmployeeRepository persists the whole directory as one blob. The
// LoadAll/SaveAll pair keeps the read-modify-write window explicit: there is
// no per-record update, and concurrent writers race last-write-wins.
type EmployeeRepository interface {
	LoadAll(ctx context.Context) ([]domain.Employee, error)
	SaveAll(ctx context.Context, employees []domain.Employee) error
}

type employeeRepository struct {
	store persistence.BlobStore
}

// NewEmployeeRepository returns a BlobStore-backed implementation.
func NewEmployeeRepository(store persistence.BlobStore) EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) LoadAll(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	found, err := r.store.GetJSON(ctx, employeesKey, &employees)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return employees, nil
}

func (r *employeeRepository) SaveAll(ctx context.Context, employees []domain.Employee) error {
	return r.store.SetJSON(ctx, employeesKey, employees)
}
