package service

import (
	"context"

	"employee-api/internal/domain"
)

type EmployeeService struct {
	Repo domain.EmployeeRepo
}

func NewEmployeeService(repo domain.EmployeeRepo) *EmployeeService {
	return &EmployeeService{Repo: repo}
}

// CreateEmployee persists e unless another employee already uses its email.
// The lookup is only a fast path: two concurrent creates can both pass it,
// and then the storage UNIQUE constraint reports the loser as
// domain.ErrDuplicateKey.
func (s *EmployeeService) CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	_, exists, err := s.Repo.FindByEmail(ctx, e.Email)
	if err != nil {
		return domain.Employee{}, err
	}
	if exists {
		return domain.Employee{}, domain.DuplicateEmail(e.Email)
	}
	e.ID = 0
	return s.Repo.Insert(ctx, e)
}

func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.Repo.FindAll(ctx)
}

func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, bool, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *EmployeeService) FindEmployeeByName(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error) {
	return s.Repo.FindByName(ctx, firstName, lastName)
}

// UpdateEmployee overwrites the stored record with e.ID. Email uniqueness is
// not re-checked here; a collision still fails at the storage constraint.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	_, exists, err := s.Repo.FindByID(ctx, e.ID)
	if err != nil {
		return domain.Employee{}, err
	}
	if !exists {
		return domain.Employee{}, domain.NotFoundID(e.ID)
	}
	return s.Repo.Update(ctx, e)
}

// DeleteEmployeeByID is idempotent: a missing id is not an error.
func (s *EmployeeService) DeleteEmployeeByID(ctx context.Context, id int64) error {
	return s.Repo.DeleteByID(ctx, id)
}
