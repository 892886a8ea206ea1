package domain

import "context"

// EmployeeRepo is the storage port for employees. Lookups report absence
// through the bool result instead of an error.
type EmployeeRepo interface {
	Insert(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	FindByID(ctx context.Context, id int64) (Employee, bool, error)
	FindByEmail(ctx context.Context, email string) (Employee, bool, error)
	FindByName(ctx context.Context, firstName, lastName string) (Employee, bool, error)
	FindAll(ctx context.Context) ([]Employee, error)
	DeleteByID(ctx context.Context, id int64) error
}
