package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"employee-api/internal/domain"

	"github.com/mattn/go-sqlite3"
)

const selectEmployee = `SELECT id, first_name, last_name, email FROM employees`

type SqliteEmployeeRepo struct {
	db *sql.DB
}

func NewSqliteEmployeeRepo(db *sql.DB) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{db: db}
}

func (r *SqliteEmployeeRepo) Insert(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (first_name, last_name, email) VALUES (?, ?, ?)`,
		e.FirstName, e.LastName, e.Email,
	)
	if err != nil {
		return domain.Employee{}, translate(err, e.Email)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Employee{}, err
	}
	e.ID = id
	return e, nil
}

// Update overwrites every mutable column. A missing row is reported as
// domain.ErrNotFound.
func (r *SqliteEmployeeRepo) Update(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET first_name = ?, last_name = ?, email = ? WHERE id = ?`,
		e.FirstName, e.LastName, e.Email, e.ID,
	)
	if err != nil {
		return domain.Employee{}, translate(err, e.Email)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Employee{}, err
	}
	if rows == 0 {
		return domain.Employee{}, domain.NotFoundID(e.ID)
	}
	return e, nil
}

func (r *SqliteEmployeeRepo) FindByID(ctx context.Context, id int64) (domain.Employee, bool, error) {
	return r.findOne(ctx, selectEmployee+` WHERE id = ?`, id)
}

func (r *SqliteEmployeeRepo) FindByEmail(ctx context.Context, email string) (domain.Employee, bool, error) {
	return r.findOne(ctx, selectEmployee+` WHERE email = ?`, email)
}

func (r *SqliteEmployeeRepo) FindByName(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error) {
	return r.findOne(ctx, selectEmployee+` WHERE first_name = ? AND last_name = ? ORDER BY id LIMIT 1`, firstName, lastName)
}

func (r *SqliteEmployeeRepo) FindAll(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, selectEmployee+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *SqliteEmployeeRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	return err
}

func (r *SqliteEmployeeRepo) findOne(ctx context.Context, query string, args ...any) (domain.Employee, bool, error) {
	var e domain.Employee
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Employee{}, false, nil
	}
	if err != nil {
		return domain.Employee{}, false, err
	}
	return e, true, nil
}

// translate maps a UNIQUE(email) violation onto domain.ErrDuplicateKey.
func translate(err error, email string) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return domain.DuplicateEmail(email)
	}
	return err
}
