package sqlite

import (
	"database/sql"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL UNIQUE
);
`

const createEmployeesNameIndex = `
CREATE INDEX IF NOT EXISTS idx_employees_name ON employees (first_name, last_name);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createEmployeesTable); err != nil {
		return err
	}
	if _, err := db.Exec(createEmployeesNameIndex); err != nil {
		return err
	}
	return nil
}
