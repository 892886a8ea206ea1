package sqlite

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

const memoryPath = ":memory:"

// Open connects to the database at path and applies migrations.
// An in-memory database is pinned to one connection, otherwise every
// pooled connection would see its own empty schema.
func Open(path string) (*sql.DB, error) {
	dsn := path
	if path != memoryPath {
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if path == memoryPath {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Printf("[sqlite] opened %s", path)
	return db, nil
}
