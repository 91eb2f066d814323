package sqlite

import (
	"database/sql"

	"timeflow/internal/goal/repository"
	"timeflow/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the goal domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("goal/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}
