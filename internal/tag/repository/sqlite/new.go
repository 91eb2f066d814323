package sqlite

import (
	"database/sql"

	"timeflow/internal/tag/repository"
	"timeflow/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the tag domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("tag/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}
