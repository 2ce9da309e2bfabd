package sqlstore

import (
	"fmt"

	"laptopxplorer/internal/laptop/repository"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/sqldb"
)

type implRepository struct {
	db *sqldb.DB
	l  log.Logger
}

// New creates a SQL-backed Repository for the catalog domain.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("laptop/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("laptop/repository/sqlstore.%s", method)
}
