package sqlstore

import (
	"fmt"

	"laptopxplorer/internal/review/repository"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/sqldb"
)

type implRepository struct {
	db *sqldb.DB
	l  log.Logger
}

// New creates a SQL-backed review Repository.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("review/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("review/repository/sqlstore.%s", method)
}
