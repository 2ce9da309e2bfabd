package sqlstore

import (
	"fmt"

	"laptopxplorer/internal/pricing/repository"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/sqldb"
)

type implRepository struct {
	db *sqldb.DB
	l  log.Logger
}

// New creates a SQL-backed pricing Repository.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("pricing/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("pricing/repository/sqlstore.%s", method)
}
