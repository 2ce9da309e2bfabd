package sqlstore

import (
	"fmt"

	"laptopxplorer/internal/article/repository"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/sqldb"
)

type implRepository struct {
	db *sqldb.DB
	l  log.Logger
}

// New creates a SQL-backed article Repository.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("article/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("article/repository/sqlstore.%s", method)
}
