package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"laptopxplorer/internal/laptop"
	repo "laptopxplorer/internal/laptop/repository"
	"laptopxplorer/pkg/sqldb"
)

// GetOneProcessor returns a zero-value Processor (ID == "") when not found.
func (r *implRepository) GetOneProcessor(ctx context.Context, opt repo.GetOneProcessorOptions) (laptop.Processor, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "name = ?")
		args = append(args, opt.Name)
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := `SELECT id, name, brand, cores, threads, base_clock, generation FROM processors WHERE ` +
		strings.Join(conditions, " AND ") + ` LIMIT 1`

	var p laptop.Processor
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), args...).Scan(
		&p.ID, &p.Name, &p.Brand, &p.Cores, &p.Threads, &p.BaseClock, &p.Generation,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return laptop.Processor{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProcessor"), err)
		return laptop.Processor{}, repo.ErrFailedToGet
	}
	return p, nil
}

// CreateProcessor inserts a new processor.
func (r *implRepository) CreateProcessor(ctx context.Context, opt repo.CreateProcessorOptions) (laptop.Processor, error) {
	const query = `
		INSERT INTO processors (id, name, brand, cores, threads, base_clock, generation)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	p := laptop.Processor{
		ID:         uuid.NewString(),
		Name:       opt.Name,
		Brand:      opt.Brand,
		Cores:      opt.Cores,
		Threads:    opt.Threads,
		BaseClock:  opt.BaseClock,
		Generation: opt.Generation,
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), p.ID, p.Name, p.Brand, p.Cores, p.Threads, p.BaseClock, p.Generation)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProcessor"), err)
		if sqldb.IsUniqueViolation(err) {
			return laptop.Processor{}, repo.ErrDuplicate
		}
		return laptop.Processor{}, repo.ErrFailedToInsert
	}
	return p, nil
}
