package roster

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
)

// pool is the minimal pgxpool surface used here; pgxmock satisfies it.
type pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

const postgresRosterQuery = `
SELECT id::text, first_name, last_name, COALESCE(email, '')
FROM employees
WHERE active = true
ORDER BY last_name, first_name`

// PostgresSource reads the employee directory from Postgres.
type PostgresSource struct {
	pool pool
}

// NewPostgres connects a PostgresSource to the directory database.
func NewPostgres(ctx context.Context, dsn string) (*PostgresSource, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, eris.Wrap(err, "roster: connect postgres")
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, eris.Wrap(err, "roster: ping postgres")
	}
	return &PostgresSource{pool: p}, nil
}

// NewPostgresFromPool wraps an existing pool; used by tests.
func NewPostgresFromPool(p pool) *PostgresSource {
	return &PostgresSource{pool: p}
}

// Snapshot queries the directory on every call.
func (s *PostgresSource) Snapshot(ctx context.Context) ([]model.EmployeeRecord, error) {
	rows, err := s.pool.Query(ctx, postgresRosterQuery)
	if err != nil {
		return nil, eris.Wrap(err, "roster: query postgres")
	}
	defer rows.Close()

	var records []model.EmployeeRecord
	for rows.Next() {
		rec := model.EmployeeRecord{Active: true}
		if err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email); err != nil {
			return nil, eris.Wrap(err, "roster: scan postgres row")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "roster: iterate postgres rows")
	}
	return records, nil
}

// Close releases the connection pool.
func (s *PostgresSource) Close() { s.pool.Close() }
