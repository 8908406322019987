package roster

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
)

const sqliteRosterQuery = `
SELECT id, first_name, last_name, COALESCE(email, '')
FROM employees
WHERE active = 1
ORDER BY last_name, first_name`

// SQLiteSource reads the employee directory from a local SQLite snapshot,
// the usual shape for offline HR exports.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLite opens the snapshot database.
func NewSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "roster: open sqlite")
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "roster: configure sqlite")
	}
	return &SQLiteSource{db: db}, nil
}

// Snapshot queries the snapshot database on every call.
func (s *SQLiteSource) Snapshot(ctx context.Context) ([]model.EmployeeRecord, error) {
	rows, err := s.db.QueryContext(ctx, sqliteRosterQuery)
	if err != nil {
		return nil, eris.Wrap(err, "roster: query sqlite")
	}
	defer rows.Close()

	var records []model.EmployeeRecord
	for rows.Next() {
		rec := model.EmployeeRecord{Active: true}
		if err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email); err != nil {
			return nil, eris.Wrap(err, "roster: scan sqlite row")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "roster: iterate sqlite rows")
	}
	return records, nil
}

// Close closes the database handle.
func (s *SQLiteSource) Close() error { return s.db.Close() }
