// Package roster provides caller-side sources for employee roster
// snapshots. The matcher itself never fetches a roster; commands and the
// HTTP server pull a fresh snapshot from one of these sources per call,
// since roster membership can change between requests.
package roster

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
)

// Source yields a point-in-time roster of active employees. Snapshot
// re-reads the backing store on every call; implementations must not cache.
type Source interface {
	Snapshot(ctx context.Context) ([]model.EmployeeRecord, error)
}

// Open builds a Source for the configured driver. dsn is a file path for
// the json and xlsx drivers, a database path for sqlite, and a connection
// string for postgres.
func Open(ctx context.Context, driver, dsn string) (Source, error) {
	switch driver {
	case "json":
		return &FileSource{Path: dsn}, nil
	case "xlsx":
		return &XLSXSource{Path: dsn}, nil
	case "sqlite":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, dsn)
	default:
		return nil, eris.Errorf("roster: unknown driver %q", driver)
	}
}

// filterActive drops inactive records; every source returns active
// employees only.
func filterActive(records []model.EmployeeRecord) []model.EmployeeRecord {
	out := records[:0]
	for _, r := range records {
		if r.Active {
			out = append(out, r)
		}
	}
	return out
}
