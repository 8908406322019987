package roster

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
)

// FileSource reads a JSON array of employee records from disk.
type FileSource struct {
	Path string
}

// Snapshot re-reads the file on every call.
func (s *FileSource) Snapshot(ctx context.Context) ([]model.EmployeeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "roster: snapshot cancelled")
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, eris.Wrap(err, "roster: read json file")
	}
	var records []model.EmployeeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, eris.Wrap(err, "roster: parse json file")
	}
	return filterActive(records), nil
}
