package roster

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
)

// XLSXSource reads an HR spreadsheet export. The first row is a header;
// columns are located by name (case-insensitive): id, first_name,
// last_name, email, active. A missing active column means all rows are
// treated as active.
type XLSXSource struct {
	Path      string
	SheetName string // empty: first sheet
}

// Snapshot re-opens the workbook on every call.
func (s *XLSXSource) Snapshot(ctx context.Context) ([]model.EmployeeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "roster: snapshot cancelled")
	}
	f, err := xlsx.OpenFile(s.Path)
	if err != nil {
		return nil, eris.Wrap(err, "roster: open xlsx")
	}

	sheet, err := s.sheet(f)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, nil
	}

	cols, err := headerIndex(rowToStrings(sheet.Rows[0]))
	if err != nil {
		return nil, err
	}

	var records []model.EmployeeRecord
	for _, row := range sheet.Rows[1:] {
		cells := rowToStrings(row)
		rec := model.EmployeeRecord{
			ID:        cols.get(cells, "id"),
			FirstName: cols.get(cells, "first_name"),
			LastName:  cols.get(cells, "last_name"),
			Email:     cols.get(cells, "email"),
			Active:    true,
		}
		if rec.ID == "" && rec.FirstName == "" && rec.LastName == "" {
			continue
		}
		if v := cols.get(cells, "active"); v != "" {
			rec.Active = parseBool(v)
		}
		records = append(records, rec)
	}
	return filterActive(records), nil
}

func (s *XLSXSource) sheet(f *xlsx.File) (*xlsx.Sheet, error) {
	if s.SheetName != "" {
		sheet, ok := f.Sheet[s.SheetName]
		if !ok {
			return nil, eris.Errorf("roster: sheet %q not found", s.SheetName)
		}
		return sheet, nil
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("roster: workbook has no sheets")
	}
	return f.Sheets[0], nil
}

type columnIndex map[string]int

func headerIndex(header []string) (columnIndex, error) {
	cols := columnIndex{}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		cols[key] = i
	}
	for _, required := range []string{"id", "first_name", "last_name"} {
		if _, ok := cols[required]; !ok {
			return nil, eris.Errorf("roster: xlsx header missing %q column", required)
		}
	}
	return cols, nil
}

func (c columnIndex) get(cells []string, key string) string {
	i, ok := c[key]
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "y", "1", "active":
		return true
	default:
		return false
	}
}
