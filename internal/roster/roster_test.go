package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	src, err := Open(ctx, "json", "roster.json")
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	src, err = Open(ctx, "xlsx", "roster.xlsx")
	require.NoError(t, err)
	assert.IsType(t, &XLSXSource{}, src)

	_, err = Open(ctx, "oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}

func TestFilterActive(t *testing.T) {
	records := []model.EmployeeRecord{
		{ID: "e1", Active: true},
		{ID: "e2", Active: false},
		{ID: "e3", Active: true},
	}
	got := filterActive(records)
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e3", got[1].ID)
}
