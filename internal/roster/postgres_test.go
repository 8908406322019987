package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSource_Snapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "first_name", "last_name", "email"}).
		AddRow("e2", "Christopher", "Aycock", "caycock@roofer.com").
		AddRow("e1", "John", "Smith", "john.smith@roofer.com")
	mock.ExpectQuery("SELECT id::text, first_name, last_name").WillReturnRows(rows)

	src := NewPostgresFromPool(mock)
	records, err := src.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "e2", records[0].ID)
	assert.Equal(t, "Aycock", records[0].LastName)
	assert.Equal(t, "john.smith@roofer.com", records[1].Email)
	assert.True(t, records[0].Active)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id::text").
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "email"}))

	src := NewPostgresFromPool(mock)
	records, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPostgresSource_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id::text").WillReturnError(errors.New("connection refused"))

	src := NewPostgresFromPool(mock)
	_, err = src.Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query postgres")
}
