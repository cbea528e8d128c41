package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (*MaintenanceRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewMaintenanceRepo(gdb), mock
}

func TestFindByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM `maintenance`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(99)
	require.Error(t, err)
	assert.Equal(t, "maintenance not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByProjectUnknownProjectYieldsEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM `maintenance` JOIN unit").
		WithArgs(uint(123)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	records, err := repo.FindByProject(123, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByProject(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `maintenance`").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByProject(7, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByProjectDateFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	start, _ := time.Parse("2006-01-02", "2025-01-01")
	end, _ := time.Parse("2006-01-02", "2025-06-30")

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `maintenance`").
		WithArgs(uint(7), start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountByProject(7, &start, &end)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
