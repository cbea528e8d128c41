package service

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/Habiboys/SIMPA/internal/models"
	"github.com/Habiboys/SIMPA/internal/repository"
	"github.com/Habiboys/SIMPA/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockService(t *testing.T) (*MaintenanceService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	store, err := storage.NewAssetStore(t.TempDir())
	require.NoError(t, err)

	return NewMaintenanceService(repository.NewMaintenanceRepo(gdb), store, zap.NewNop()), mock
}

func floatPtr(v float64) *float64 {
	return &v
}

func photoPayload() string {
	return base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))
}

func validRequest() *CreateMaintenanceRequest {
	return &CreateMaintenanceRequest{
		UnitID:          3,
		Tanggal:         "2025-03-20",
		NamaPemeriksaan: "Pemeriksaan Rutin",
		Kategori:        models.CategoryIndoor,
	}
}

func TestCreateRejectsIndoorWithOutdoorPallet(t *testing.T) {
	svc, mock := newMockService(t)

	req := validRequest()
	req.PaletOutdoor = photoPayload()

	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsOutdoorWithIndoorPallet(t *testing.T) {
	svc, mock := newMockService(t)

	req := validRequest()
	req.Kategori = models.CategoryOutdoor
	req.PaletIndoor = photoPayload()

	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsBadBase64Photo(t *testing.T) {
	svc, mock := newMockService(t)

	req := validRequest()
	req.Foto = []PhotoEntry{
		{Nama: "before", Foto: "not base64 !!!", Status: models.PhotoSebelum},
	}

	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsBadPhotoStatus(t *testing.T) {
	svc, mock := newMockService(t)

	req := validRequest()
	req.Foto = []PhotoEntry{
		{Nama: "before", Foto: photoPayload(), Status: "during"},
	}

	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc, mock := newMockService(t)

	req := validRequest()
	req.Tanggal = "20-03-2025"

	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUnknownUnitRollsBack(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `unit`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.Create(validRequest())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePersistsFullSubmission(t *testing.T) {
	svc, mock := newMockService(t)

	req := validRequest()
	req.PaletIndoor = photoPayload()
	req.HasilPemeriksaan = []InspectionEntry{
		{VariableID: 1, Nilai: "Baik"},
	}
	req.HasilPembersihan = []CleaningEntry{
		{VariableID: 2, Sebelum: floatPtr(5.5), Sesudah: floatPtr(2.1)},
	}
	req.Foto = []PhotoEntry{
		{Nama: "before", Foto: photoPayload(), Status: models.PhotoSebelum},
		{Nama: "after", Foto: photoPayload(), Status: models.PhotoSesudah},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `unit`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("INSERT INTO `maintenance`").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO `hasil_pemeriksaan`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `hasil_pembersihan`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `foto`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `foto`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	id, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateChildFailureRollsBack(t *testing.T) {
	svc, mock := newMockService(t)

	req := validRequest()
	req.HasilPemeriksaan = []InspectionEntry{
		{VariableID: 1, Nilai: "Baik"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `unit`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("INSERT INTO `maintenance`").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO `hasil_pemeriksaan`").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := svc.Create(req)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange("2025-01-01", "2025-06-30")
	require.NoError(t, err)
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, "2025-01-01", start.Format("2006-01-02"))
	assert.Equal(t, "2025-06-30", end.Format("2006-01-02"))
}

func TestParseDateRangeNeedsBothBounds(t *testing.T) {
	start, end, err := ParseDateRange("2025-01-01", "")
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestParseDateRangeRejectsBadFormat(t *testing.T) {
	_, _, err := ParseDateRange("01/01/2025", "2025-06-30")
	assert.ErrorIs(t, err, ErrValidation)
}
