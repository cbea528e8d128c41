package repository

import (
	"errors"
	"time"

	"github.com/Habiboys/SIMPA/internal/models"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepo(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// closurePreloads lists every relation a maintenance record is returned
// with, so callers never issue follow-up queries.
var closurePreloads = []string{
	"Unit",
	"Unit.Ruangan",
	"Unit.Ruangan.Gedung",
	"Unit.Ruangan.Gedung.Proyek",
	"Unit.DetailModel",
	"Unit.DetailModel.JenisModel",
	"Unit.DetailModel.JenisModel.Merek",
	"HasilPemeriksaan",
	"HasilPemeriksaan.VariablePemeriksaan",
	"HasilPembersihan",
	"HasilPembersihan.VariablePembersihan",
	"Foto",
}

func withClosure(db *gorm.DB) *gorm.DB {
	for _, rel := range closurePreloads {
		db = db.Preload(rel)
	}
	return db
}

// Transaction runs fn inside one database transaction; fn is the unit of
// work for a full maintenance submission (header plus all children).
func (r *MaintenanceRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// FindUnit resolves the unit a submission targets, inside the submission's
// transaction.
func (r *MaintenanceRepository) FindUnit(tx *gorm.DB, id uint) (*models.Unit, error) {
	var unit models.Unit
	err := tx.Where("id = ?", id).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("unit not found")
		}
		return nil, err
	}
	return &unit, nil
}

// Insert writes the maintenance header row; tx fills in the generated ID.
func (r *MaintenanceRepository) Insert(tx *gorm.DB, m *models.Maintenance) error {
	return tx.Create(m).Error
}

// InsertInspection writes one inspection result child row.
func (r *MaintenanceRepository) InsertInspection(tx *gorm.DB, hp *models.InspectionResult) error {
	return tx.Create(hp).Error
}

// InsertCleaning writes one cleaning result child row.
func (r *MaintenanceRepository) InsertCleaning(tx *gorm.DB, hp *models.CleaningResult) error {
	return tx.Create(hp).Error
}

// InsertPhoto writes one photo child row.
func (r *MaintenanceRepository) InsertPhoto(tx *gorm.DB, f *models.Photo) error {
	return tx.Create(f).Error
}

// FindByID retrieves one maintenance record with its full closure.
func (r *MaintenanceRepository) FindByID(id uint) (*models.Maintenance, error) {
	var maintenance models.Maintenance
	err := withClosure(r.db).Where("id = ?", id).First(&maintenance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("maintenance not found")
		}
		return nil, err
	}
	return &maintenance, nil
}

// FindAll retrieves every maintenance record with closure, newest first.
func (r *MaintenanceRepository) FindAll() ([]models.Maintenance, error) {
	var maintenances []models.Maintenance
	err := withClosure(r.db).
		Order("tanggal DESC").
		Find(&maintenances).Error
	return maintenances, err
}

// projectScope narrows maintenance rows to one project via the
// unit -> ruangan -> gedung chain, optionally bounded to an inclusive
// visit-date range.
func (r *MaintenanceRepository) projectScope(projectID uint, start, end *time.Time) *gorm.DB {
	q := r.db.Model(&models.Maintenance{}).
		Joins("JOIN unit ON unit.id = maintenance.id_unit").
		Joins("JOIN ruangan ON ruangan.id = unit.id_ruangan").
		Joins("JOIN gedung ON gedung.id = ruangan.id_gedung").
		Where("gedung.id_proyek = ?", projectID)
	if start != nil && end != nil {
		q = q.Where("maintenance.tanggal BETWEEN ? AND ?", *start, *end)
	}
	return q
}

// FindByProject retrieves a project's maintenance records with closure,
// newest first. An unknown project simply yields an empty slice.
func (r *MaintenanceRepository) FindByProject(projectID uint, start, end *time.Time) ([]models.Maintenance, error) {
	var maintenances []models.Maintenance
	err := withClosure(r.projectScope(projectID, start, end)).
		Order("maintenance.tanggal DESC").
		Find(&maintenances).Error
	return maintenances, err
}

// CountByProject counts a project's maintenance records under the same
// filter as FindByProject.
func (r *MaintenanceRepository) CountByProject(projectID uint, start, end *time.Time) (int64, error) {
	var count int64
	err := r.projectScope(projectID, start, end).Count(&count).Error
	return count, err
}
