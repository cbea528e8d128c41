package repository

import (
	"errors"

	"github.com/Habiboys/SIMPA/internal/models"

	"gorm.io/gorm"
)

type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepo(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

// GetUnitByID retrieves a unit with its variant and room
func (r *UnitRepository) GetUnitByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.Where("id = ?", id).
		Preload("DetailModel").
		Preload("DetailModel.JenisModel").
		Preload("DetailModel.JenisModel.Merek").
		Preload("Ruangan").
		First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("unit not found")
		}
		return nil, err
	}
	return &unit, nil
}

// GetUnitsByProject retrieves all units installed in a project, with the
// full catalog and location chain.
func (r *UnitRepository) GetUnitsByProject(projectID uint) ([]models.Unit, error) {
	var units []models.Unit
	err := r.db.
		Joins("JOIN ruangan ON ruangan.id = unit.id_ruangan").
		Joins("JOIN gedung ON gedung.id = ruangan.id_gedung").
		Where("gedung.id_proyek = ?", projectID).
		Preload("DetailModel").
		Preload("DetailModel.JenisModel").
		Preload("DetailModel.JenisModel.Merek").
		Preload("Ruangan").
		Preload("Ruangan.Gedung").
		Order("unit.nomor_seri ASC").
		Find(&units).Error
	return units, err
}

// GetUnitsByRoom retrieves all units in a room with their catalog chain
func (r *UnitRepository) GetUnitsByRoom(roomID uint) ([]models.Unit, error) {
	var units []models.Unit
	err := r.db.Where("id_ruangan = ?", roomID).
		Preload("DetailModel").
		Preload("DetailModel.JenisModel").
		Preload("DetailModel.JenisModel.Merek").
		Preload("Ruangan").
		Order("nomor_seri ASC").
		Find(&units).Error
	return units, err
}

// CreateUnit creates a new unit
func (r *UnitRepository) CreateUnit(unit *models.Unit) error {
	return r.db.Create(unit).Error
}

// UpdateUnit updates an existing unit
func (r *UnitRepository) UpdateUnit(unit *models.Unit) error {
	return r.db.Save(unit).Error
}

// DeleteUnit removes a unit
func (r *UnitRepository) DeleteUnit(id uint) error {
	return r.db.Delete(&models.Unit{}, id).Error
}
