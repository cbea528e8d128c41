package repository

import (
	"errors"

	"github.com/Habiboys/SIMPA/internal/models"

	"gorm.io/gorm"
)

// VariableRepository manages the inspection and cleaning variable catalogs.
type VariableRepository struct {
	db *gorm.DB
}

func NewVariableRepo(db *gorm.DB) *VariableRepository {
	return &VariableRepository{db: db}
}

// GetInspectionVariables retrieves inspection variables, optionally
// filtered by category.
func (r *VariableRepository) GetInspectionVariables(jenis models.Category) ([]models.InspectionVariable, error) {
	var variables []models.InspectionVariable
	q := r.db.Order("nama_variable ASC")
	if jenis != "" {
		q = q.Where("jenis = ?", jenis)
	}
	err := q.Find(&variables).Error
	return variables, err
}

// GetInspectionVariableByID retrieves one inspection variable
func (r *VariableRepository) GetInspectionVariableByID(id uint) (*models.InspectionVariable, error) {
	var variable models.InspectionVariable
	err := r.db.Where("id = ?", id).First(&variable).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("variable pemeriksaan not found")
		}
		return nil, err
	}
	return &variable, nil
}

// CreateInspectionVariable creates a new inspection variable
func (r *VariableRepository) CreateInspectionVariable(v *models.InspectionVariable) error {
	return r.db.Create(v).Error
}

// UpdateInspectionVariable updates an existing inspection variable
func (r *VariableRepository) UpdateInspectionVariable(v *models.InspectionVariable) error {
	return r.db.Save(v).Error
}

// DeleteInspectionVariable removes an inspection variable
func (r *VariableRepository) DeleteInspectionVariable(id uint) error {
	return r.db.Delete(&models.InspectionVariable{}, id).Error
}

// GetCleaningVariables retrieves cleaning variables, optionally filtered
// by category.
func (r *VariableRepository) GetCleaningVariables(jenis models.Category) ([]models.CleaningVariable, error) {
	var variables []models.CleaningVariable
	q := r.db.Order("nama_variable ASC")
	if jenis != "" {
		q = q.Where("jenis = ?", jenis)
	}
	err := q.Find(&variables).Error
	return variables, err
}

// GetCleaningVariableByID retrieves one cleaning variable
func (r *VariableRepository) GetCleaningVariableByID(id uint) (*models.CleaningVariable, error) {
	var variable models.CleaningVariable
	err := r.db.Where("id = ?", id).First(&variable).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("variable pembersihan not found")
		}
		return nil, err
	}
	return &variable, nil
}

// CreateCleaningVariable creates a new cleaning variable
func (r *VariableRepository) CreateCleaningVariable(v *models.CleaningVariable) error {
	return r.db.Create(v).Error
}

// UpdateCleaningVariable updates an existing cleaning variable
func (r *VariableRepository) UpdateCleaningVariable(v *models.CleaningVariable) error {
	return r.db.Save(v).Error
}

// DeleteCleaningVariable removes a cleaning variable
func (r *VariableRepository) DeleteCleaningVariable(id uint) error {
	return r.db.Delete(&models.CleaningVariable{}, id).Error
}
