package service

import (
	"github.com/Habiboys/SIMPA/internal/models"
	"github.com/Habiboys/SIMPA/internal/repository"
)

type VariableService struct {
	variableRepo *repository.VariableRepository
}

func NewVariableService(variableRepo *repository.VariableRepository) *VariableService {
	return &VariableService{variableRepo: variableRepo}
}

// GetInspectionVariables retrieves inspection variables, optionally
// filtered to one category
func (s *VariableService) GetInspectionVariables(jenis models.Category) ([]models.InspectionVariable, error) {
	if jenis != "" && !jenis.Valid() {
		return nil, validationError("jenis must be indoor or outdoor")
	}
	return s.variableRepo.GetInspectionVariables(jenis)
}

// CreateInspectionVariable creates a new inspection variable
func (s *VariableService) CreateInspectionVariable(v *models.InspectionVariable) error {
	if !v.Jenis.Valid() {
		return validationError("jenis must be indoor or outdoor")
	}
	return s.variableRepo.CreateInspectionVariable(v)
}

// UpdateInspectionVariable applies partial changes to an inspection variable
func (s *VariableService) UpdateInspectionVariable(id uint, updates *models.InspectionVariable) (*models.InspectionVariable, error) {
	v, err := s.variableRepo.GetInspectionVariableByID(id)
	if err != nil {
		return nil, err
	}
	if updates.NamaVariable != "" {
		v.NamaVariable = updates.NamaVariable
	}
	if updates.Jenis != "" {
		if !updates.Jenis.Valid() {
			return nil, validationError("jenis must be indoor or outdoor")
		}
		v.Jenis = updates.Jenis
	}
	if err := s.variableRepo.UpdateInspectionVariable(v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteInspectionVariable removes an inspection variable
func (s *VariableService) DeleteInspectionVariable(id uint) error {
	if _, err := s.variableRepo.GetInspectionVariableByID(id); err != nil {
		return err
	}
	return s.variableRepo.DeleteInspectionVariable(id)
}

// GetCleaningVariables retrieves cleaning variables, optionally filtered
// to one category
func (s *VariableService) GetCleaningVariables(jenis models.Category) ([]models.CleaningVariable, error) {
	if jenis != "" && !jenis.Valid() {
		return nil, validationError("jenis must be indoor or outdoor")
	}
	return s.variableRepo.GetCleaningVariables(jenis)
}

// CreateCleaningVariable creates a new cleaning variable
func (s *VariableService) CreateCleaningVariable(v *models.CleaningVariable) error {
	if !v.Jenis.Valid() {
		return validationError("jenis must be indoor or outdoor")
	}
	return s.variableRepo.CreateCleaningVariable(v)
}

// UpdateCleaningVariable applies partial changes to a cleaning variable
func (s *VariableService) UpdateCleaningVariable(id uint, updates *models.CleaningVariable) (*models.CleaningVariable, error) {
	v, err := s.variableRepo.GetCleaningVariableByID(id)
	if err != nil {
		return nil, err
	}
	if updates.NamaVariable != "" {
		v.NamaVariable = updates.NamaVariable
	}
	if updates.Jenis != "" {
		if !updates.Jenis.Valid() {
			return nil, validationError("jenis must be indoor or outdoor")
		}
		v.Jenis = updates.Jenis
	}
	if err := s.variableRepo.UpdateCleaningVariable(v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteCleaningVariable removes a cleaning variable
func (s *VariableService) DeleteCleaningVariable(id uint) error {
	if _, err := s.variableRepo.GetCleaningVariableByID(id); err != nil {
		return err
	}
	return s.variableRepo.DeleteCleaningVariable(id)
}
