package service

import (
	"github.com/Habiboys/SIMPA/internal/models"
	"github.com/Habiboys/SIMPA/internal/repository"
)

type UnitService struct {
	unitRepo    *repository.UnitRepository
	catalogRepo *repository.CatalogRepository
	projectRepo *repository.ProjectRepository
}

func NewUnitService(unitRepo *repository.UnitRepository, catalogRepo *repository.CatalogRepository, projectRepo *repository.ProjectRepository) *UnitService {
	return &UnitService{
		unitRepo:    unitRepo,
		catalogRepo: catalogRepo,
		projectRepo: projectRepo,
	}
}

// GetUnitByID retrieves one unit with its catalog chain and room
func (s *UnitService) GetUnitByID(id uint) (*models.Unit, error) {
	return s.unitRepo.GetUnitByID(id)
}

// GetUnitsByProject retrieves every unit installed in a project's rooms
func (s *UnitService) GetUnitsByProject(projectID uint) ([]models.Unit, error) {
	if _, err := s.projectRepo.GetProjectByID(projectID); err != nil {
		return nil, err
	}
	return s.unitRepo.GetUnitsByProject(projectID)
}

// GetUnitsByRoom retrieves the units installed in one room
func (s *UnitService) GetUnitsByRoom(roomID uint) ([]models.Unit, error) {
	if _, err := s.projectRepo.FindRoom(roomID); err != nil {
		return nil, err
	}
	return s.unitRepo.GetUnitsByRoom(roomID)
}

// CreateUnit creates a unit after checking its variant and room exist
func (s *UnitService) CreateUnit(unit *models.Unit) error {
	if _, err := s.catalogRepo.GetVariantByID(unit.DetailModelID); err != nil {
		return err
	}
	if _, err := s.projectRepo.FindRoom(unit.RuanganID); err != nil {
		return err
	}
	return s.unitRepo.CreateUnit(unit)
}

// UpdateUnit applies partial changes to a unit
func (s *UnitService) UpdateUnit(id uint, updates *models.Unit) (*models.Unit, error) {
	unit, err := s.unitRepo.GetUnitByID(id)
	if err != nil {
		return nil, err
	}
	if updates.DetailModelID != 0 {
		if _, err := s.catalogRepo.GetVariantByID(updates.DetailModelID); err != nil {
			return nil, err
		}
		unit.DetailModelID = updates.DetailModelID
	}
	if updates.RuanganID != 0 {
		if _, err := s.projectRepo.FindRoom(updates.RuanganID); err != nil {
			return nil, err
		}
		unit.RuanganID = updates.RuanganID
	}
	if updates.Nama != "" {
		unit.Nama = updates.Nama
	}
	if updates.NomorSeri != "" {
		unit.NomorSeri = updates.NomorSeri
	}
	// Clear loaded associations so Save touches only the unit row
	unit.DetailModel = nil
	unit.Ruangan = nil
	if err := s.unitRepo.UpdateUnit(unit); err != nil {
		return nil, err
	}
	return s.unitRepo.GetUnitByID(id)
}

// DeleteUnit removes a unit
func (s *UnitService) DeleteUnit(id uint) error {
	if _, err := s.unitRepo.GetUnitByID(id); err != nil {
		return err
	}
	return s.unitRepo.DeleteUnit(id)
}
