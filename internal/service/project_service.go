package service

import (
	"github.com/Habiboys/SIMPA/internal/models"
	"github.com/Habiboys/SIMPA/internal/repository"
)

type ProjectService struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// GetAllProjects retrieves every project
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	return s.projectRepo.GetAllProjects()
}

// GetProjectByID retrieves one project with its buildings
func (s *ProjectService) GetProjectByID(id uint) (*models.Project, error) {
	return s.projectRepo.GetProjectByID(id)
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(project *models.Project) error {
	return s.projectRepo.CreateProject(project)
}

// UpdateProject applies partial changes to an existing project
func (s *ProjectService) UpdateProject(id uint, updates *models.Project) (*models.Project, error) {
	project, err := s.projectRepo.GetProjectByID(id)
	if err != nil {
		return nil, err
	}
	if updates.Nama != "" {
		project.Nama = updates.Nama
	}
	if updates.Pelanggan != "" {
		project.Pelanggan = updates.Pelanggan
	}
	if !updates.Tanggal.IsZero() {
		project.Tanggal = updates.Tanggal
	}
	if updates.Lokasi != "" {
		project.Lokasi = updates.Lokasi
	}
	project.Gedung = nil
	if err := s.projectRepo.UpdateProject(project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project
func (s *ProjectService) DeleteProject(id uint) error {
	if _, err := s.projectRepo.GetProjectByID(id); err != nil {
		return err
	}
	return s.projectRepo.DeleteProject(id)
}

// GetBuildingsByProject retrieves a project's buildings
func (s *ProjectService) GetBuildingsByProject(projectID uint) ([]models.Building, error) {
	if _, err := s.projectRepo.GetProjectByID(projectID); err != nil {
		return nil, err
	}
	return s.projectRepo.GetBuildingsByProject(projectID)
}

// GetBuildingByID retrieves one building of a project
func (s *ProjectService) GetBuildingByID(projectID, id uint) (*models.Building, error) {
	return s.projectRepo.GetBuildingByID(projectID, id)
}

// CreateBuilding creates a building under an existing project
func (s *ProjectService) CreateBuilding(projectID uint, building *models.Building) error {
	if _, err := s.projectRepo.GetProjectByID(projectID); err != nil {
		return err
	}
	building.ProyekID = projectID
	return s.projectRepo.CreateBuilding(building)
}

// UpdateBuilding applies partial changes to a building of a project
func (s *ProjectService) UpdateBuilding(projectID, id uint, updates *models.Building) (*models.Building, error) {
	building, err := s.projectRepo.GetBuildingByID(projectID, id)
	if err != nil {
		return nil, err
	}
	if updates.Nama != "" {
		building.Nama = updates.Nama
	}
	building.Ruangan = nil
	if err := s.projectRepo.UpdateBuilding(building); err != nil {
		return nil, err
	}
	return building, nil
}

// DeleteBuilding removes a building of a project
func (s *ProjectService) DeleteBuilding(projectID, id uint) error {
	if _, err := s.projectRepo.GetBuildingByID(projectID, id); err != nil {
		return err
	}
	return s.projectRepo.DeleteBuilding(id)
}

// GetRoomsByBuilding retrieves a building's rooms
func (s *ProjectService) GetRoomsByBuilding(projectID, buildingID uint) ([]models.Room, error) {
	if _, err := s.projectRepo.GetBuildingByID(projectID, buildingID); err != nil {
		return nil, err
	}
	return s.projectRepo.GetRoomsByBuilding(buildingID)
}

// GetRoomByID retrieves one room of a building
func (s *ProjectService) GetRoomByID(buildingID, id uint) (*models.Room, error) {
	return s.projectRepo.GetRoomByID(buildingID, id)
}

// CreateRoom creates a room under an existing building
func (s *ProjectService) CreateRoom(projectID, buildingID uint, room *models.Room) error {
	if _, err := s.projectRepo.GetBuildingByID(projectID, buildingID); err != nil {
		return err
	}
	room.GedungID = buildingID
	return s.projectRepo.CreateRoom(room)
}

// UpdateRoom applies partial changes to a room of a building
func (s *ProjectService) UpdateRoom(buildingID, id uint, updates *models.Room) (*models.Room, error) {
	room, err := s.projectRepo.GetRoomByID(buildingID, id)
	if err != nil {
		return nil, err
	}
	if updates.Nama != "" {
		room.Nama = updates.Nama
	}
	if updates.Lantai != "" {
		room.Lantai = updates.Lantai
	}
	if err := s.projectRepo.UpdateRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes a room of a building
func (s *ProjectService) DeleteRoom(buildingID, id uint) error {
	if _, err := s.projectRepo.GetRoomByID(buildingID, id); err != nil {
		return err
	}
	return s.projectRepo.DeleteRoom(id)
}
