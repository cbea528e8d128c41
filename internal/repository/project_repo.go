package repository

import (
	"errors"

	"github.com/Habiboys/SIMPA/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository manages the proyek -> gedung -> ruangan hierarchy.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// GetAllProjects retrieves all projects with their buildings
func (r *ProjectRepository) GetAllProjects() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Gedung").Order("tanggal DESC").Find(&projects).Error
	return projects, err
}

// GetProjectByID retrieves a project with its buildings
func (r *ProjectRepository) GetProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("id = ?", id).Preload("Gedung").First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("proyek not found")
		}
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a new project
func (r *ProjectRepository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// UpdateProject updates an existing project
func (r *ProjectRepository) UpdateProject(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteProject removes a project
func (r *ProjectRepository) DeleteProject(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// GetBuildingsByProject retrieves all buildings of a project with rooms
func (r *ProjectRepository) GetBuildingsByProject(projectID uint) ([]models.Building, error) {
	var buildings []models.Building
	err := r.db.Where("id_proyek = ?", projectID).
		Preload("Ruangan").
		Order("nama ASC").
		Find(&buildings).Error
	return buildings, err
}

// GetBuildingByID retrieves one building of a project
func (r *ProjectRepository) GetBuildingByID(projectID, id uint) (*models.Building, error) {
	var building models.Building
	err := r.db.Where("id = ? AND id_proyek = ?", id, projectID).
		Preload("Ruangan").
		First(&building).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("gedung not found")
		}
		return nil, err
	}
	return &building, nil
}

// CreateBuilding creates a new building
func (r *ProjectRepository) CreateBuilding(building *models.Building) error {
	return r.db.Create(building).Error
}

// UpdateBuilding updates an existing building
func (r *ProjectRepository) UpdateBuilding(building *models.Building) error {
	return r.db.Save(building).Error
}

// DeleteBuilding removes a building
func (r *ProjectRepository) DeleteBuilding(id uint) error {
	return r.db.Delete(&models.Building{}, id).Error
}

// GetRoomsByBuilding retrieves all rooms of a building
func (r *ProjectRepository) GetRoomsByBuilding(buildingID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Where("id_gedung = ?", buildingID).
		Order("lantai ASC, nama ASC").
		Find(&rooms).Error
	return rooms, err
}

// GetRoomByID retrieves one room of a building
func (r *ProjectRepository) GetRoomByID(buildingID, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.Where("id = ? AND id_gedung = ?", id, buildingID).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("ruangan not found")
		}
		return nil, err
	}
	return &room, nil
}

// FindRoom retrieves one room by its ID regardless of building, for
// cross-entity reference checks.
func (r *ProjectRepository) FindRoom(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("ruangan not found")
		}
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a new room
func (r *ProjectRepository) CreateRoom(room *models.Room) error {
	return r.db.Create(room).Error
}

// UpdateRoom updates an existing room
func (r *ProjectRepository) UpdateRoom(room *models.Room) error {
	return r.db.Save(room).Error
}

// DeleteRoom removes a room
func (r *ProjectRepository) DeleteRoom(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}
