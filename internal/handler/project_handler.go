package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Habiboys/SIMPA/internal/models"
	"github.com/Habiboys/SIMPA/internal/service"
	"github.com/Habiboys/SIMPA/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

type ProjectRequest struct {
	Nama      string `json:"nama" binding:"required"`
	Pelanggan string `json:"pelanggan" binding:"required"`
	Tanggal   string `json:"tanggal" binding:"required,datetime=2006-01-02"`
	Lokasi    string `json:"lokasi" binding:"required"`
}

type ProjectUpdateRequest struct {
	Nama      string `json:"nama"`
	Pelanggan string `json:"pelanggan"`
	Tanggal   string `json:"tanggal" binding:"omitempty,datetime=2006-01-02"`
	Lokasi    string `json:"lokasi"`
}

type BuildingRequest struct {
	Nama string `json:"nama" binding:"required"`
}

type RoomRequest struct {
	Nama   string `json:"nama" binding:"required"`
	Lantai string `json:"lantai" binding:"required"`
}

type RoomUpdateRequest struct {
	Nama   string `json:"nama"`
	Lantai string `json:"lantai"`
}

// GetProjects retrieves all projects
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectService.GetAllProjects()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	utils.SuccessResponse(c, projects)
}

// GetProject retrieves a specific project with its buildings
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetProjectByID(uint(id))
	if err != nil {
		if err.Error() == "proyek not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch project")
		}
		return
	}

	utils.SuccessResponse(c, project)
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	tanggal, _ := time.Parse("2006-01-02", req.Tanggal)
	project := &models.Project{
		Nama:      req.Nama,
		Pelanggan: req.Pelanggan,
		Tanggal:   tanggal,
		Lokasi:    req.Lokasi,
	}

	if err := h.projectService.CreateProject(project); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	utils.CreatedResponse(c, project)
}

// UpdateProject modifies an existing project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updates := &models.Project{
		Nama:      req.Nama,
		Pelanggan: req.Pelanggan,
		Lokasi:    req.Lokasi,
	}
	if req.Tanggal != "" {
		updates.Tanggal, _ = time.Parse("2006-01-02", req.Tanggal)
	}

	project, err := h.projectService.UpdateProject(uint(id), updates)
	if err != nil {
		if err.Error() == "proyek not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update project")
		}
		return
	}

	utils.SuccessResponse(c, project)
}

// DeleteProject removes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := h.projectService.DeleteProject(uint(id)); err != nil {
		if err.Error() == "proyek not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete project")
		}
		return
	}

	utils.MessageResponse(c, "Project deleted successfully")
}

// GetBuildings retrieves all buildings of a project
func (h *ProjectHandler) GetBuildings(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	buildings, err := h.projectService.GetBuildingsByProject(uint(projectID))
	if err != nil {
		if err.Error() == "proyek not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch buildings")
		}
		return
	}

	utils.SuccessResponse(c, buildings)
}

// CreateBuilding creates a building under a project
func (h *ProjectHandler) CreateBuilding(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	building := &models.Building{Nama: req.Nama}
	if err := h.projectService.CreateBuilding(uint(projectID), building); err != nil {
		if err.Error() == "proyek not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create building")
		}
		return
	}

	utils.CreatedResponse(c, building)
}

// UpdateBuilding modifies a building of a project
func (h *ProjectHandler) UpdateBuilding(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	buildingID, err := strconv.ParseUint(c.Param("buildingId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid building ID")
		return
	}

	var req BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	building, err := h.projectService.UpdateBuilding(uint(projectID), uint(buildingID), &models.Building{Nama: req.Nama})
	if err != nil {
		if err.Error() == "gedung not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update building")
		}
		return
	}

	utils.SuccessResponse(c, building)
}

// DeleteBuilding removes a building of a project
func (h *ProjectHandler) DeleteBuilding(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	buildingID, err := strconv.ParseUint(c.Param("buildingId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid building ID")
		return
	}

	if err := h.projectService.DeleteBuilding(uint(projectID), uint(buildingID)); err != nil {
		if err.Error() == "gedung not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete building")
		}
		return
	}

	utils.MessageResponse(c, "Building deleted successfully")
}

// GetRooms retrieves all rooms of a building
func (h *ProjectHandler) GetRooms(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	buildingID, err := strconv.ParseUint(c.Param("buildingId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid building ID")
		return
	}

	rooms, err := h.projectService.GetRoomsByBuilding(uint(projectID), uint(buildingID))
	if err != nil {
		if err.Error() == "gedung not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch rooms")
		}
		return
	}

	utils.SuccessResponse(c, rooms)
}

// CreateRoom creates a room under a building
func (h *ProjectHandler) CreateRoom(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	buildingID, err := strconv.ParseUint(c.Param("buildingId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid building ID")
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	room := &models.Room{Nama: req.Nama, Lantai: req.Lantai}
	if err := h.projectService.CreateRoom(uint(projectID), uint(buildingID), room); err != nil {
		if err.Error() == "gedung not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create room")
		}
		return
	}

	utils.CreatedResponse(c, room)
}

// UpdateRoom modifies a room of a building
func (h *ProjectHandler) UpdateRoom(c *gin.Context) {
	buildingID, err := strconv.ParseUint(c.Param("buildingId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid building ID")
		return
	}

	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var req RoomUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	room, err := h.projectService.UpdateRoom(uint(buildingID), uint(roomID), &models.Room{Nama: req.Nama, Lantai: req.Lantai})
	if err != nil {
		if err.Error() == "ruangan not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update room")
		}
		return
	}

	utils.SuccessResponse(c, room)
}

// DeleteRoom removes a room of a building
func (h *ProjectHandler) DeleteRoom(c *gin.Context) {
	buildingID, err := strconv.ParseUint(c.Param("buildingId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid building ID")
		return
	}

	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	if err := h.projectService.DeleteRoom(uint(buildingID), uint(roomID)); err != nil {
		if err.Error() == "ruangan not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete room")
		}
		return
	}

	utils.MessageResponse(c, "Room deleted successfully")
}
