package handler

import (
	"net/http"
	"strconv"

	"github.com/Habiboys/SIMPA/internal/models"
	"github.com/Habiboys/SIMPA/internal/service"
	"github.com/Habiboys/SIMPA/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	unitService *service.UnitService
}

func NewUnitHandler(unitService *service.UnitService) *UnitHandler {
	return &UnitHandler{
		unitService: unitService,
	}
}

type UnitRequest struct {
	DetailModelID uint   `json:"id_detail_model" binding:"required"`
	RuanganID     uint   `json:"id_ruangan" binding:"required"`
	Nama          string `json:"nama" binding:"required"`
	NomorSeri     string `json:"nomor_seri" binding:"required"`
}

type UnitUpdateRequest struct {
	DetailModelID uint   `json:"id_detail_model"`
	RuanganID     uint   `json:"id_ruangan"`
	Nama          string `json:"nama"`
	NomorSeri     string `json:"nomor_seri"`
}

func unitError(c *gin.Context, err error, fallback string) {
	switch err.Error() {
	case "unit not found", "ruangan not found", "detail model not found", "proyek not found":
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

// GetUnit retrieves one unit with its catalog chain and room
func (h *UnitHandler) GetUnit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	unit, err := h.unitService.GetUnitByID(uint(id))
	if err != nil {
		unitError(c, err, "Failed to fetch unit")
		return
	}

	utils.SuccessResponse(c, unit)
}

// GetUnitsByProject retrieves every unit installed in a project
func (h *UnitHandler) GetUnitsByProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("projectId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	units, err := h.unitService.GetUnitsByProject(uint(projectID))
	if err != nil {
		unitError(c, err, "Failed to fetch units")
		return
	}

	utils.SuccessResponse(c, units)
}

// GetUnitsByRoom retrieves the units installed in one room
func (h *UnitHandler) GetUnitsByRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	units, err := h.unitService.GetUnitsByRoom(uint(roomID))
	if err != nil {
		unitError(c, err, "Failed to fetch units")
		return
	}

	utils.SuccessResponse(c, units)
}

// CreateUnit registers a new AC unit in a room
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	unit := &models.Unit{
		DetailModelID: req.DetailModelID,
		RuanganID:     req.RuanganID,
		Nama:          req.Nama,
		NomorSeri:     req.NomorSeri,
	}
	if err := h.unitService.CreateUnit(unit); err != nil {
		unitError(c, err, "Failed to create unit")
		return
	}

	utils.CreatedResponse(c, unit)
}

// UpdateUnit modifies a unit
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	var req UnitUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	unit, err := h.unitService.UpdateUnit(uint(id), &models.Unit{
		DetailModelID: req.DetailModelID,
		RuanganID:     req.RuanganID,
		Nama:          req.Nama,
		NomorSeri:     req.NomorSeri,
	})
	if err != nil {
		unitError(c, err, "Failed to update unit")
		return
	}

	utils.SuccessResponse(c, unit)
}

// DeleteUnit removes a unit
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	if err := h.unitService.DeleteUnit(uint(id)); err != nil {
		unitError(c, err, "Failed to delete unit")
		return
	}

	utils.MessageResponse(c, "Unit deleted successfully")
}
