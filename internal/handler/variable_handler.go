package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Habiboys/SIMPA/internal/models"
	"github.com/Habiboys/SIMPA/internal/service"
	"github.com/Habiboys/SIMPA/pkg/utils"

	"github.com/gin-gonic/gin"
)

type VariableHandler struct {
	variableService *service.VariableService
}

func NewVariableHandler(variableService *service.VariableService) *VariableHandler {
	return &VariableHandler{
		variableService: variableService,
	}
}

type VariableRequest struct {
	NamaVariable string          `json:"nama_variable" binding:"required"`
	Jenis        models.Category `json:"jenis" binding:"required,oneof=indoor outdoor"`
}

type VariableUpdateRequest struct {
	NamaVariable string          `json:"nama_variable"`
	Jenis        models.Category `json:"jenis" binding:"omitempty,oneof=indoor outdoor"`
}

func variableError(c *gin.Context, err error, fallback string) {
	switch {
	case err.Error() == "variable pemeriksaan not found",
		err.Error() == "variable pembersihan not found":
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

// GetInspectionVariables retrieves inspection variables, filtered by the
// optional jenis query parameter
func (h *VariableHandler) GetInspectionVariables(c *gin.Context) {
	variables, err := h.variableService.GetInspectionVariables(models.Category(c.Query("jenis")))
	if err != nil {
		variableError(c, err, "Failed to fetch inspection variables")
		return
	}

	utils.SuccessResponse(c, variables)
}

// CreateInspectionVariable creates a new inspection variable
func (h *VariableHandler) CreateInspectionVariable(c *gin.Context) {
	var req VariableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	v := &models.InspectionVariable{NamaVariable: req.NamaVariable, Jenis: req.Jenis}
	if err := h.variableService.CreateInspectionVariable(v); err != nil {
		variableError(c, err, "Failed to create inspection variable")
		return
	}

	utils.CreatedResponse(c, v)
}

// UpdateInspectionVariable modifies an inspection variable
func (h *VariableHandler) UpdateInspectionVariable(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid variable ID")
		return
	}

	var req VariableUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	v, err := h.variableService.UpdateInspectionVariable(uint(id), &models.InspectionVariable{
		NamaVariable: req.NamaVariable,
		Jenis:        req.Jenis,
	})
	if err != nil {
		variableError(c, err, "Failed to update inspection variable")
		return
	}

	utils.SuccessResponse(c, v)
}

// DeleteInspectionVariable removes an inspection variable
func (h *VariableHandler) DeleteInspectionVariable(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid variable ID")
		return
	}

	if err := h.variableService.DeleteInspectionVariable(uint(id)); err != nil {
		variableError(c, err, "Failed to delete inspection variable")
		return
	}

	utils.MessageResponse(c, "Inspection variable deleted successfully")
}

// GetCleaningVariables retrieves cleaning variables, filtered by the
// optional jenis query parameter
func (h *VariableHandler) GetCleaningVariables(c *gin.Context) {
	variables, err := h.variableService.GetCleaningVariables(models.Category(c.Query("jenis")))
	if err != nil {
		variableError(c, err, "Failed to fetch cleaning variables")
		return
	}

	utils.SuccessResponse(c, variables)
}

// CreateCleaningVariable creates a new cleaning variable
func (h *VariableHandler) CreateCleaningVariable(c *gin.Context) {
	var req VariableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	v := &models.CleaningVariable{NamaVariable: req.NamaVariable, Jenis: req.Jenis}
	if err := h.variableService.CreateCleaningVariable(v); err != nil {
		variableError(c, err, "Failed to create cleaning variable")
		return
	}

	utils.CreatedResponse(c, v)
}

// UpdateCleaningVariable modifies a cleaning variable
func (h *VariableHandler) UpdateCleaningVariable(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid variable ID")
		return
	}

	var req VariableUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	v, err := h.variableService.UpdateCleaningVariable(uint(id), &models.CleaningVariable{
		NamaVariable: req.NamaVariable,
		Jenis:        req.Jenis,
	})
	if err != nil {
		variableError(c, err, "Failed to update cleaning variable")
		return
	}

	utils.SuccessResponse(c, v)
}

// DeleteCleaningVariable removes a cleaning variable
func (h *VariableHandler) DeleteCleaningVariable(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid variable ID")
		return
	}

	if err := h.variableService.DeleteCleaningVariable(uint(id)); err != nil {
		variableError(c, err, "Failed to delete cleaning variable")
		return
	}

	utils.MessageResponse(c, "Cleaning variable deleted successfully")
}
