package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Habiboys/SIMPA/internal/service"
	"github.com/Habiboys/SIMPA/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
	reportService      *service.ReportService
	logger             *zap.Logger
}

func NewMaintenanceHandler(maintenanceService *service.MaintenanceService, reportService *service.ReportService, logger *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		reportService:      reportService,
		logger:             logger,
	}
}

// Create records one full maintenance visit
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req service.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.maintenanceService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		default:
			h.logger.Error("maintenance create failed", zap.Error(err))
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create maintenance data")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Maintenance data created successfully",
		"maintenance_id": id,
	})
}

// GetAll retrieves every maintenance record, newest first
func (h *MaintenanceHandler) GetAll(c *gin.Context) {
	records, err := h.maintenanceService.GetAll()
	if err != nil {
		h.logger.Error("maintenance list failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch maintenance data")
		return
	}

	utils.SuccessResponse(c, records)
}

// GetByID retrieves one maintenance record with its full detail
func (h *MaintenanceHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid maintenance ID")
		return
	}

	record, err := h.maintenanceService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			h.logger.Error("maintenance fetch failed", zap.Error(err))
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch maintenance data")
		}
		return
	}

	utils.SuccessResponse(c, record)
}

// GetByProject retrieves a project's maintenance records with an optional
// startDate/endDate filter
func (h *MaintenanceHandler) GetByProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("projectId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	start, end, err := service.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.maintenanceService.GetByProject(uint(projectID), start, end)
	if err != nil {
		h.logger.Error("maintenance project list failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch maintenance data")
		return
	}

	utils.SuccessResponse(c, records)
}

// GetTotalByProject counts a project's maintenance records under the same
// filter as GetByProject
func (h *MaintenanceHandler) GetTotalByProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("projectId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	start, end, err := service.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	total, err := h.maintenanceService.CountByProject(uint(projectID), start, end)
	if err != nil {
		h.logger.Error("maintenance count failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to count maintenance data")
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalMaintenance": total})
}

// Export streams a project's maintenance history as an Excel workbook
func (h *MaintenanceHandler) Export(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("projectId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	start, end, err := service.ParseDateRange(startDate, endDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	f, filename, err := h.reportService.ExportProject(uint(projectID), start, end, startDate, endDate)
	if err != nil {
		h.logger.Error("maintenance export failed", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("maintenance export write failed", zap.Error(err))
	}
}

// GetPhoto streams one stored photo inline
func (h *MaintenanceHandler) GetPhoto(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.maintenanceService.PhotoPath(filename)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Photo not found")
		return
	}

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.File(path)
}
