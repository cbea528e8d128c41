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

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

type BrandRequest struct {
	Nama string `json:"nama" binding:"required"`
}

type ModelRequest struct {
	MerekID   uint   `json:"id_merek" binding:"required"`
	NamaModel string `json:"nama_model" binding:"required"`
	Kapasitas string `json:"kapasitas"`
}

type ModelUpdateRequest struct {
	MerekID   uint   `json:"id_merek"`
	NamaModel string `json:"nama_model"`
	Kapasitas string `json:"kapasitas"`
}

type VariantRequest struct {
	ModelID   uint            `json:"id_model" binding:"required"`
	NamaModel string          `json:"nama_model" binding:"required"`
	Kategori  models.Category `json:"kategori" binding:"required,oneof=indoor outdoor"`
}

type VariantUpdateRequest struct {
	ModelID   uint            `json:"id_model"`
	NamaModel string          `json:"nama_model"`
	Kategori  models.Category `json:"kategori" binding:"omitempty,oneof=indoor outdoor"`
}

// catalogError maps a catalog service error onto an HTTP status
func catalogError(c *gin.Context, err error, fallback string) {
	switch {
	case err.Error() == "merek not found",
		err.Error() == "jenis model not found",
		err.Error() == "detail model not found":
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

// GetBrands retrieves all brands
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	brands, err := h.catalogService.GetAllBrands()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch brands")
		return
	}

	utils.SuccessResponse(c, brands)
}

// CreateBrand creates a new brand
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	brand := &models.Brand{Nama: req.Nama}
	if err := h.catalogService.CreateBrand(brand); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create brand")
		return
	}

	utils.CreatedResponse(c, brand)
}

// UpdateBrand modifies a brand
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid brand ID")
		return
	}

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	brand, err := h.catalogService.UpdateBrand(uint(id), &models.Brand{Nama: req.Nama})
	if err != nil {
		catalogError(c, err, "Failed to update brand")
		return
	}

	utils.SuccessResponse(c, brand)
}

// DeleteBrand removes a brand
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid brand ID")
		return
	}

	if err := h.catalogService.DeleteBrand(uint(id)); err != nil {
		catalogError(c, err, "Failed to delete brand")
		return
	}

	utils.MessageResponse(c, "Brand deleted successfully")
}

// GetModels retrieves all models with their brands
func (h *CatalogHandler) GetModels(c *gin.Context) {
	list, err := h.catalogService.GetAllModels()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch models")
		return
	}

	utils.SuccessResponse(c, list)
}

// CreateModel creates a model under a brand
func (h *CatalogHandler) CreateModel(c *gin.Context) {
	var req ModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	model := &models.Model{
		MerekID:   req.MerekID,
		NamaModel: req.NamaModel,
		Kapasitas: req.Kapasitas,
	}
	if err := h.catalogService.CreateModel(model); err != nil {
		catalogError(c, err, "Failed to create model")
		return
	}

	utils.CreatedResponse(c, model)
}

// UpdateModel modifies a model
func (h *CatalogHandler) UpdateModel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid model ID")
		return
	}

	var req ModelUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	model, err := h.catalogService.UpdateModel(uint(id), &models.Model{
		MerekID:   req.MerekID,
		NamaModel: req.NamaModel,
		Kapasitas: req.Kapasitas,
	})
	if err != nil {
		catalogError(c, err, "Failed to update model")
		return
	}

	utils.SuccessResponse(c, model)
}

// DeleteModel removes a model
func (h *CatalogHandler) DeleteModel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid model ID")
		return
	}

	if err := h.catalogService.DeleteModel(uint(id)); err != nil {
		catalogError(c, err, "Failed to delete model")
		return
	}

	utils.MessageResponse(c, "Model deleted successfully")
}

// GetVariants retrieves all model variants with their model chains
func (h *CatalogHandler) GetVariants(c *gin.Context) {
	variants, err := h.catalogService.GetAllVariants()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch model variants")
		return
	}

	utils.SuccessResponse(c, variants)
}

// CreateVariant creates a variant under a model
func (h *CatalogHandler) CreateVariant(c *gin.Context) {
	var req VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	variant := &models.ModelVariant{
		ModelID:   req.ModelID,
		NamaModel: req.NamaModel,
		Kategori:  req.Kategori,
	}
	if err := h.catalogService.CreateVariant(variant); err != nil {
		catalogError(c, err, "Failed to create model variant")
		return
	}

	utils.CreatedResponse(c, variant)
}

// UpdateVariant modifies a model variant
func (h *CatalogHandler) UpdateVariant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid model variant ID")
		return
	}

	var req VariantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	variant, err := h.catalogService.UpdateVariant(uint(id), &models.ModelVariant{
		ModelID:   req.ModelID,
		NamaModel: req.NamaModel,
		Kategori:  req.Kategori,
	})
	if err != nil {
		catalogError(c, err, "Failed to update model variant")
		return
	}

	utils.SuccessResponse(c, variant)
}

// DeleteVariant removes a model variant
func (h *CatalogHandler) DeleteVariant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid model variant ID")
		return
	}

	if err := h.catalogService.DeleteVariant(uint(id)); err != nil {
		catalogError(c, err, "Failed to delete model variant")
		return
	}

	utils.MessageResponse(c, "Model variant deleted successfully")
}
