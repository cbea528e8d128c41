package repository

import (
	"errors"

	"github.com/Habiboys/SIMPA/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository manages the merek -> jenis_model -> detail_model
// catalog referenced by units.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetAllBrands retrieves all brands with their models
func (r *CatalogRepository) GetAllBrands() ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Preload("JenisModel").Order("nama ASC").Find(&brands).Error
	return brands, err
}

// GetBrandByID retrieves a brand with its models
func (r *CatalogRepository) GetBrandByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.Where("id = ?", id).Preload("JenisModel").First(&brand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("merek not found")
		}
		return nil, err
	}
	return &brand, nil
}

// CreateBrand creates a new brand
func (r *CatalogRepository) CreateBrand(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

// UpdateBrand updates an existing brand
func (r *CatalogRepository) UpdateBrand(brand *models.Brand) error {
	return r.db.Save(brand).Error
}

// DeleteBrand removes a brand
func (r *CatalogRepository) DeleteBrand(id uint) error {
	return r.db.Delete(&models.Brand{}, id).Error
}

// GetAllModels retrieves all models with brand and variants
func (r *CatalogRepository) GetAllModels() ([]models.Model, error) {
	var list []models.Model
	err := r.db.Preload("Merek").Preload("DetailModel").Order("nama_model ASC").Find(&list).Error
	return list, err
}

// GetModelByID retrieves a model with brand and variants
func (r *CatalogRepository) GetModelByID(id uint) (*models.Model, error) {
	var model models.Model
	err := r.db.Where("id = ?", id).
		Preload("Merek").
		Preload("DetailModel").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("jenis model not found")
		}
		return nil, err
	}
	return &model, nil
}

// CreateModel creates a new model
func (r *CatalogRepository) CreateModel(model *models.Model) error {
	return r.db.Create(model).Error
}

// UpdateModel updates an existing model
func (r *CatalogRepository) UpdateModel(model *models.Model) error {
	return r.db.Save(model).Error
}

// DeleteModel removes a model
func (r *CatalogRepository) DeleteModel(id uint) error {
	return r.db.Delete(&models.Model{}, id).Error
}

// GetAllVariants retrieves all variants with their model chain
func (r *CatalogRepository) GetAllVariants() ([]models.ModelVariant, error) {
	var variants []models.ModelVariant
	err := r.db.Preload("JenisModel").Preload("JenisModel.Merek").
		Order("nama_model ASC").
		Find(&variants).Error
	return variants, err
}

// GetVariantByID retrieves a variant with its model chain
func (r *CatalogRepository) GetVariantByID(id uint) (*models.ModelVariant, error) {
	var variant models.ModelVariant
	err := r.db.Where("id = ?", id).
		Preload("JenisModel").
		Preload("JenisModel.Merek").
		First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("detail model not found")
		}
		return nil, err
	}
	return &variant, nil
}

// CreateVariant creates a new variant
func (r *CatalogRepository) CreateVariant(variant *models.ModelVariant) error {
	return r.db.Create(variant).Error
}

// UpdateVariant updates an existing variant
func (r *CatalogRepository) UpdateVariant(variant *models.ModelVariant) error {
	return r.db.Save(variant).Error
}

// DeleteVariant removes a variant
func (r *CatalogRepository) DeleteVariant(id uint) error {
	return r.db.Delete(&models.ModelVariant{}, id).Error
}
