package service

import (
	"github.com/Habiboys/SIMPA/internal/models"
	"github.com/Habiboys/SIMPA/internal/repository"
)

type CatalogService struct {
	catalogRepo *repository.CatalogRepository
}

func NewCatalogService(catalogRepo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// GetAllBrands retrieves every brand
func (s *CatalogService) GetAllBrands() ([]models.Brand, error) {
	return s.catalogRepo.GetAllBrands()
}

// GetBrandByID retrieves one brand
func (s *CatalogService) GetBrandByID(id uint) (*models.Brand, error) {
	return s.catalogRepo.GetBrandByID(id)
}

// CreateBrand creates a new brand
func (s *CatalogService) CreateBrand(brand *models.Brand) error {
	return s.catalogRepo.CreateBrand(brand)
}

// UpdateBrand applies partial changes to a brand
func (s *CatalogService) UpdateBrand(id uint, updates *models.Brand) (*models.Brand, error) {
	brand, err := s.catalogRepo.GetBrandByID(id)
	if err != nil {
		return nil, err
	}
	if updates.Nama != "" {
		brand.Nama = updates.Nama
	}
	brand.JenisModel = nil
	if err := s.catalogRepo.UpdateBrand(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// DeleteBrand removes a brand
func (s *CatalogService) DeleteBrand(id uint) error {
	if _, err := s.catalogRepo.GetBrandByID(id); err != nil {
		return err
	}
	return s.catalogRepo.DeleteBrand(id)
}

// GetAllModels retrieves every model with its brand
func (s *CatalogService) GetAllModels() ([]models.Model, error) {
	return s.catalogRepo.GetAllModels()
}

// GetModelByID retrieves one model with its brand
func (s *CatalogService) GetModelByID(id uint) (*models.Model, error) {
	return s.catalogRepo.GetModelByID(id)
}

// CreateModel creates a model under an existing brand
func (s *CatalogService) CreateModel(model *models.Model) error {
	if _, err := s.catalogRepo.GetBrandByID(model.MerekID); err != nil {
		return err
	}
	return s.catalogRepo.CreateModel(model)
}

// UpdateModel applies partial changes to a model
func (s *CatalogService) UpdateModel(id uint, updates *models.Model) (*models.Model, error) {
	model, err := s.catalogRepo.GetModelByID(id)
	if err != nil {
		return nil, err
	}
	if updates.MerekID != 0 {
		if _, err := s.catalogRepo.GetBrandByID(updates.MerekID); err != nil {
			return nil, err
		}
		model.MerekID = updates.MerekID
	}
	if updates.NamaModel != "" {
		model.NamaModel = updates.NamaModel
	}
	if updates.Kapasitas != "" {
		model.Kapasitas = updates.Kapasitas
	}
	model.Merek = nil
	model.DetailModel = nil
	if err := s.catalogRepo.UpdateModel(model); err != nil {
		return nil, err
	}
	return model, nil
}

// DeleteModel removes a model
func (s *CatalogService) DeleteModel(id uint) error {
	if _, err := s.catalogRepo.GetModelByID(id); err != nil {
		return err
	}
	return s.catalogRepo.DeleteModel(id)
}

// GetAllVariants retrieves every model variant with its model chain
func (s *CatalogService) GetAllVariants() ([]models.ModelVariant, error) {
	return s.catalogRepo.GetAllVariants()
}

// GetVariantByID retrieves one model variant with its model chain
func (s *CatalogService) GetVariantByID(id uint) (*models.ModelVariant, error) {
	return s.catalogRepo.GetVariantByID(id)
}

// CreateVariant creates a variant under an existing model
func (s *CatalogService) CreateVariant(variant *models.ModelVariant) error {
	if !variant.Kategori.Valid() {
		return validationError("kategori must be indoor or outdoor")
	}
	if _, err := s.catalogRepo.GetModelByID(variant.ModelID); err != nil {
		return err
	}
	return s.catalogRepo.CreateVariant(variant)
}

// UpdateVariant applies partial changes to a model variant
func (s *CatalogService) UpdateVariant(id uint, updates *models.ModelVariant) (*models.ModelVariant, error) {
	variant, err := s.catalogRepo.GetVariantByID(id)
	if err != nil {
		return nil, err
	}
	if updates.ModelID != 0 {
		if _, err := s.catalogRepo.GetModelByID(updates.ModelID); err != nil {
			return nil, err
		}
		variant.ModelID = updates.ModelID
	}
	if updates.NamaModel != "" {
		variant.NamaModel = updates.NamaModel
	}
	if updates.Kategori != "" {
		if !updates.Kategori.Valid() {
			return nil, validationError("kategori must be indoor or outdoor")
		}
		variant.Kategori = updates.Kategori
	}
	variant.JenisModel = nil
	if err := s.catalogRepo.UpdateVariant(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// DeleteVariant removes a model variant
func (s *CatalogService) DeleteVariant(id uint) error {
	if _, err := s.catalogRepo.GetVariantByID(id); err != nil {
		return err
	}
	return s.catalogRepo.DeleteVariant(id)
}
