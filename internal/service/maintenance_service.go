package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Habiboys/SIMPA/internal/models"
	"github.com/Habiboys/SIMPA/internal/repository"
	"github.com/Habiboys/SIMPA/internal/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound marks a missing unit, maintenance record or photo.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks a submission rejected before any persistence.
	ErrValidation = errors.New("validation failed")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func notFoundError(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// InspectionEntry is one measured inspection variable in a submission.
type InspectionEntry struct {
	VariableID uint   `json:"id_variable_pemeriksaan" binding:"required"`
	Nilai      string `json:"nilai" binding:"required"`
}

// CleaningEntry is one cleaning measurement in a submission. Before/after
// values are pointers so a legitimate 0 still passes required-binding.
type CleaningEntry struct {
	VariableID uint     `json:"id_variable_pembersihan" binding:"required"`
	Sebelum    *float64 `json:"sebelum" binding:"required"`
	Sesudah    *float64 `json:"sesudah" binding:"required"`
}

// PhotoEntry is one base64-encoded documentation photo in a submission.
type PhotoEntry struct {
	Nama   string             `json:"nama" binding:"required"`
	Foto   string             `json:"foto" binding:"required"`
	Status models.PhotoStatus `json:"status" binding:"required,oneof=sebelum sesudah"`
}

// CreateMaintenanceRequest is the full submission payload of one visit.
type CreateMaintenanceRequest struct {
	UnitID           uint              `json:"id_unit" binding:"required"`
	Tanggal          string            `json:"tanggal" binding:"required,datetime=2006-01-02"`
	NamaPemeriksaan  string            `json:"nama_pemeriksaan" binding:"required"`
	PaletIndoor      string            `json:"palet_indoor"`
	PaletOutdoor     string            `json:"palet_outdoor"`
	Kategori         models.Category   `json:"kategori" binding:"required,oneof=indoor outdoor"`
	HasilPemeriksaan []InspectionEntry `json:"hasil_pemeriksaan" binding:"omitempty,dive"`
	HasilPembersihan []CleaningEntry   `json:"hasil_pembersihan" binding:"omitempty,dive"`
	Foto             []PhotoEntry      `json:"foto" binding:"omitempty,dive"`
}

// decodedSubmission holds the byte payloads decoded up front, so a bad
// base64 string rejects the submission before anything is written.
type decodedSubmission struct {
	tanggal time.Time
	pallet  []byte
	photos  [][]byte
}

type MaintenanceService struct {
	maintenanceRepo *repository.MaintenanceRepository
	store           *storage.AssetStore
	logger          *zap.Logger
}

func NewMaintenanceService(maintenanceRepo *repository.MaintenanceRepository, store *storage.AssetStore, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		store:           store,
		logger:          logger,
	}
}

// Create validates and persists one maintenance visit: the header row plus
// all inspection, cleaning and photo children, in a single transaction.
// On any failure the whole submission rolls back; files already written by
// the failed attempt stay behind as unreferenced orphans.
func (s *MaintenanceService) Create(req *CreateMaintenanceRequest) (uint, error) {
	sub, err := s.validate(req)
	if err != nil {
		return 0, err
	}

	var maintenanceID uint
	err = s.maintenanceRepo.Transaction(func(tx *gorm.DB) error {
		if _, err := s.maintenanceRepo.FindUnit(tx, req.UnitID); err != nil {
			if err.Error() == "unit not found" {
				return notFoundError(fmt.Sprintf("unit with ID %d not found", req.UnitID))
			}
			return err
		}

		var paletIndoor, paletOutdoor string
		if sub.pallet != nil {
			filename, err := s.store.Store(sub.pallet, string(req.Kategori))
			if err != nil {
				return fmt.Errorf("failed to store palet photo: %w", err)
			}
			if req.Kategori == models.CategoryIndoor {
				paletIndoor = filename
			} else {
				paletOutdoor = filename
			}
		}

		maintenance := &models.Maintenance{
			UnitID:          req.UnitID,
			Tanggal:         sub.tanggal,
			NamaPemeriksaan: req.NamaPemeriksaan,
			PaletIndoor:     paletIndoor,
			PaletOutdoor:    paletOutdoor,
			Kategori:        req.Kategori,
		}
		if err := s.maintenanceRepo.Insert(tx, maintenance); err != nil {
			return err
		}

		for _, entry := range req.HasilPemeriksaan {
			hp := &models.InspectionResult{
				MaintenanceID: maintenance.ID,
				VariableID:    entry.VariableID,
				Nilai:         entry.Nilai,
			}
			if err := s.maintenanceRepo.InsertInspection(tx, hp); err != nil {
				return err
			}
		}

		for _, entry := range req.HasilPembersihan {
			hp := &models.CleaningResult{
				MaintenanceID: maintenance.ID,
				VariableID:    entry.VariableID,
				Sebelum:       *entry.Sebelum,
				Sesudah:       *entry.Sesudah,
			}
			if err := s.maintenanceRepo.InsertCleaning(tx, hp); err != nil {
				return err
			}
		}

		for i, entry := range req.Foto {
			filename, err := s.store.Store(sub.photos[i], entry.Nama)
			if err != nil {
				return fmt.Errorf("failed to store photo %q: %w", entry.Nama, err)
			}
			foto := &models.Photo{
				MaintenanceID: maintenance.ID,
				Nama:          entry.Nama,
				Foto:          filename,
				Status:        entry.Status,
			}
			if err := s.maintenanceRepo.InsertPhoto(tx, foto); err != nil {
				return err
			}
		}

		maintenanceID = maintenance.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("maintenance record created",
		zap.Uint("maintenance_id", maintenanceID),
		zap.Uint("unit_id", req.UnitID),
		zap.Int("inspections", len(req.HasilPemeriksaan)),
		zap.Int("cleanings", len(req.HasilPembersihan)),
		zap.Int("photos", len(req.Foto)))

	return maintenanceID, nil
}

// validate runs every check that must fail before anything is persisted:
// category/pallet exclusivity, structural checks on child entries and all
// base64 decoding.
func (s *MaintenanceService) validate(req *CreateMaintenanceRequest) (*decodedSubmission, error) {
	if !req.Kategori.Valid() {
		return nil, validationError("kategori must be indoor or outdoor")
	}
	if req.Kategori == models.CategoryIndoor && req.PaletOutdoor != "" {
		return nil, validationError("palet outdoor should not be uploaded for an indoor category")
	}
	if req.Kategori == models.CategoryOutdoor && req.PaletIndoor != "" {
		return nil, validationError("palet indoor should not be uploaded for an outdoor category")
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, validationError("tanggal must use the yyyy-mm-dd format")
	}

	sub := &decodedSubmission{tanggal: tanggal}

	palletPayload := req.PaletIndoor
	if req.Kategori == models.CategoryOutdoor {
		palletPayload = req.PaletOutdoor
	}
	if palletPayload != "" {
		data, err := base64.StdEncoding.DecodeString(palletPayload)
		if err != nil {
			return nil, validationError("palet photo is not valid base64")
		}
		sub.pallet = data
	}

	for _, entry := range req.HasilPemeriksaan {
		if entry.VariableID == 0 || entry.Nilai == "" {
			return nil, validationError("hasil pemeriksaan entries need a variable and a value")
		}
	}
	for _, entry := range req.HasilPembersihan {
		if entry.VariableID == 0 || entry.Sebelum == nil || entry.Sesudah == nil {
			return nil, validationError("hasil pembersihan entries need a variable and before/after values")
		}
	}
	for _, entry := range req.Foto {
		if entry.Nama == "" || entry.Foto == "" {
			return nil, validationError("foto entries need a name and a payload")
		}
		if !entry.Status.Valid() {
			return nil, validationError("foto status must be sebelum or sesudah")
		}
		data, err := base64.StdEncoding.DecodeString(entry.Foto)
		if err != nil {
			return nil, validationError(fmt.Sprintf("foto %q is not valid base64", entry.Nama))
		}
		sub.photos = append(sub.photos, data)
	}

	return sub, nil
}

// GetByID retrieves one maintenance record with its full closure.
func (s *MaintenanceService) GetByID(id uint) (*models.Maintenance, error) {
	maintenance, err := s.maintenanceRepo.FindByID(id)
	if err != nil {
		if err.Error() == "maintenance not found" {
			return nil, notFoundError(fmt.Sprintf("maintenance with ID %d not found", id))
		}
		return nil, err
	}
	return maintenance, nil
}

// GetAll retrieves every maintenance record, newest first.
func (s *MaintenanceService) GetAll() ([]models.Maintenance, error) {
	return s.maintenanceRepo.FindAll()
}

// GetByProject retrieves a project's maintenance records, optionally
// bounded to an inclusive date range. An unknown project yields an empty
// list, matching the "no visits yet" case.
func (s *MaintenanceService) GetByProject(projectID uint, start, end *time.Time) ([]models.Maintenance, error) {
	return s.maintenanceRepo.FindByProject(projectID, start, end)
}

// CountByProject counts a project's maintenance records under the same
// filter as GetByProject.
func (s *MaintenanceService) CountByProject(projectID uint, start, end *time.Time) (int64, error) {
	return s.maintenanceRepo.CountByProject(projectID, start, end)
}

// PhotoPath resolves a stored photo filename to its on-disk path for
// streaming. Unknown or traversal-shaped names map to ErrNotFound.
func (s *MaintenanceService) PhotoPath(filename string) (string, error) {
	path, err := s.store.Path(filename)
	if err != nil {
		return "", notFoundError(fmt.Sprintf("photo %q not found", filename))
	}
	if _, err := os.Stat(path); err != nil {
		return "", notFoundError(fmt.Sprintf("photo %q not found", filename))
	}
	return path, nil
}

// ParseDateRange parses the optional startDate/endDate query pair. The
// filter only applies when both are present.
func ParseDateRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	if startDate == "" || endDate == "" {
		return nil, nil, nil
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, nil, validationError("startDate must use the yyyy-mm-dd format")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, nil, validationError("endDate must use the yyyy-mm-dd format")
	}
	return &start, &end, nil
}
