package service

import (
	"fmt"
	"time"

	"github.com/Habiboys/SIMPA/internal/report"
	"github.com/Habiboys/SIMPA/internal/repository"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportService struct {
	maintenanceRepo *repository.MaintenanceRepository
	builder         *report.Builder
	logger          *zap.Logger
}

func NewReportService(maintenanceRepo *repository.MaintenanceRepository, builder *report.Builder, logger *zap.Logger) *ReportService {
	return &ReportService{
		maintenanceRepo: maintenanceRepo,
		builder:         builder,
		logger:          logger,
	}
}

// ExportProject renders a project's maintenance history, optionally
// filtered to a date range, into a workbook plus a suggested download
// filename. A project with no matching records still yields a valid
// workbook holding only the summary sheet.
func (s *ReportService) ExportProject(projectID uint, start, end *time.Time, startDate, endDate string) (*excelize.File, string, error) {
	records, err := s.maintenanceRepo.FindByProject(projectID, start, end)
	if err != nil {
		return nil, "", err
	}

	var period *report.Period
	if start != nil && end != nil {
		period = &report.Period{Start: startDate, End: endDate}
	}

	f, err := s.builder.Build(records, period)
	if err != nil {
		return nil, "", err
	}

	projectName := "unknown"
	for _, record := range records {
		if record.Unit != nil && record.Unit.Ruangan != nil &&
			record.Unit.Ruangan.Gedung != nil && record.Unit.Ruangan.Gedung.Proyek != nil {
			projectName = record.Unit.Ruangan.Gedung.Proyek.Nama
			break
		}
	}

	filename := fmt.Sprintf("maintenance-report-%s.xlsx", projectName)
	if period != nil {
		filename = fmt.Sprintf("maintenance-report-%s-%s-to-%s.xlsx", projectName, startDate, endDate)
	}

	s.logger.Info("maintenance report generated",
		zap.Uint("project_id", projectID),
		zap.Int("records", len(records)),
		zap.String("filename", filename))

	return f, filename, nil
}
