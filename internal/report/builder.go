package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/Habiboys/SIMPA/internal/models"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// SummarySheetName is the name of the per-record overview sheet.
const SummarySheetName = "Maintenance Report"

// summaryHeaders is the fixed column set of the summary sheet.
var summaryHeaders = []string{
	"No", "Tanggal", "Gedung", "Ruangan", "Merek", "Model",
	"Detail Model", "Seri Unit", "Nama Pemeriksaan", "Kategori",
}

const (
	placeholder = "N/A"
	dateLayout  = "02/01/2006"
	// imageRows is how many rows an embedded photo block occupies.
	imageRows = 4
	// detailCols is the column count of a detail block (A..D).
	detailCols = 4
)

// ImageSource resolves stored photo filenames to readable paths.
type ImageSource interface {
	Path(filename string) (string, error)
}

// Period is the optional inclusive date range a report was filtered to,
// kept as the caller's raw yyyy-mm-dd strings for display.
type Period struct {
	Start string
	End   string
}

// Builder renders a set of fully-loaded maintenance records into a
// multi-sheet workbook: one summary sheet plus one detail sheet per
// building. Missing image files are skipped, never fatal.
type Builder struct {
	images ImageSource
	logger *zap.Logger
}

func NewBuilder(images ImageSource, logger *zap.Logger) *Builder {
	return &Builder{
		images: images,
		logger: logger,
	}
}

type styleSet struct {
	title         int
	subtitle      int
	summaryHeader int
	blockHeader   int
	sectionHeader int
	tableHeader   int
	cell          int
	border        int
}

// Build renders the workbook. Records are emitted in input order on the
// summary sheet and grouped by building, in first-seen order, on the
// detail sheets.
func (b *Builder) Build(records []models.Maintenance, period *Period) (*excelize.File, error) {
	f := excelize.NewFile()

	styles, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create styles: %w", err)
	}

	if err := b.buildSummary(f, records, period, styles); err != nil {
		f.Close()
		return nil, err
	}

	for _, group := range groupByBuilding(records) {
		if err := b.buildDetailSheet(f, group, styles); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func newStyles(f *excelize.File) (*styleSet, error) {
	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: center,
	})
	if err != nil {
		return nil, err
	}
	subtitle, err := f.NewStyle(&excelize.Style{Alignment: center})
	if err != nil {
		return nil, err
	}
	summaryHeader, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: center,
	})
	if err != nil {
		return nil, err
	}
	blockHeader, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return nil, err
	}
	sectionHeader, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return nil, err
	}
	tableHeader, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return nil, err
	}
	cell, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
		Border:    thin,
	})
	if err != nil {
		return nil, err
	}
	border, err := f.NewStyle(&excelize.Style{Border: thin})
	if err != nil {
		return nil, err
	}

	return &styleSet{
		title:         title,
		subtitle:      subtitle,
		summaryHeader: summaryHeader,
		blockHeader:   blockHeader,
		sectionHeader: sectionHeader,
		tableHeader:   tableHeader,
		cell:          cell,
		border:        border,
	}, nil
}

func (b *Builder) buildSummary(f *excelize.File, records []models.Maintenance, period *Period, styles *styleSet) error {
	if err := f.SetSheetName("Sheet1", SummarySheetName); err != nil {
		return err
	}

	cur := NewCursor()
	lastCol := len(summaryHeaders)

	if err := f.MergeCell(SummarySheetName, cur.Cell(1), cur.Cell(lastCol)); err != nil {
		return err
	}
	f.SetCellValue(SummarySheetName, cur.Cell(1), "Maintenance Report")
	f.SetCellStyle(SummarySheetName, cur.Cell(1), cur.Cell(lastCol), styles.title)
	cur.Advance(1)

	if period != nil {
		if err := f.MergeCell(SummarySheetName, cur.Cell(1), cur.Cell(lastCol)); err != nil {
			return err
		}
		f.SetCellValue(SummarySheetName, cur.Cell(1), fmt.Sprintf("Period: %s to %s", period.Start, period.End))
		f.SetCellStyle(SummarySheetName, cur.Cell(1), cur.Cell(lastCol), styles.subtitle)
		cur.Advance(1)
	}

	header := make([]interface{}, len(summaryHeaders))
	for i, h := range summaryHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(SummarySheetName, cur.Cell(1), &header); err != nil {
		return err
	}
	f.SetCellStyle(SummarySheetName, cur.Cell(1), cur.Cell(lastCol), styles.summaryHeader)
	cur.Advance(1)

	for i, m := range records {
		row := []interface{}{
			i + 1,
			m.Tanggal.Format(dateLayout),
			buildingName(&m),
			roomName(&m),
			brandName(&m),
			modelName(&m),
			variantName(&m),
			orPlaceholder(unitSerial(&m)),
			orPlaceholder(m.NamaPemeriksaan),
			variantCategory(&m),
		}
		if err := f.SetSheetRow(SummarySheetName, cur.Cell(1), &row); err != nil {
			return err
		}
		cur.Advance(1)
	}

	endCol, _ := excelize.ColumnNumberToName(lastCol)
	return f.SetColWidth(SummarySheetName, "A", endCol, 15)
}

type buildingGroup struct {
	id      uint
	nama    string
	records []models.Maintenance
}

// groupByBuilding buckets records by their building, preserving the order
// buildings first appear in. Records without a resolvable building are
// left out; they still show up on the summary sheet.
func groupByBuilding(records []models.Maintenance) []buildingGroup {
	index := map[uint]int{}
	var groups []buildingGroup
	for _, m := range records {
		gedung := recordBuilding(&m)
		if gedung == nil {
			continue
		}
		i, ok := index[gedung.ID]
		if !ok {
			i = len(groups)
			index[gedung.ID] = i
			groups = append(groups, buildingGroup{id: gedung.ID, nama: gedung.Nama})
		}
		groups[i].records = append(groups[i].records, m)
	}
	return groups
}

func (b *Builder) buildDetailSheet(f *excelize.File, group buildingGroup, styles *styleSet) error {
	sheet := sheetName("Detail - " + group.nama)
	// Identically-named buildings collide; the first sheet wins.
	if idx, err := f.GetSheetIndex(sheet); err == nil && idx != -1 {
		b.logger.Warn("skipping duplicate detail sheet",
			zap.String("sheet", sheet),
			zap.Uint("gedung_id", group.id))
		return nil
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	f.SetColWidth(sheet, "A", "A", 5)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "D", 15)

	cur := NewCursor()
	for i := range group.records {
		start := cur.Row()
		if err := b.writeDetailBlock(f, sheet, &group.records[i], cur, styles); err != nil {
			return err
		}
		b.borderBlock(f, sheet, start, cur.Row()-1, styles)
		// Space between maintenance records
		cur.Advance(4)
	}
	return nil
}

// borderBlock closes the enclosure around one record's detail block:
// every cell the block left unstyled, image and spacer rows included,
// gets the plain thin border. Styled cells already carry it.
func (b *Builder) borderBlock(f *excelize.File, sheet string, startRow, endRow int, styles *styleSet) {
	for row := startRow; row <= endRow; row++ {
		for col := 1; col <= detailCols; col++ {
			cell := CellAt(col, row)
			if id, err := f.GetCellStyle(sheet, cell); err != nil || id != 0 {
				continue
			}
			f.SetCellStyle(sheet, cell, cell, styles.border)
		}
	}
}

func (b *Builder) writeDetailBlock(f *excelize.File, sheet string, m *models.Maintenance, cur *Cursor, styles *styleSet) error {
	if err := b.mergedLine(f, sheet, cur, "Detail Pemeriksaan", styles.blockHeader); err != nil {
		return err
	}
	cur.Advance(1)

	unitInfo := strings.Join([]string{
		"Tanggal: " + m.Tanggal.Format(dateLayout),
		"Ruangan: " + roomName(m),
		fmt.Sprintf("Model: %s - %s", variantName(m), orPlaceholder(unitSerial(m))),
		"Kategori: " + variantCategory(m),
	}, " | ")
	if err := b.mergedLine(f, sheet, cur, unitInfo, styles.sectionHeader); err != nil {
		return err
	}
	cur.Advance(2)

	if len(m.HasilPemeriksaan) > 0 {
		if err := b.mergedLine(f, sheet, cur, "Hasil Pemeriksaan", styles.sectionHeader); err != nil {
			return err
		}
		cur.Advance(1)
		b.tableRow(f, sheet, cur, styles.tableHeader, "No", "Jenis Pemeriksaan", "Nilai", "")
		cur.Advance(1)
		for i, hp := range m.HasilPemeriksaan {
			nama := placeholder
			if hp.VariablePemeriksaan != nil {
				nama = hp.VariablePemeriksaan.NamaVariable
			}
			b.tableRow(f, sheet, cur, styles.cell, i+1, nama, orPlaceholder(hp.Nilai), "")
			cur.Advance(1)
		}
		cur.Advance(1)
	}

	if len(m.HasilPembersihan) > 0 {
		if err := b.mergedLine(f, sheet, cur, "Hasil Pembersihan", styles.sectionHeader); err != nil {
			return err
		}
		cur.Advance(1)
		b.tableRow(f, sheet, cur, styles.tableHeader, "No", "Jenis Pembersihan", "Sebelum", "Sesudah")
		cur.Advance(1)
		for i, hp := range m.HasilPembersihan {
			nama := placeholder
			if hp.VariablePembersihan != nil {
				nama = hp.VariablePembersihan.NamaVariable
			}
			b.tableRow(f, sheet, cur, styles.cell, i+1, nama, hp.Sebelum, hp.Sesudah)
			cur.Advance(1)
		}
		cur.Advance(1)
	}

	if err := b.writePalletBlock(f, sheet, m, cur, styles); err != nil {
		return err
	}

	return b.writePhotoBlock(f, sheet, m, cur, styles)
}

func (b *Builder) writePalletBlock(f *excelize.File, sheet string, m *models.Maintenance, cur *Cursor, styles *styleSet) error {
	pallet := m.PaletIndoor
	label := "Foto Palet Indoor"
	if m.Kategori == models.CategoryOutdoor {
		pallet = m.PaletOutdoor
		label = "Foto Palet Outdoor"
	}
	if pallet == "" {
		return nil
	}

	if err := b.mergedLine(f, sheet, cur, "Foto Palet Unit", styles.sectionHeader); err != nil {
		return err
	}
	cur.Advance(1)
	b.tableRow(f, sheet, cur, styles.tableHeader, "No", label, "", "")
	cur.Advance(1)
	b.tableRow(f, sheet, cur, styles.cell, 1, "", "", "")
	b.addImage(f, sheet, cur.Cell(2), pallet, m.ID)
	cur.Advance(1)
	// Room for the embedded image plus a separating row
	cur.Advance(imageRows + 1)
	return nil
}

func (b *Builder) writePhotoBlock(f *excelize.File, sheet string, m *models.Maintenance, cur *Cursor, styles *styleSet) error {
	if len(m.Foto) == 0 {
		return nil
	}

	if err := b.mergedLine(f, sheet, cur, "Dokumentasi Foto", styles.sectionHeader); err != nil {
		return err
	}
	cur.Advance(1)
	b.tableRow(f, sheet, cur, styles.tableHeader, "No", "Foto Sebelum", "Foto Sesudah", "")
	cur.Advance(1)

	// Photos pair positionally: the i-th "sebelum" sits next to the i-th
	// "sesudah"; the shorter side stays blank.
	var sebelum, sesudah []models.Photo
	for _, foto := range m.Foto {
		switch foto.Status {
		case models.PhotoSebelum:
			sebelum = append(sebelum, foto)
		case models.PhotoSesudah:
			sesudah = append(sesudah, foto)
		}
	}

	pairs := len(sebelum)
	if len(sesudah) > pairs {
		pairs = len(sesudah)
	}
	for i := 0; i < pairs; i++ {
		b.tableRow(f, sheet, cur, styles.cell, i+1, "", "", "")
		imageRow := cur.Row()
		cur.Advance(1)

		namaSebelum, namaSesudah := "", ""
		if i < len(sebelum) {
			namaSebelum = sebelum[i].Nama
		}
		if i < len(sesudah) {
			namaSesudah = sesudah[i].Nama
		}
		if namaSebelum != "" || namaSesudah != "" {
			b.tableRow(f, sheet, cur, styles.cell, "", namaSebelum, namaSesudah, "")
			cur.Advance(1)
		}

		if i < len(sebelum) {
			b.addImage(f, sheet, CellAt(2, imageRow), sebelum[i].Foto, m.ID)
		}
		if i < len(sesudah) {
			b.addImage(f, sheet, CellAt(3, imageRow), sesudah[i].Foto, m.ID)
		}
		cur.Advance(imageRows)
	}
	return nil
}

// mergedLine writes a value merged across the detail block columns on the
// cursor's current row.
func (b *Builder) mergedLine(f *excelize.File, sheet string, cur *Cursor, value string, style int) error {
	if err := f.MergeCell(sheet, cur.Cell(1), cur.Cell(detailCols)); err != nil {
		return err
	}
	f.SetCellValue(sheet, cur.Cell(1), value)
	f.SetCellStyle(sheet, cur.Cell(1), cur.Cell(detailCols), style)
	return nil
}

func (b *Builder) tableRow(f *excelize.File, sheet string, cur *Cursor, style int, values ...interface{}) {
	f.SetSheetRow(sheet, cur.Cell(1), &values)
	f.SetCellStyle(sheet, cur.Cell(1), cur.Cell(detailCols), style)
}

// addImage embeds a stored photo at the given anchor cell. A missing or
// unreadable file is logged and skipped; the report is still produced.
func (b *Builder) addImage(f *excelize.File, sheet, cell, filename string, maintenanceID uint) {
	path, err := b.images.Path(filename)
	if err == nil {
		if _, statErr := os.Stat(path); statErr != nil {
			err = statErr
		}
	}
	if err == nil {
		err = f.AddPicture(sheet, cell, path, &excelize.GraphicOptions{AutoFit: true})
	}
	if err != nil {
		b.logger.Warn("skipping report image",
			zap.String("foto", filename),
			zap.Uint("maintenance_id", maintenanceID),
			zap.Error(err))
	}
}

// sheetName trims a candidate name to the 31-character sheet limit and
// strips characters Excel forbids.
func sheetName(name string) string {
	replacer := strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "")
	name = replacer.Replace(name)
	runes := []rune(name)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}

func recordBuilding(m *models.Maintenance) *models.Building {
	if m.Unit == nil || m.Unit.Ruangan == nil {
		return nil
	}
	return m.Unit.Ruangan.Gedung
}

func buildingName(m *models.Maintenance) string {
	if gedung := recordBuilding(m); gedung != nil {
		return orPlaceholder(gedung.Nama)
	}
	return placeholder
}

func roomName(m *models.Maintenance) string {
	if m.Unit != nil && m.Unit.Ruangan != nil {
		return orPlaceholder(m.Unit.Ruangan.Nama)
	}
	return placeholder
}

func brandName(m *models.Maintenance) string {
	if m.Unit != nil && m.Unit.DetailModel != nil &&
		m.Unit.DetailModel.JenisModel != nil && m.Unit.DetailModel.JenisModel.Merek != nil {
		return orPlaceholder(m.Unit.DetailModel.JenisModel.Merek.Nama)
	}
	return placeholder
}

func modelName(m *models.Maintenance) string {
	if m.Unit != nil && m.Unit.DetailModel != nil && m.Unit.DetailModel.JenisModel != nil {
		return orPlaceholder(m.Unit.DetailModel.JenisModel.NamaModel)
	}
	return placeholder
}

func variantName(m *models.Maintenance) string {
	if m.Unit != nil && m.Unit.DetailModel != nil {
		return orPlaceholder(m.Unit.DetailModel.NamaModel)
	}
	return placeholder
}

func variantCategory(m *models.Maintenance) string {
	if m.Unit != nil && m.Unit.DetailModel != nil && m.Unit.DetailModel.Kategori != "" {
		return string(m.Unit.DetailModel.Kategori)
	}
	return placeholder
}

func unitSerial(m *models.Maintenance) string {
	if m.Unit != nil {
		return m.Unit.NomorSeri
	}
	return ""
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
