package report

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Habiboys/SIMPA/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeImages resolves filenames it knows about and fails the rest.
type fakeImages struct {
	paths map[string]string
}

func (f *fakeImages) Path(filename string) (string, error) {
	path, ok := f.paths[filename]
	if !ok {
		return "", fmt.Errorf("unknown file %s", filename)
	}
	return path, nil
}

func noImages() *fakeImages {
	return &fakeImages{paths: map[string]string{}}
}

func testBuilder(images ImageSource) *Builder {
	return NewBuilder(images, zap.NewNop())
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", "2025-03-20")
	require.NoError(t, err)
	return d
}

func fullRecord(t *testing.T, gedungID uint, gedungNama string) models.Maintenance {
	t.Helper()
	return models.Maintenance{
		ID:              1,
		Tanggal:         testDate(t),
		NamaPemeriksaan: "Pemeriksaan Rutin",
		Kategori:        models.CategoryIndoor,
		Unit: &models.Unit{
			Nama:      "AC-01",
			NomorSeri: "SN-001",
			Ruangan: &models.Room{
				Nama: "Server Room",
				Gedung: &models.Building{
					ID:   gedungID,
					Nama: gedungNama,
					Proyek: &models.Project{
						Nama: "Gedung Sate",
					},
				},
			},
			DetailModel: &models.ModelVariant{
				NamaModel: "Indoor Cassette",
				Kategori:  models.CategoryIndoor,
				JenisModel: &models.Model{
					NamaModel: "VRV X",
					Merek: &models.Brand{
						Nama: "Daikin",
					},
				},
			},
		},
	}
}

func TestBuildSummarySheet(t *testing.T) {
	records := []models.Maintenance{fullRecord(t, 1, "Tower A")}

	f, err := testBuilder(noImages()).Build(records, nil)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), SummarySheetName)

	title, _ := f.GetCellValue(SummarySheetName, "A1")
	assert.Equal(t, "Maintenance Report", title)

	first, _ := f.GetCellValue(SummarySheetName, "A2")
	assert.Equal(t, "No", first)
	last, _ := f.GetCellValue(SummarySheetName, "J2")
	assert.Equal(t, "Kategori", last)

	expected := map[string]string{
		"A3": "1",
		"B3": "20/03/2025",
		"C3": "Tower A",
		"D3": "Server Room",
		"E3": "Daikin",
		"F3": "VRV X",
		"G3": "Indoor Cassette",
		"H3": "SN-001",
		"I3": "Pemeriksaan Rutin",
		"J3": "indoor",
	}
	for cell, want := range expected {
		got, _ := f.GetCellValue(SummarySheetName, cell)
		assert.Equal(t, want, got, "cell %s", cell)
	}
}

func TestBuildSummaryPeriodLine(t *testing.T) {
	records := []models.Maintenance{fullRecord(t, 1, "Tower A")}
	period := &Period{Start: "2025-01-01", End: "2025-06-30"}

	f, err := testBuilder(noImages()).Build(records, period)
	require.NoError(t, err)
	defer f.Close()

	line, _ := f.GetCellValue(SummarySheetName, "A2")
	assert.Equal(t, "Period: 2025-01-01 to 2025-06-30", line)

	header, _ := f.GetCellValue(SummarySheetName, "A3")
	assert.Equal(t, "No", header)
	no, _ := f.GetCellValue(SummarySheetName, "A4")
	assert.Equal(t, "1", no)
}

func TestBuildOneDetailSheetPerBuilding(t *testing.T) {
	records := []models.Maintenance{
		fullRecord(t, 1, "Tower A"),
		fullRecord(t, 2, "Tower B"),
		fullRecord(t, 1, "Tower A"),
	}

	f, err := testBuilder(noImages()).Build(records, nil)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Detail - Tower A")
	assert.Contains(t, sheets, "Detail - Tower B")
	assert.Len(t, sheets, 3)
}

func TestBuildEmptyRecords(t *testing.T) {
	f, err := testBuilder(noImages()).Build(nil, nil)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheetName}, f.GetSheetList())

	header, _ := f.GetCellValue(SummarySheetName, "A2")
	assert.Equal(t, "No", header)
	empty, _ := f.GetCellValue(SummarySheetName, "A3")
	assert.Empty(t, empty)
}

func TestBuildMissingClosurePlaceholders(t *testing.T) {
	records := []models.Maintenance{
		{
			ID:       7,
			Tanggal:  testDate(t),
			Kategori: models.CategoryOutdoor,
		},
	}

	f, err := testBuilder(noImages()).Build(records, nil)
	require.NoError(t, err)
	defer f.Close()

	// The record still appears on the summary, padded with placeholders,
	// but there is no building to hang a detail sheet on.
	assert.Equal(t, []string{SummarySheetName}, f.GetSheetList())

	for _, cell := range []string{"C3", "D3", "E3", "F3", "G3", "H3", "I3", "J3"} {
		got, _ := f.GetCellValue(SummarySheetName, cell)
		assert.Equal(t, "N/A", got, "cell %s", cell)
	}
}

func TestDetailBlockLayout(t *testing.T) {
	record := fullRecord(t, 1, "Tower A")
	record.PaletIndoor = "palet.jpg"
	record.HasilPemeriksaan = []models.InspectionResult{
		{
			Nilai:               "Baik",
			VariablePemeriksaan: &models.InspectionVariable{NamaVariable: "Kondisi Filter"},
		},
		{
			Nilai:               "Normal",
			VariablePemeriksaan: &models.InspectionVariable{NamaVariable: "Tekanan Freon"},
		},
	}
	record.HasilPembersihan = []models.CleaningResult{
		{
			Sebelum:             5.5,
			Sesudah:             2.1,
			VariablePembersihan: &models.CleaningVariable{NamaVariable: "Arus Kompresor"},
		},
	}

	f, err := testBuilder(noImages()).Build([]models.Maintenance{record}, nil)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Detail - Tower A"
	expected := map[string]string{
		"A1":  "Detail Pemeriksaan",
		"A2":  "Tanggal: 20/03/2025 | Ruangan: Server Room | Model: Indoor Cassette - SN-001 | Kategori: indoor",
		"A4":  "Hasil Pemeriksaan",
		"B5":  "Jenis Pemeriksaan",
		"B6":  "Kondisi Filter",
		"C6":  "Baik",
		"B7":  "Tekanan Freon",
		"A9":  "Hasil Pembersihan",
		"C10": "Sebelum",
		"B11": "Arus Kompresor",
		"C11": "5.5",
		"D11": "2.1",
		"A13": "Foto Palet Unit",
		"B14": "Foto Palet Indoor",
	}
	for cell, want := range expected {
		got, _ := f.GetCellValue(sheet, cell)
		assert.Equal(t, want, got, "cell %s", cell)
	}
}

func TestPhotoPairingUnevenSides(t *testing.T) {
	record := fullRecord(t, 1, "Tower A")
	record.Foto = []models.Photo{
		{Nama: "before-1", Foto: "b1.jpg", Status: models.PhotoSebelum},
		{Nama: "before-2", Foto: "b2.jpg", Status: models.PhotoSebelum},
		{Nama: "before-3", Foto: "b3.jpg", Status: models.PhotoSebelum},
		{Nama: "after-1", Foto: "a1.jpg", Status: models.PhotoSesudah},
	}

	f, err := testBuilder(noImages()).Build([]models.Maintenance{record}, nil)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Detail - Tower A"

	// Block: header row 1, unit info row 2, photo section from row 4.
	// Each pair takes a numbered row, a names row and four image rows.
	expected := map[string]string{
		"A4":  "Dokumentasi Foto",
		"B5":  "Foto Sebelum",
		"C5":  "Foto Sesudah",
		"A6":  "1",
		"B7":  "before-1",
		"C7":  "after-1",
		"A12": "2",
		"B13": "before-2",
		"C13": "",
		"A18": "3",
		"B19": "before-3",
	}
	for cell, want := range expected {
		got, _ := f.GetCellValue(sheet, cell)
		assert.Equal(t, want, got, "cell %s", cell)
	}
}

func TestDetailBlockBorderCoversImageRows(t *testing.T) {
	record := fullRecord(t, 1, "Tower A")
	record.Foto = []models.Photo{
		{Nama: "before", Foto: "b1.jpg", Status: models.PhotoSebelum},
	}

	f, err := testBuilder(noImages()).Build([]models.Maintenance{record}, nil)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Detail - Tower A"

	// The blank row under the unit info line and the four rows reserved
	// for the embedded photo carry the block border like every other row.
	for _, cell := range []string{"A3", "C3", "A8", "B9", "C10", "D11"} {
		id, err := f.GetCellStyle(sheet, cell)
		require.NoError(t, err)
		require.NotZero(t, id, "cell %s has no style", cell)

		style, err := f.GetStyle(id)
		require.NoError(t, err)
		assert.Len(t, style.Border, 4, "cell %s has no border", cell)
	}
}

func TestDuplicateBuildingNamesFirstSheetWins(t *testing.T) {
	first := fullRecord(t, 1, "Tower X")
	second := fullRecord(t, 2, "Tower X")
	second.Unit.Ruangan.Nama = "Second Room"

	f, err := testBuilder(noImages()).Build([]models.Maintenance{first, second}, nil)
	require.NoError(t, err)
	defer f.Close()

	// One detail sheet; the later namesake building is dropped, not
	// overlaid onto the first sheet's rows.
	assert.Len(t, f.GetSheetList(), 2)

	info, _ := f.GetCellValue("Detail - Tower X", "A2")
	assert.Contains(t, info, "Server Room")
	assert.NotContains(t, info, "Second Room")
}

func TestMissingImagesAreSkipped(t *testing.T) {
	record := fullRecord(t, 1, "Tower A")
	record.PaletIndoor = "gone.jpg"
	record.Foto = []models.Photo{
		{Nama: "before", Foto: "also-gone.jpg", Status: models.PhotoSebelum},
	}

	f, err := testBuilder(noImages()).Build([]models.Maintenance{record}, nil)
	require.NoError(t, err)
	defer f.Close()

	// Pallet image row and the first documentation image row stay empty.
	for _, cell := range []string{"B6", "B14"} {
		pics, err := f.GetPictures("Detail - Tower A", cell)
		require.NoError(t, err)
		assert.Empty(t, pics, "cell %s", cell)
	}
}

func TestEmbedsExistingImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palet.png")
	writeTestPNG(t, path)

	images := &fakeImages{paths: map[string]string{"palet.png": path}}

	record := fullRecord(t, 1, "Tower A")
	record.PaletIndoor = "palet.png"

	f, err := testBuilder(images).Build([]models.Maintenance{record}, nil)
	require.NoError(t, err)
	defer f.Close()

	// Pallet block: header row 1, info row 2, section row 4, label row 5,
	// numbered image row 6 with the picture anchored at column B.
	pics, err := f.GetPictures("Detail - Tower A", "B6")
	require.NoError(t, err)
	assert.Len(t, pics, 1)
}

func TestSheetNameSanitized(t *testing.T) {
	assert.Equal(t, "Detail - Blok AB", sheetName("Detail - Blok A/B"))

	long := sheetName("Detail - Gedung Administrasi Pusat Lantai 3")
	assert.LessOrEqual(t, len([]rune(long)), 31)
}

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))))
}
