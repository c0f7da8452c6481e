package excel

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
)

// LoadError Sumber tidak terbaca atau kosong.
// Tidak fatal: pemanggil menurunkan ke dataset kosong dan memberi tahu pengguna.
type LoadError struct {
	Cause error
}

func (e *LoadError) Error() string {
	return "gagal memuat berkas: " + e.Cause.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

var errEmptySource = errors.New("data kosong atau tidak terbaca")

// LoadFile Memuat workbook dari jalur bawaan
func LoadFile(path, sheet string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return emptyDataset(path), &LoadError{Cause: err}
	}
	defer f.Close()

	ds, err := Load(f, sheet)
	if ds != nil {
		ds.SourceName = path
	}
	return ds, err
}

// Load Memuat workbook dari reader (unggahan pengguna).
// sheet kosong -> sheet pertama. Gagal parse atau tanpa baris data ->
// LoadError dengan dataset kosong, bukan nil.
func Load(reader io.Reader, sheet string) (*model.Dataset, error) {
	wb, err := excelize.OpenReader(reader)
	if err != nil {
		return emptyDataset(sheet), &LoadError{Cause: err}
	}
	defer wb.Close()

	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return emptyDataset(sheet), &LoadError{Cause: errEmptySource}
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return emptyDataset(sheet), &LoadError{Cause: err}
	}
	if len(rows) <= 1 {
		return emptyDataset(sheet), &LoadError{Cause: errEmptySource}
	}

	return Normalize(rows, sheet), nil
}

// Normalize Membangun dataset ternormalisasi dari baris mentah.
// Baris pertama adalah header; nama kolom di-trim, duplikat baris penuh
// dibuang, koersi tipe tidak pernah menggagalkan baris.
func Normalize(rows [][]string, sheet string) *model.Dataset {
	header := rows[0]
	columns := make([]string, len(header))
	for i, c := range header {
		columns[i] = strings.TrimSpace(c)
	}

	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		// Kolom duplikat: indeks pertama yang menang
		if _, ok := colIndex[c]; !ok {
			colIndex[c] = i
		}
	}

	ds := &model.Dataset{
		ID:        uuid.New().String(),
		SheetName: sheet,
		Columns:   columns,
		LoadedAt:  time.Now(),
	}

	seen := make(map[string]struct{}, len(rows)-1)
	for _, row := range rows[1:] {
		key := dedupKey(row, len(columns))
		if _, dup := seen[key]; dup {
			ds.DuplicatesRemoved++
			continue
		}
		seen[key] = struct{}{}

		ds.Records = append(ds.Records, normalizeRow(row, columns, colIndex))
	}

	return ds
}

func emptyDataset(source string) *model.Dataset {
	return &model.Dataset{
		ID:         uuid.New().String(),
		SourceName: source,
		LoadedAt:   time.Now(),
	}
}

// dedupKey Kunci kesamaan baris penuh lintas seluruh kolom asli
func dedupKey(row []string, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		if i < len(row) {
			b.WriteString(strings.TrimSpace(row[i]))
		}
	}
	return b.String()
}

func normalizeRow(row []string, columns []string, colIndex map[string]int) *model.Record {
	getValue := func(field string) string {
		if idx, ok := colIndex[field]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	cells := make(map[string]string, len(columns))
	for _, c := range columns {
		cells[c] = getValue(c)
	}

	r := &model.Record{
		Cells: cells,
		Title: getValue(model.ColTitle),

		Kind:        normalizeText(getValue(model.ColKind)),
		Form:        normalizeText(getValue(model.ColForm)),
		AdminOrg:    normalizeText(getValue(model.ColAdminOrg)),
		MainAffair:  normalizeText(getValue(model.ColMainAffair)),
		OtherAffair: normalizeText(getValue(model.ColOtherAffair)),
		AstaCipta:   normalizeText(getValue(model.ColAstaCipta)),
		RegionRaw:   normalizeText(getValue(model.ColRegion)),
		Stage:       normalizeText(getValue(model.ColStage)),
		Description: normalizeText(getValue(model.ColDescription)),
		VideoLink:   normalizeText(getValue(model.ColVideoLink)),

		Maturity: parseNullableFloat(getValue(model.ColMaturity)),

		InputDate:       parseDayFirstDate(getValue(model.ColInputDate)),
		ApplicationDate: parseDayFirstDate(getValue(model.ColApplyDate)),
		DevelopmentDate: parseDayFirstDate(getValue(model.ColDevelopDate)),
	}

	// Koordinat gabungan "lat,lon" dibelah sekali pada koma pertama;
	// tiap sisi dikoersi sendiri-sendiri. Tanpa kolom gabungan, pakai
	// kolom lat/lon langsung bila ada.
	if _, ok := colIndex[model.ColCoordinate]; ok {
		lat, lon := splitCoordinate(getValue(model.ColCoordinate))
		r.Latitude = lat
		r.Longitude = lon
	} else {
		r.Latitude = parseNullableFloat(getValue(model.ColLatitude))
		r.Longitude = parseNullableFloat(getValue(model.ColLongitude))
	}

	return r
}

// splitCoordinate "lat,lon" -> kedua sisi dikoersi numerik secara independen
func splitCoordinate(s string) (*float64, *float64) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) < 2 {
		return parseNullableFloat(strings.TrimSpace(s)), nil
	}
	return parseNullableFloat(strings.TrimSpace(parts[0])),
		parseNullableFloat(strings.TrimSpace(parts[1]))
}
