package model

import "time"

// Nama kolom sumber yang dikenali pipeline.
// Pencocokan nama kolom bersifat case-sensitive setelah trim.
const (
	ColTitle          = "Judul Inovasi"
	ColKind           = "Jenis"
	ColForm           = "Bentuk Inovasi"
	ColAdminOrg       = "Admin OPD"
	ColOrgCategory    = "Kategori Admin OPD"
	ColMainAffair     = "Urusan Utama"
	ColOtherAffair    = "Urusan lain yang beririsan"
	ColAstaCipta      = "Asta Cipta"
	ColRegion         = "Daerah"
	ColMaturity       = "Kematangan"
	ColStage          = "Tahapan Inovasi"
	ColDescription    = "Deskripsi"
	ColVideoLink      = "Link Video"
	ColCoordinate     = "Koordinat"
	ColLatitude       = "lat"
	ColLongitude      = "lon"
	ColInputDate      = "Tanggal Input"
	ColApplyDate      = "Tanggal Penerapan"
	ColDevelopDate    = "Tanggal Pengembangan"
)

// Nama kolom hasil derivasi (tidak ada di sumber).
const (
	ColOrgGroup     = "Admin OPD Grouped"
	ColOrgShortName = "Nama Pendek OPD"
	ColRegionFound  = "Daerah (hasil identifikasi)"
)

// Record Satu baris inovasi setelah normalisasi dan derivasi.
// Field bertipe pointer bernilai nil bila kolom sumber tidak ada
// atau nilainya gagal dikoersi.
type Record struct {
	// Cells menyimpan seluruh sel asli (sudah di-trim) per nama kolom,
	// dipakai untuk ekspor dan popup peta.
	Cells map[string]string `json:"-"`

	Title       string  `json:"title"`
	Kind        *string `json:"kind"`
	Form        *string `json:"form"`
	AdminOrg    *string `json:"adminOrg"`
	MainAffair  *string `json:"mainAffair"`
	OtherAffair *string `json:"otherAffair"`
	AstaCipta   *string `json:"astaCipta"`
	RegionRaw   *string `json:"regionRaw"`
	Stage       *string `json:"stage"`
	Description *string `json:"description"`
	VideoLink   *string `json:"videoLink"`

	Maturity  *float64 `json:"maturity"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	InputDate       *time.Time `json:"inputDate"`
	ApplicationDate *time.Time `json:"applicationDate"`
	DevelopmentDate *time.Time `json:"developmentDate"`

	// Hasil derivasi. OrgGroup dan OrgCategory sengaja dihitung oleh dua
	// aturan berbeda di atas kolom Admin OPD yang sama; keduanya boleh
	// tidak sepakat untuk baris yang sama.
	OrgGroup     string  `json:"orgGroup"`
	OrgCategory  string  `json:"orgCategory"`
	OrgShortName string  `json:"orgShortName"`
	Region       *string `json:"region"`
}

// HasCoordinate Baris punya koordinat valid
func (r *Record) HasCoordinate() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Cell Nilai sel asli per nama kolom, "" bila tidak ada
func (r *Record) Cell(col string) string {
	if r.Cells == nil {
		return ""
	}
	return r.Cells[col]
}

// Dataset Koleksi record hasil pipeline untuk satu sumber.
// Immutable setelah dibangun; konsumen hanya membaca.
type Dataset struct {
	ID                string    `json:"id"`
	SourceHash        string    `json:"sourceHash"`
	SourceName        string    `json:"sourceName"`
	SheetName         string    `json:"sheetName"`
	Columns           []string  `json:"columns"`
	Records           []*Record `json:"-"`
	DuplicatesRemoved int       `json:"duplicatesRemoved"`
	LoadedAt          time.Time `json:"loadedAt"`
}

// Empty Dataset kosong (sumber gagal dibaca atau tanpa baris)
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Records) == 0
}

// HasColumn Kolom sumber tersedia di dataset
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}
