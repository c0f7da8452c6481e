package filter_test

import (
	"testing"
	"time"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/filter"
)

func strp(s string) *string     { return &s }
func floatp(f float64) *float64 { return &f }

func sampleRecords() []*model.Record {
	d1 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	return []*model.Record{
		{
			Title: "Inovasi A", Kind: strp("Digital"), Maturity: floatp(90),
			OrgGroup: "Dinas Pendidikan", OrgCategory: "Dinas Pendidikan",
			MainAffair: strp("pendidikan"), AstaCipta: strp("Ekonomi Kreatif"),
			Region: strp("Kota Surabaya"), InputDate: &d1,
		},
		{
			Title: "Inovasi B", Kind: strp("Non Digital"), Maturity: floatp(40),
			OrgGroup: "Dinas Kesehatan", OrgCategory: "Dinas Kesehatan",
			MainAffair: strp("kesehatan"), AstaCipta: strp("Kesehatan Masyarakat"),
			Region: strp("Kota Malang"), InputDate: &d2,
		},
		{
			Title: "Inovasi C", Kind: strp("Digital"), Maturity: nil,
			OrgGroup: "Dinas Kesehatan", OrgCategory: "Dinas Kesehatan",
			MainAffair: strp("kesehatan"), AstaCipta: nil,
			Region: strp("Kota Surabaya"), InputDate: &d1,
		},
	}
}

func TestApplyDefaultFiltersIsIdentity(t *testing.T) {
	records := sampleRecords()
	got := filter.Apply(records, model.DefaultFilters())
	if len(got) != len(records) {
		t.Fatalf("filter bawaan menyaring: %d dari %d", len(got), len(records))
	}
}

func TestApplyProducesSubset(t *testing.T) {
	records := sampleRecords()
	f := model.DefaultFilters()
	f.Kinds = []string{"Digital"}
	f.MinMaturity = 50

	got := filter.Apply(records, f)
	if len(got) != 1 || got[0].Title != "Inovasi A" {
		t.Fatalf("hasil = %d baris, harusnya hanya Inovasi A", len(got))
	}

	base := make(map[*model.Record]bool, len(records))
	for _, r := range records {
		base[r] = true
	}
	for _, r := range got {
		if !base[r] {
			t.Fatalf("hasil berisi baris di luar koleksi dasar")
		}
	}
}

func TestApplyOrderIndependent(t *testing.T) {
	records := sampleRecords()

	kindFirst := model.DefaultFilters()
	kindFirst.Kinds = []string{"Digital"}
	step1 := filter.Apply(records, kindFirst)

	maturityOn := model.DefaultFilters()
	maturityOn.MinMaturity = 50
	kindThenMaturity := filter.Apply(step1, maturityOn)

	step2 := filter.Apply(records, maturityOn)
	maturityThenKind := filter.Apply(step2, kindFirst)

	combined := model.DefaultFilters()
	combined.Kinds = []string{"Digital"}
	combined.MinMaturity = 50
	once := filter.Apply(records, combined)

	if len(kindThenMaturity) != len(once) || len(maturityThenKind) != len(once) {
		t.Fatalf("komposisi tergantung urutan: %d / %d / %d",
			len(kindThenMaturity), len(maturityThenKind), len(once))
	}
	for i := range once {
		if kindThenMaturity[i] != once[i] || maturityThenKind[i] != once[i] {
			t.Fatalf("baris ke-%d berbeda antar urutan penerapan", i)
		}
	}
}

func TestApplyMinMaturityExcludesNull(t *testing.T) {
	f := model.DefaultFilters()
	f.MinMaturity = 10

	got := filter.Apply(sampleRecords(), f)
	for _, r := range got {
		if r.Maturity == nil {
			t.Fatalf("baris dengan Kematangan nil lolos ambang > 0")
		}
	}
	if len(got) != 2 {
		t.Fatalf("hasil = %d baris, harusnya 2", len(got))
	}
}

func TestApplyAllSentinelIsNoop(t *testing.T) {
	records := sampleRecords()
	f := model.DefaultFilters()
	f.Kinds = []string{model.SelectAll}
	f.OrgGroups = []string{model.SelectAll}
	f.Region = model.SelectAll

	got := filter.Apply(records, f)
	if len(got) != len(records) {
		t.Fatalf("sentinel All menyaring: %d dari %d", len(got), len(records))
	}
}

func TestApplySearchOnAstaCipta(t *testing.T) {
	f := model.DefaultFilters()
	f.Search = "ekonomi"

	got := filter.Apply(sampleRecords(), f)
	if len(got) != 1 || got[0].Title != "Inovasi A" {
		t.Fatalf("pencarian asta cipta = %d baris", len(got))
	}
}

func TestApplyRegion(t *testing.T) {
	f := model.DefaultFilters()
	f.Region = "Kota Surabaya"

	got := filter.Apply(sampleRecords(), f)
	if len(got) != 2 {
		t.Fatalf("filter daerah = %d baris, harusnya 2", len(got))
	}
}

func TestMatchKeyword(t *testing.T) {
	r := &model.Record{Cells: map[string]string{
		model.ColTitle:      "Sistem Antrean Puskesmas",
		model.ColMainAffair: "kesehatan",
	}}
	cols := []string{model.ColTitle, model.ColMainAffair}

	if !filter.MatchKeyword(r, cols, "antrean") {
		t.Fatalf("kata kunci pada judul harus cocok")
	}
	if !filter.MatchKeyword(r, cols, "KESEHATAN") {
		t.Fatalf("pencarian harus case-insensitive")
	}
	if filter.MatchKeyword(r, cols, "pendidikan") {
		t.Fatalf("kata kunci tak ada harus gagal cocok")
	}
	if !filter.MatchKeyword(r, cols, "   ") {
		t.Fatalf("kata kunci kosong harus selalu cocok")
	}
}
