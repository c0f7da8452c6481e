package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "inovasi.db"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadDatasetEmptyStore(t *testing.T) {
	s := openTestStore(t)

	ds, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if ds != nil {
		t.Fatalf("store kosong harus mengembalikan nil, dapat %+v", ds)
	}
}

func TestSaveAndLoadDatasetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	kind := "Digital"
	maturity := 85.5
	region := "Kota Surabaya"
	input := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	ds := &model.Dataset{
		ID:                "dataset-uji",
		SourceHash:        "abc123",
		SourceName:        "data.xlsx",
		SheetName:         "Sheet1",
		Columns:           []string{"Judul Inovasi", "Jenis"},
		DuplicatesRemoved: 3,
		LoadedAt:          time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		Records: []*model.Record{
			{
				Title:     "Inovasi A",
				Kind:      &kind,
				Maturity:  &maturity,
				InputDate: &input,
				OrgGroup:  "Dinas Kesehatan",
				Region:    &region,
				Cells: map[string]string{
					"Judul Inovasi": "Inovasi A",
					"Jenis":         "Digital",
				},
			},
			{
				Title:    "Inovasi B",
				OrgGroup: "Lainnya",
				Cells:    map[string]string{"Judul Inovasi": "Inovasi B"},
			},
		},
	}

	if err := s.SaveDataset(ds); err != nil {
		t.Fatalf("SaveDataset: %v", err)
	}

	got, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if got == nil {
		t.Fatalf("snapshot hilang setelah disimpan")
	}

	if got.ID != ds.ID || got.SourceHash != ds.SourceHash || got.DuplicatesRemoved != 3 {
		t.Fatalf("meta tidak cocok: %+v", got)
	}
	if len(got.Columns) != 2 || got.Columns[0] != "Judul Inovasi" {
		t.Fatalf("kolom tidak cocok: %v", got.Columns)
	}
	if len(got.Records) != 2 {
		t.Fatalf("jumlah record = %d", len(got.Records))
	}

	a := got.Records[0]
	if a.Title != "Inovasi A" || a.Kind == nil || *a.Kind != "Digital" {
		t.Fatalf("record A tidak cocok: %+v", a)
	}
	if a.Maturity == nil || *a.Maturity != 85.5 {
		t.Fatalf("Maturity A = %v", a.Maturity)
	}
	if a.InputDate == nil || !a.InputDate.Equal(input) {
		t.Fatalf("InputDate A = %v", a.InputDate)
	}
	if a.Region == nil || *a.Region != "Kota Surabaya" {
		t.Fatalf("Region A = %v", a.Region)
	}
	if a.Cells["Jenis"] != "Digital" {
		t.Fatalf("Cells A = %v", a.Cells)
	}

	b := got.Records[1]
	if b.Kind != nil || b.Maturity != nil || b.InputDate != nil {
		t.Fatalf("kolom nil record B harus tetap nil: %+v", b)
	}
}

func TestSaveDatasetReplacesPrevious(t *testing.T) {
	s := openTestStore(t)

	first := &model.Dataset{
		ID:      "lama",
		Columns: []string{"Judul Inovasi"},
		Records: []*model.Record{
			{Title: "X", Cells: map[string]string{"Judul Inovasi": "X"}},
			{Title: "Y", Cells: map[string]string{"Judul Inovasi": "Y"}},
		},
	}
	if err := s.SaveDataset(first); err != nil {
		t.Fatalf("SaveDataset pertama: %v", err)
	}

	second := &model.Dataset{
		ID:      "baru",
		Columns: []string{"Judul Inovasi"},
		Records: []*model.Record{
			{Title: "Z", Cells: map[string]string{"Judul Inovasi": "Z"}},
		},
	}
	if err := s.SaveDataset(second); err != nil {
		t.Fatalf("SaveDataset kedua: %v", err)
	}

	got, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if got.ID != "baru" || len(got.Records) != 1 || got.Records[0].Title != "Z" {
		t.Fatalf("snapshot lama tidak terganti: %+v", got)
	}
}
