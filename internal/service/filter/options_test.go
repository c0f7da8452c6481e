package filter_test

import (
	"testing"
	"time"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/filter"
)

func TestOptionsSortedWithAllSentinel(t *testing.T) {
	ds := &model.Dataset{Records: sampleRecords()}

	opts := filter.Options(ds)

	wantKinds := []string{model.SelectAll, "Digital", "Non Digital"}
	if len(opts.Kinds) != len(wantKinds) {
		t.Fatalf("Kinds = %v", opts.Kinds)
	}
	for i, v := range wantKinds {
		if opts.Kinds[i] != v {
			t.Fatalf("Kinds[%d] = %q, harusnya %q", i, opts.Kinds[i], v)
		}
	}

	wantRegions := []string{model.SelectAll, "Kota Malang", "Kota Surabaya"}
	for i, v := range wantRegions {
		if opts.Regions[i] != v {
			t.Fatalf("Regions[%d] = %q, harusnya %q", i, opts.Regions[i], v)
		}
	}
}

func TestCountByOrdersDescendingWithTiebreak(t *testing.T) {
	counts := filter.CountBy(sampleRecords(), func(r *model.Record) *string {
		return &r.OrgGroup
	})

	if len(counts) != 2 {
		t.Fatalf("jumlah label = %d", len(counts))
	}
	if counts[0].Label != "Dinas Kesehatan" || counts[0].Count != 2 {
		t.Fatalf("urutan pertama = %+v", counts[0])
	}
	if counts[1].Label != "Dinas Pendidikan" || counts[1].Count != 1 {
		t.Fatalf("urutan kedua = %+v", counts[1])
	}
}

func TestCountByTieBrokenAlphabetically(t *testing.T) {
	records := []*model.Record{
		{Kind: strp("Zeta")},
		{Kind: strp("Alpha")},
	}
	counts := filter.CountBy(records, func(r *model.Record) *string { return r.Kind })
	if counts[0].Label != "Alpha" {
		t.Fatalf("seri jumlah harus alfabetis, dapat %q dulu", counts[0].Label)
	}
}

func TestTopN(t *testing.T) {
	counts := []filter.ValueCount{{Label: "a", Count: 3}, {Label: "b", Count: 2}, {Label: "c", Count: 1}}

	if got := filter.TopN(counts, 2); len(got) != 2 {
		t.Fatalf("TopN(2) = %d", len(got))
	}
	if got := filter.TopN(counts, 0); len(got) != 3 {
		t.Fatalf("TopN(0) harus tanpa batas, dapat %d", len(got))
	}
	if got := filter.TopN(counts, 10); len(got) != 3 {
		t.Fatalf("TopN lebih besar dari daftar = %d", len(got))
	}
}

func TestMonthlyTrend(t *testing.T) {
	points := filter.MonthlyTrend(sampleRecords())

	// Januari: 2x Digital; Februari: 1x Non Digital
	if len(points) != 2 {
		t.Fatalf("jumlah titik = %d: %+v", len(points), points)
	}

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !points[0].Month.Equal(jan) || points[0].Kind != "Digital" || points[0].Count != 2 {
		t.Fatalf("titik pertama = %+v", points[0])
	}
	if points[1].Count != 1 || points[1].Kind != "Non Digital" {
		t.Fatalf("titik kedua = %+v", points[1])
	}
}

func TestMonthlyTrendSkipsMissing(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []*model.Record{
		{Kind: strp("Digital")},   // tanpa tanggal
		{InputDate: &d},           // tanpa jenis
		{InputDate: &d, Kind: strp("Digital")},
	}
	points := filter.MonthlyTrend(records)
	if len(points) != 1 || points[0].Count != 1 {
		t.Fatalf("titik = %+v", points)
	}
}

func TestTopByMaturity(t *testing.T) {
	sorted := filter.TopByMaturity(sampleRecords(), 0)
	if sorted[0].Title != "Inovasi A" || sorted[1].Title != "Inovasi B" {
		t.Fatalf("urutan kematangan salah: %s, %s", sorted[0].Title, sorted[1].Title)
	}
	if sorted[2].Maturity != nil {
		t.Fatalf("nil harus di akhir")
	}

	top := filter.TopByMaturity(sampleRecords(), 1)
	if len(top) != 1 || top[0].Title != "Inovasi A" {
		t.Fatalf("limit 1 = %+v", top)
	}
}
