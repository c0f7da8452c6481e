package gantt_test

import (
	"testing"
	"time"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/gantt"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestResolveEndFallbackChain(t *testing.T) {
	view := []*model.Record{
		{
			Title:           "Pakai penerapan",
			InputDate:       date(2024, 1, 1),
			ApplicationDate: date(2024, 3, 1),
			DevelopmentDate: date(2024, 6, 1),
		},
		{
			Title:           "Pakai pengembangan",
			InputDate:       date(2024, 1, 2),
			DevelopmentDate: date(2024, 5, 1),
		},
		{
			Title:     "Pakai durasi bawaan",
			InputDate: date(2024, 1, 10),
		},
	}

	bars := gantt.Resolve(view, gantt.DefaultDurationDays)
	if len(bars) != 3 {
		t.Fatalf("jumlah bar = %d", len(bars))
	}

	if !bars[0].End.Equal(*date(2024, 3, 1)) {
		t.Fatalf("Tanggal Penerapan harus menang: %v", bars[0].End)
	}
	if !bars[1].End.Equal(*date(2024, 5, 1)) {
		t.Fatalf("jatuh ke Tanggal Pengembangan: %v", bars[1].End)
	}
	// 10 Januari + 30 hari = 9 Februari
	if !bars[2].End.Equal(*date(2024, 2, 9)) {
		t.Fatalf("durasi bawaan 30 hari: %v", bars[2].End)
	}
}

func TestResolveDropsRowsWithoutStart(t *testing.T) {
	view := []*model.Record{
		{Title: "Tanpa tanggal input", ApplicationDate: date(2024, 3, 1)},
		{Title: "Lengkap", InputDate: date(2024, 1, 1)},
	}

	bars := gantt.Resolve(view, 0)
	if len(bars) != 1 || bars[0].Title != "Lengkap" {
		t.Fatalf("baris tanpa Start harus dibuang: %+v", bars)
	}
}

func TestResolveSortedByStart(t *testing.T) {
	view := []*model.Record{
		{Title: "C", InputDate: date(2024, 6, 1)},
		{Title: "A", InputDate: date(2024, 1, 1)},
		{Title: "B", InputDate: date(2024, 3, 1)},
	}

	bars := gantt.Resolve(view, 0)
	want := []string{"A", "B", "C"}
	for i, w := range want {
		if bars[i].Title != w {
			t.Fatalf("urutan[%d] = %q, harusnya %q", i, bars[i].Title, w)
		}
	}
}

func TestResolveZeroDurationUsesDefault(t *testing.T) {
	view := []*model.Record{{Title: "X", InputDate: date(2024, 1, 10)}}

	bars := gantt.Resolve(view, 0)
	if !bars[0].End.Equal(*date(2024, 2, 9)) {
		t.Fatalf("durasi 0 harus jatuh ke bawaan: %v", bars[0].End)
	}
}
