// Package gantt menurunkan rentang tanggal per inovasi untuk tampilan
// timeline. Hanya tampilan timeline yang memakai hasil ini; baris yang
// gugur di sini tetap ada di tampilan aktif untuk proyeksi lain.
package gantt

import (
	"sort"
	"time"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
)

// DefaultDurationDays Durasi bawaan bila tidak ada tanggal akhir
const DefaultDurationDays = 30

// Bar Satu rentang timeline
type Bar struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Kind        string    `json:"kind,omitempty"`
	OrgGroup    string    `json:"orgGroup,omitempty"`
	OrgCategory string    `json:"orgCategory,omitempty"`
	Maturity    *float64  `json:"maturity"`
}

// Resolve Menurunkan rentang per baris: Start = Tanggal Input (baris tanpa
// Start dibuang); End = Tanggal Penerapan, kalau kosong Tanggal
// Pengembangan, kalau keduanya kosong Start + durationDays. Hasil terurut
// naik berdasarkan Start.
func Resolve(view []*model.Record, durationDays int) []Bar {
	if durationDays <= 0 {
		durationDays = DefaultDurationDays
	}

	bars := make([]Bar, 0, len(view))
	for _, r := range view {
		if r.InputDate == nil {
			continue
		}
		start := *r.InputDate

		var end time.Time
		switch {
		case r.ApplicationDate != nil:
			end = *r.ApplicationDate
		case r.DevelopmentDate != nil:
			end = *r.DevelopmentDate
		default:
			end = start.AddDate(0, 0, durationDays)
		}

		bar := Bar{
			Title:       r.Title,
			Start:       start,
			End:         end,
			OrgGroup:    r.OrgGroup,
			OrgCategory: r.OrgCategory,
			Maturity:    r.Maturity,
		}
		if r.Kind != nil {
			bar.Kind = *r.Kind
		}
		bars = append(bars, bar)
	}

	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Start.Before(bars[j].Start)
	})
	return bars
}
