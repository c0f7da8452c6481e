package filter

import (
	"sort"
	"time"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
)

// FilterOptions Daftar pilihan per dimensi filter untuk widget sisi klien.
// Setiap daftar terurut dan diawali sentinel "All".
type FilterOptions struct {
	Kinds         []string `json:"kinds"`
	OrgGroups     []string `json:"orgGroups"`
	OrgCategories []string `json:"orgCategories"`
	MainAffairs   []string `json:"mainAffairs"`
	Regions       []string `json:"regions"`
}

// Options Menghitung daftar pilihan dari koleksi penuh (bukan tampilan
// terfilter, supaya pilihan tidak menyempit sendiri)
func Options(ds *model.Dataset) FilterOptions {
	opts := FilterOptions{
		Kinds:         distinct(ds, func(r *model.Record) *string { return r.Kind }),
		OrgGroups:     distinct(ds, func(r *model.Record) *string { return &r.OrgGroup }),
		OrgCategories: distinct(ds, func(r *model.Record) *string { return &r.OrgCategory }),
		MainAffairs:   distinct(ds, func(r *model.Record) *string { return r.MainAffair }),
		Regions:       distinct(ds, func(r *model.Record) *string { return r.Region }),
	}
	return opts
}

func distinct(ds *model.Dataset, get func(*model.Record) *string) []string {
	seen := make(map[string]struct{})
	for _, r := range ds.Records {
		if v := get(r); v != nil && *v != "" {
			seen[*v] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen)+1)
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)

	return append([]string{model.SelectAll}, values...)
}

// ValueCount Satu label dengan jumlah kemunculannya di tampilan aktif
type ValueCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountBy Jumlah kemunculan per nilai; terurut jumlah menurun,
// seri diputus alfabetis supaya deterministik
func CountBy(view []*model.Record, get func(*model.Record) *string) []ValueCount {
	counts := make(map[string]int)
	for _, r := range view {
		if v := get(r); v != nil && *v != "" {
			counts[*v]++
		}
	}

	out := make([]ValueCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, ValueCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// TopN Memotong daftar jumlah ke n teratas; n <= 0 berarti tanpa batas
func TopN(counts []ValueCount, n int) []ValueCount {
	if n <= 0 || len(counts) <= n {
		return counts
	}
	return counts[:n]
}

// TrendPoint Jumlah inovasi per bulan per jenis (Tanggal Input)
type TrendPoint struct {
	Month time.Time `json:"month"`
	Kind  string    `json:"kind"`
	Count int       `json:"count"`
}

// MonthlyTrend Mengelompokkan tampilan aktif per bulan Tanggal Input dan
// jenis; baris tanpa tanggal atau jenis dilewati
func MonthlyTrend(view []*model.Record) []TrendPoint {
	type key struct {
		month time.Time
		kind  string
	}
	counts := make(map[key]int)
	for _, r := range view {
		if r.InputDate == nil || r.Kind == nil {
			continue
		}
		m := time.Date(r.InputDate.Year(), r.InputDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		counts[key{month: m, kind: *r.Kind}]++
	}

	out := make([]TrendPoint, 0, len(counts))
	for k, n := range counts {
		out = append(out, TrendPoint{Month: k.month, Kind: k.kind, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Month.Equal(out[j].Month) {
			return out[i].Month.Before(out[j].Month)
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// TopByMaturity Tampilan aktif terurut Kematangan menurun (nil di akhir);
// limit <= 0 berarti seluruh baris
func TopByMaturity(view []*model.Record, limit int) []*model.Record {
	sorted := make([]*model.Record, len(view))
	copy(sorted, view)

	sort.SliceStable(sorted, func(i, j int) bool {
		mi, mj := sorted[i].Maturity, sorted[j].Maturity
		switch {
		case mi == nil:
			return false
		case mj == nil:
			return true
		default:
			return *mi > *mj
		}
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
