// Package filter menggabungkan predikat-predikat pilihan pengguna menjadi
// satu tampilan aktif yang dibaca seluruh proyeksi hilir (grafik, peta,
// tabel, ekspor).
package filter

import (
	"strings"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
)

type predicate func(*model.Record) bool

// Apply Menerapkan seluruh dimensi filter dengan komposisi AND.
// Setiap predikat adalah saringan murni atas koleksi dasar yang sama,
// sehingga urutan evaluasi tidak mempengaruhi hasil. Keluaran selalu
// slice baru; koleksi dasar tidak pernah dimutasi.
func Apply(records []*model.Record, f model.FilterPredicateSet) []*model.Record {
	preds := buildPredicates(f)

	out := make([]*model.Record, 0, len(records))
	for _, r := range records {
		if matchAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func matchAll(r *model.Record, preds []predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

func buildPredicates(f model.FilterPredicateSet) []predicate {
	var preds []predicate

	// Ambang bawaan 0 tidak menyaring; begitu > 0, baris dengan
	// Kematangan nil ikut tersaring karena nil tidak lolos perbandingan.
	if f.MinMaturity > 0 {
		min := f.MinMaturity
		preds = append(preds, func(r *model.Record) bool {
			return r.Maturity != nil && *r.Maturity >= min
		})
	}

	if model.SelectionActive(f.Kinds) {
		set := toSet(f.Kinds)
		preds = append(preds, func(r *model.Record) bool {
			return r.Kind != nil && set[*r.Kind]
		})
	}

	if model.SelectionActive(f.OrgGroups) {
		set := toSet(f.OrgGroups)
		preds = append(preds, func(r *model.Record) bool {
			return set[r.OrgGroup]
		})
	}

	if model.SelectionActive(f.OrgCategories) {
		set := toSet(f.OrgCategories)
		preds = append(preds, func(r *model.Record) bool {
			return set[r.OrgCategory]
		})
	}

	if model.SelectionActive(f.MainAffairs) {
		set := toSet(f.MainAffairs)
		preds = append(preds, func(r *model.Record) bool {
			return r.MainAffair != nil && set[*r.MainAffair]
		})
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		needle := strings.ToLower(s)
		preds = append(preds, func(r *model.Record) bool {
			return r.AstaCipta != nil &&
				strings.Contains(strings.ToLower(*r.AstaCipta), needle)
		})
	}

	if f.Region != "" && f.Region != model.SelectAll {
		region := f.Region
		preds = append(preds, func(r *model.Record) bool {
			return r.Region != nil && *r.Region == region
		})
	}

	return preds
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// MatchKeyword Pencarian kata kunci lintas beberapa kolom sumber,
// case-insensitive; dipakai proyeksi peta. Nilai nil/kosong tidak cocok.
func MatchKeyword(r *model.Record, columns []string, keyword string) bool {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return true
	}
	for _, c := range columns {
		if v := r.Cell(c); v != "" &&
			strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
