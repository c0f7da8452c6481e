package model

// SelectAll Sentinel pilihan "semua" pada dimensi multi-select / daerah
const SelectAll = "All"

// FilterPredicateSet Kumpulan nilai filter yang sedang aktif.
// Setiap dimensi selalu ada dengan nilai bawaan yang berarti "tanpa filter";
// tidak ada dimensi yang hadir secara kondisional.
type FilterPredicateSet struct {
	// MinMaturity 0 berarti tanpa ambang; baris dengan Kematangan nil
	// ikut tersaring begitu ambang > 0 (nil tidak pernah lolos perbandingan).
	MinMaturity float64 `json:"minMaturity" form:"minMaturity"`

	// Dimensi keanggotaan himpunan. Kosong atau mengandung SelectAll = tanpa filter.
	Kinds         []string `json:"kinds" form:"kind"`
	OrgGroups     []string `json:"orgGroups" form:"orgGroup"`
	OrgCategories []string `json:"orgCategories" form:"orgCategory"`
	MainAffairs   []string `json:"mainAffairs" form:"affair"`

	// Search Substring case-insensitive pada kolom Asta Cipta; nil tidak cocok.
	Search string `json:"search" form:"search"`

	// Region Kecocokan persis pada daerah hasil identifikasi; SelectAll/"" = tanpa filter.
	Region string `json:"region" form:"region"`
}

// DefaultFilters Predikat bawaan: semua dimensi tanpa filter
func DefaultFilters() FilterPredicateSet {
	return FilterPredicateSet{
		MinMaturity:   0,
		Kinds:         []string{SelectAll},
		OrgGroups:     []string{SelectAll},
		OrgCategories: []string{SelectAll},
		MainAffairs:   []string{SelectAll},
		Search:        "",
		Region:        SelectAll,
	}
}

// SelectionActive Seleksi multi-select benar-benar membatasi
// (tidak kosong dan tidak memuat sentinel SelectAll)
func SelectionActive(selected []string) bool {
	if len(selected) == 0 {
		return false
	}
	for _, s := range selected {
		if s == SelectAll {
			return false
		}
	}
	return true
}
