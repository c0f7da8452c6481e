package derive

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OrgGroupOther Kelompok OPD untuk nilai kosong
const OrgGroupOther = "Lainnya"

// Dua pass klasifikasi di bawah ini sengaja memakai aturan berbeda di atas
// kolom Admin OPD yang sama: GroupAdminOrg mengisi Admin OPD Grouped
// (filter sidebar), CategorizeAdminOrg + ShortOrgName mengisi tampilan
// analisis per-OPD. Hasil keduanya boleh berbeda untuk baris yang sama;
// jangan disatukan.

var eduKeywords = []string{"sma", "smk", "slb"}

const igaAdminSentinel = "iga2025.provinsi.jawa.timur"

// GroupAdminOrg Pass pengelompokan: kosong -> Lainnya; mengandung
// sma/smk/slb -> Dinas Pendidikan; sentinel admin IGA -> Admin IGA 2025;
// selain itu dipotong pada titik pertama lalu di-title-case.
func GroupAdminOrg(admin *string) string {
	if admin == nil || strings.TrimSpace(*admin) == "" {
		return OrgGroupOther
	}

	lower := strings.ToLower(*admin)
	for _, kw := range eduKeywords {
		if strings.Contains(lower, kw) {
			return "Dinas Pendidikan"
		}
	}
	if strings.Contains(lower, igaAdminSentinel) {
		return "Admin IGA 2025"
	}

	head := strings.TrimSpace(strings.SplitN(*admin, ".", 2)[0])
	return titleCase(head)
}

// CategorizeAdminOrg Pass kategori: kecocokan persis (bukan substring)
// SMA/SMK/SLB -> Dinas Pendidikan; admin.jawa.timur -> Admin IGA;
// selain itu seluruh teks di-title-case.
func CategorizeAdminOrg(admin *string) string {
	if admin == nil || strings.TrimSpace(*admin) == "" {
		return OrgGroupOther
	}

	s := strings.TrimSpace(*admin)
	switch strings.ToUpper(s) {
	case "SMA", "SMK", "SLB":
		return "Dinas Pendidikan"
	}
	if strings.ToLower(s) == "admin.jawa.timur" {
		return "Admin IGA"
	}

	return titleCase(s)
}

var shortNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(Jatimprov\.([^)]+)\)`),
	regexp.MustCompile(`\(Iga2024\.([^)]+)\)`),
}

// ShortOrgName Pass nama pendek: segmen berkurung dengan prefiks yang
// dikenal -> isi kurung, titik jadi spasi; ada kurung lain -> teks sebelum
// kurung pertama; selain itu seluruh teks. Semua di-title-case.
func ShortOrgName(admin *string) string {
	if admin == nil || strings.TrimSpace(*admin) == "" {
		return OrgGroupOther
	}

	s := strings.TrimSpace(*admin)
	for _, re := range shortNamePatterns {
		if m := re.FindStringSubmatch(s); len(m) == 2 {
			return titleCase(strings.ReplaceAll(m[1], ".", " "))
		}
	}
	if i := strings.Index(s, "("); i >= 0 {
		return titleCase(strings.TrimSpace(s[:i]))
	}
	return titleCase(s)
}

// titleCase Kapitalisasi per kata ala .title()
func titleCase(s string) string {
	return cases.Title(language.Indonesian).String(s)
}
