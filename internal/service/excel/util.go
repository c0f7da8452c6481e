package excel

import (
	"strconv"
	"strings"
	"time"
)

// Token teks yang dianggap kosong (bekas nilai NaN dari sumber lain)
var nullTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"NaN":  {},
	"None": {},
}

// normalizeText Teks kategorikal: trim, token kosong -> nil
func normalizeText(s string) *string {
	s = strings.TrimSpace(s)
	if _, null := nullTokens[s]; null {
		return nil
	}
	return &s
}

// parseNullableFloat Koersi numerik; tidak valid -> nil, bukan error
func parseNullableFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// Buang pemisah ribuan
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Format tanggal yang dikenali, hari lebih dulu (konvensi sumber)
var dayFirstLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDayFirstDate Parse tanggal konvensi hari-dulu; gagal -> nil
func parseDayFirstDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
