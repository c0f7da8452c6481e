package gazetteer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Entry Satu daerah rujukan dengan koordinat representatif
type Entry struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// LoadFile Memuat tabel rujukan daerah dari berkas CSV
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka gazetteer: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load Memuat tabel rujukan dari reader CSV.
// Nama kolom dinormalisasi ke huruf kecil; kolom wajib: kabupaten, lat, lon.
func Load(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("gagal membaca header gazetteer: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, c := range header {
		colIndex[strings.ToLower(strings.TrimSpace(c))] = i
	}

	nameIdx, ok := colIndex["kabupaten"]
	if !ok {
		return nil, fmt.Errorf("gazetteer tanpa kolom kabupaten")
	}
	latIdx, ok := colIndex["lat"]
	if !ok {
		return nil, fmt.Errorf("gazetteer tanpa kolom lat")
	}
	lonIdx, ok := colIndex["lon"]
	if !ok {
		return nil, fmt.Errorf("gazetteer tanpa kolom lon")
	}

	var entries []Entry
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gagal membaca baris gazetteer: %w", err)
		}

		lat, latErr := strconv.ParseFloat(strings.TrimSpace(cell(row, latIdx)), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(cell(row, lonIdx)), 64)
		name := strings.TrimSpace(cell(row, nameIdx))
		if name == "" || latErr != nil || lonErr != nil {
			continue
		}

		entries = append(entries, Entry{Name: name, Lat: lat, Lon: lon})
	}

	return entries, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
