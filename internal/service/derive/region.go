package derive

import (
	"math"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/gazetteer"
)

// RegionUnknown Sentinel daerah yang tidak teridentifikasi spesifik
const RegionUnknown = "Wilayah Jawa Timur (tidak teridentifikasi spesifik)"

// DefaultRegionThreshold Ambang jarak Manhattan dalam derajat
const DefaultRegionThreshold = 0.01

// ResolveRegion Mencari daerah terdekat dengan jarak Manhattan
// (|dLat| + |dLon|) terhadap seluruh isi gazetteer; minimum di bawah ambang
// -> nama daerah, selain itu sentinel RegionUnknown. Seri diputus oleh entri
// minimum pertama dalam urutan iterasi gazetteer.
func ResolveRegion(lat, lon float64, entries []gazetteer.Entry, threshold float64) string {
	if len(entries) == 0 {
		return RegionUnknown
	}

	best := 0
	bestDist := math.Inf(1)
	for i, e := range entries {
		d := math.Abs(e.Lat-lat) + math.Abs(e.Lon-lon)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	if bestDist < threshold {
		return entries[best].Name
	}
	return RegionUnknown
}
