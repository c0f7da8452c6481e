package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/filter"
)

// Kolom yang disisir pencarian kata kunci peta
var mapSearchColumns = []string{
	model.ColTitle,
	model.ColMainAffair,
	model.ColOtherAffair,
}

type mapMarker struct {
	Title       string   `json:"title"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Color       string   `json:"color"`
	AdminOrg    string   `json:"adminOrg"`
	Kind        string   `json:"kind"`
	Form        string   `json:"form"`
	Maturity    *float64 `json:"maturity"`
	Region      string   `json:"region"`
	MainAffair  string   `json:"mainAffair,omitempty"`
	OtherAffair string   `json:"otherAffair,omitempty"`
	VideoLink   string   `json:"videoLink,omitempty"`
}

type mapBounds struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// GetMap Marker peta dari tampilan aktif: hanya baris berkoordinat valid,
// opsional kata kunci dan fokus daerah, dibatasi agar peta tetap ringan
// GET /api/map
func (h *Handler) GetMap(c *gin.Context) {
	ds := h.manager.Current()
	if ds.Empty() {
		c.JSON(http.StatusOK, gin.H{"markers": []mapMarker{}, "total": 0,
			"message": "Data belum tersedia atau gagal dimuat."})
		return
	}

	view := filter.Apply(ds.Records, filtersFromQuery(c))
	keyword := strings.TrimSpace(c.Query("keyword"))

	limit := h.cfg.Pipeline.MapMarkerLimit
	markers := make([]mapMarker, 0)
	var bounds *mapBounds
	var sumLat, sumLon float64

	for _, r := range view {
		if !r.HasCoordinate() {
			continue
		}
		if keyword != "" && !filter.MatchKeyword(r, mapSearchColumns, keyword) {
			continue
		}
		if limit > 0 && len(markers) >= limit {
			break
		}

		lat, lon := *r.Latitude, *r.Longitude
		markers = append(markers, mapMarker{
			Title:       titleOrFallback(r.Title),
			Lat:         lat,
			Lon:         lon,
			Color:       markerColor(r.Kind),
			AdminOrg:    strOrEmpty(r.AdminOrg),
			Kind:        strOrEmpty(r.Kind),
			Form:        strOrEmpty(r.Form),
			Maturity:    r.Maturity,
			Region:      strOrEmpty(r.Region),
			MainAffair:  strOrEmpty(r.MainAffair),
			OtherAffair: strOrEmpty(r.OtherAffair),
			VideoLink:   meaningfulLink(r.VideoLink),
		})

		sumLat += lat
		sumLon += lon
		if bounds == nil {
			bounds = &mapBounds{MinLat: lat, MinLon: lon, MaxLat: lat, MaxLon: lon}
		} else {
			if lat < bounds.MinLat {
				bounds.MinLat = lat
			}
			if lat > bounds.MaxLat {
				bounds.MaxLat = lat
			}
			if lon < bounds.MinLon {
				bounds.MinLon = lon
			}
			if lon > bounds.MaxLon {
				bounds.MaxLon = lon
			}
		}
	}

	resp := gin.H{"markers": markers, "total": len(markers)}
	if len(markers) > 0 {
		resp["center"] = gin.H{
			"lat": sumLat / float64(len(markers)),
			"lon": sumLon / float64(len(markers)),
		}
		resp["bounds"] = bounds
	} else {
		resp["message"] = "Tidak ada data inovasi yang cocok dengan filter atau pencarian."
	}
	c.JSON(http.StatusOK, resp)
}

// ListRegions Daftar daerah hasil identifikasi pada tampilan aktif
// GET /api/map/regions
func (h *Handler) ListRegions(c *gin.Context) {
	ds := h.manager.Current()
	if ds.Empty() {
		c.JSON(http.StatusOK, gin.H{"regions": []string{}})
		return
	}

	view := filter.Apply(ds.Records, filtersFromQuery(c))

	seen := make(map[string]struct{})
	for _, r := range view {
		if r.Region != nil && *r.Region != "" {
			seen[*r.Region] = struct{}{}
		}
	}

	regions := make([]string, 0, len(seen))
	for region := range seen {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

// GetRegionSummary Rangkuman satu daerah: jumlah, rata-rata kematangan,
// distribusi jenis
// GET /api/map/region-summary?region=...
func (h *Handler) GetRegionSummary(c *gin.Context) {
	region := strings.TrimSpace(c.Query("region"))
	if region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parameter region wajib diisi"})
		return
	}

	ds := h.manager.Current()
	if ds.Empty() {
		c.JSON(http.StatusOK, gin.H{"region": region, "count": 0,
			"message": "Data belum tersedia atau gagal dimuat."})
		return
	}

	f := filtersFromQuery(c)
	f.Region = region
	view := filter.Apply(ds.Records, f)

	var maturitySum float64
	maturityCount := 0
	for _, r := range view {
		if r.Maturity != nil {
			maturitySum += *r.Maturity
			maturityCount++
		}
	}

	resp := gin.H{
		"region": region,
		"count":  len(view),
		"kinds":  filter.CountBy(view, func(r *model.Record) *string { return r.Kind }),
	}
	if maturityCount > 0 {
		resp["avgMaturity"] = maturitySum / float64(maturityCount)
	}
	if len(view) == 0 {
		resp["message"] = "Tidak ada inovasi ditemukan di wilayah " + region + "."
	}
	c.JSON(http.StatusOK, resp)
}

// markerColor Warna marker menurut jenis inovasi
func markerColor(kind *string) string {
	if kind == nil {
		return "gray"
	}
	k := strings.ToLower(*kind)
	switch {
	case strings.Contains(k, "non"):
		return "orange"
	case strings.Contains(k, "digital"):
		return "green"
	default:
		return "gray"
	}
}

func titleOrFallback(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Tanpa Judul"
	}
	return title
}

// meaningfulLink Tautan video; token kosong/strip tidak dikirim
func meaningfulLink(link *string) string {
	if link == nil {
		return ""
	}
	v := strings.TrimSpace(*link)
	switch strings.ToLower(v) {
	case "", "-", "nan", "none":
		return ""
	}
	return v
}
