package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/filter"
)

type recordRow struct {
	No           int      `json:"no"`
	Title        string   `json:"title"`
	AdminOrg     string   `json:"adminOrg"`
	OrgGroup     string   `json:"orgGroup"`
	OrgCategory  string   `json:"orgCategory"`
	OrgShortName string   `json:"orgShortName"`
	Kind         string   `json:"kind"`
	Form         string   `json:"form"`
	MainAffair   string   `json:"mainAffair"`
	Stage        string   `json:"stage"`
	Region       string   `json:"region"`
	Maturity     *float64 `json:"maturity"`
}

// ListRecords Tampilan aktif sesuai filter, terurut Kematangan menurun
// GET /api/records
func (h *Handler) ListRecords(c *gin.Context) {
	ds := h.manager.Current()
	if ds.Empty() {
		c.JSON(http.StatusOK, gin.H{
			"items": []recordRow{}, "total": 0, "filtered": 0,
			"message": "Data belum tersedia atau gagal dimuat.",
		})
		return
	}

	f := filtersFromQuery(c)
	view := filter.Apply(ds.Records, f)
	sorted := filter.TopByMaturity(view, 0)

	total := len(ds.Records)
	filtered := len(sorted)
	percent := 0.0
	if total > 0 {
		percent = float64(filtered) / float64(total) * 100
	}

	page, pageSize, start, end := paginate(c, filtered)

	items := make([]recordRow, 0, end-start)
	for i, r := range sorted[start:end] {
		items = append(items, recordRow{
			No:           start + i + 1,
			Title:        r.Title,
			AdminOrg:     strOrEmpty(r.AdminOrg),
			OrgGroup:     r.OrgGroup,
			OrgCategory:  r.OrgCategory,
			OrgShortName: r.OrgShortName,
			Kind:         strOrEmpty(r.Kind),
			Form:         strOrEmpty(r.Form),
			MainAffair:   strOrEmpty(r.MainAffair),
			Stage:        strOrEmpty(r.Stage),
			Region:       strOrEmpty(r.Region),
			Maturity:     r.Maturity,
		})
	}

	resp := gin.H{
		"items":    items,
		"total":    total,
		"filtered": filtered,
		"percent":  percent,
		"page":     page,
		"pageSize": pageSize,
	}
	if filtered == 0 {
		resp["message"] = "Tidak ada data yang sesuai filter. Silakan ubah filter."
	}
	c.JSON(http.StatusOK, resp)
}

// GetFilterOptions Daftar pilihan per dimensi filter
// GET /api/filters/options
func (h *Handler) GetFilterOptions(c *gin.Context) {
	ds := h.manager.Current()
	if ds.Empty() {
		c.JSON(http.StatusOK, filter.Options(&model.Dataset{}))
		return
	}
	c.JSON(http.StatusOK, filter.Options(ds))
}
