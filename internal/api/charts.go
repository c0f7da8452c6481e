package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/chart"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/filter"
)

// GetChart Proyeksi jumlah nilai untuk satu dimensi grafik.
// format=png merender grafik di server; bawaan JSON.
// GET /api/charts/:dim
func (h *Handler) GetChart(c *gin.Context) {
	ds := h.manager.Current()
	if ds.Empty() {
		c.JSON(http.StatusOK, gin.H{"items": []filter.ValueCount{},
			"message": "Data belum tersedia atau gagal dimuat."})
		return
	}

	view := filter.Apply(ds.Records, filtersFromQuery(c))
	dim := c.Param("dim")

	if dim == "trend" {
		h.respondTrend(c, view)
		return
	}

	var counts []filter.ValueCount
	var title string

	switch dim {
	case "org":
		counts = filter.TopN(
			filter.CountBy(view, func(r *model.Record) *string { return &r.OrgShortName }),
			h.cfg.Pipeline.OrgChartTopN)
		title = "Jumlah Inovasi per OPD"
	case "form":
		counts = filter.CountBy(view, func(r *model.Record) *string { return r.Form })
		title = "Distribusi Bentuk Inovasi"
	case "kind":
		counts = filter.CountBy(view, func(r *model.Record) *string { return r.Kind })
		title = "Proporsi Digital vs Non Digital"
	case "affair":
		counts = filter.CountBy(view, func(r *model.Record) *string { return r.MainAffair })
		title = "Jumlah Inovasi per Urusan Pemerintahan Utama"
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "dimensi grafik tidak dikenal: " + dim})
		return
	}

	if c.Query("format") == "png" {
		png, err := chart.BarPNG(title, "Jumlah Inovasi", counts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
		return
	}

	c.JSON(http.StatusOK, gin.H{"title": title, "items": counts})
}

func (h *Handler) respondTrend(c *gin.Context, view []*model.Record) {
	points := filter.MonthlyTrend(view)

	if c.Query("format") == "png" {
		png, err := chart.TrendPNG("Tren Digital vs Non Digital per Bulan", points)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title": "Tren Digital vs Non Digital per Bulan",
		"items": points,
	})
}
