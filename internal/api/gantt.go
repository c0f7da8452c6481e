package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/filter"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/gantt"
)

// GetGantt Rentang timeline per inovasi pada tampilan aktif
// GET /api/gantt
func (h *Handler) GetGantt(c *gin.Context) {
	ds := h.manager.Current()
	if ds.Empty() {
		c.JSON(http.StatusOK, gin.H{"bars": []gantt.Bar{},
			"message": "Data belum tersedia atau gagal dimuat."})
		return
	}

	if !ds.HasColumn(model.ColInputDate) {
		c.JSON(http.StatusOK, gin.H{"bars": []gantt.Bar{},
			"message": "Kolom tanggal (Tanggal Input) tidak ditemukan."})
		return
	}

	view := filter.Apply(ds.Records, filtersFromQuery(c))
	bars := gantt.Resolve(view, h.cfg.Pipeline.DefaultGanttDays)

	resp := gin.H{"bars": bars, "total": len(bars)}
	if len(bars) == 0 {
		resp["message"] = "Tidak ada baris dengan rentang tanggal yang valid untuk timeline."
	}
	c.JSON(http.StatusOK, resp)
}
