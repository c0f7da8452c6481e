package api

import (
	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/config"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/collab"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/dataset"
)

// Handler Pemroses API dashboard
type Handler struct {
	manager   *dataset.Manager
	cfg       *config.AppConfig
	collab    *collab.Client // nil bila API key tidak dikonfigurasi
	downloads *exportDownloadStore
}

// NewHandler Membuat pemroses API
func NewHandler(manager *dataset.Manager, cfg *config.AppConfig, collabClient *collab.Client) *Handler {
	return &Handler{
		manager:   manager,
		cfg:       cfg,
		collab:    collabClient,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes Mendaftarkan seluruh rute API
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Status sistem
	router.GET("/status", h.GetStatus)

	// Sumber data
	router.POST("/dataset/upload", h.UploadDataset)
	router.POST("/dataset/reload", h.ReloadDataset)
	router.GET("/dataset/summary", h.GetDatasetSummary)

	// Filter & tabel
	router.GET("/filters/options", h.GetFilterOptions)
	router.GET("/records", h.ListRecords)

	// Proyeksi grafik
	router.GET("/charts/:dim", h.GetChart)

	// Peta
	router.GET("/map", h.GetMap)
	router.GET("/map/regions", h.ListRegions)
	router.GET("/map/region-summary", h.GetRegionSummary)

	// Timeline
	router.GET("/gantt", h.GetGantt)

	// Ekspor
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)

	// Saran kolaborasi AI
	router.POST("/collab", h.SuggestCollab)
}
