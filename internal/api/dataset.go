package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/config"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/excel"
)

// GetStatus Status sistem dan dataset aktif
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	ds := h.manager.Current()

	status := gin.H{
		"ready":        !ds.Empty(),
		"collabActive": h.collab != nil,
	}
	if ds != nil {
		status["dataset"] = gin.H{
			"id":                ds.ID,
			"sourceName":        ds.SourceName,
			"rowCount":          len(ds.Records),
			"columnCount":       len(ds.Columns),
			"duplicatesRemoved": ds.DuplicatesRemoved,
			"loadedAt":          ds.LoadedAt,
		}
	}

	c.JSON(http.StatusOK, status)
}

// UploadDataset Mengunggah berkas xlsx dan membangun ulang pipeline
// POST /api/dataset/upload
func (h *Handler) UploadDataset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tidak ada berkas yang diunggah"})
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hanya berkas .xlsx yang didukung"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal membuka berkas unggahan"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal membaca berkas unggahan"})
		return
	}

	sheet := strings.TrimSpace(c.PostForm("sheet"))

	ds, err := h.manager.LoadBytes(data, fileHeader.Filename, sheet)
	h.respondLoadResult(c, ds.SourceName, err)
}

// ReloadDataset Memuat ulang dataset dari jalur bawaan
// POST /api/dataset/reload
func (h *Handler) ReloadDataset(c *gin.Context) {
	path := config.ResolveDataPath(h.cfg, h.cfg.Data.DefaultDataset)
	ds, err := h.manager.LoadFile(path, "")
	h.respondLoadResult(c, ds.SourceName, err)
}

// respondLoadResult LoadError diturunkan jadi dataset kosong + pesan,
// bukan kegagalan proses
func (h *Handler) respondLoadResult(c *gin.Context, sourceName string, err error) {
	if err != nil {
		var loadErr *excel.LoadError
		if errors.As(err, &loadErr) {
			c.JSON(http.StatusOK, gin.H{
				"loaded":  false,
				"source":  sourceName,
				"warning": loadErr.Error(),
				"hint":    "Unggah berkas Excel lain atau pastikan berkas bawaan tersedia.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ds := h.manager.Current()
	c.JSON(http.StatusOK, gin.H{
		"loaded":            true,
		"source":            ds.SourceName,
		"rowCount":          len(ds.Records),
		"columnCount":       len(ds.Columns),
		"duplicatesRemoved": ds.DuplicatesRemoved,
	})
}

// GetDatasetSummary Ringkasan dataset aktif
// GET /api/dataset/summary
func (h *Handler) GetDatasetSummary(c *gin.Context) {
	ds := h.manager.Current()
	if ds == nil {
		c.JSON(http.StatusOK, gin.H{
			"ready":   false,
			"message": "Data belum tersedia. Unggah berkas Excel atau muat ulang sumber bawaan.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ready":             !ds.Empty(),
		"id":                ds.ID,
		"sourceName":        ds.SourceName,
		"sheetName":         ds.SheetName,
		"columns":           ds.Columns,
		"rowCount":          len(ds.Records),
		"duplicatesRemoved": ds.DuplicatesRemoved,
		"loadedAt":          ds.LoadedAt,
	})
}
