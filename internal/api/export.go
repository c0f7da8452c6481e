package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/excel"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/filter"
)

const exportDownloadTTL = 10 * time.Minute

// Export Menulis tampilan aktif ke xlsx dan mengembalikan token unduhan
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	ds := h.manager.Current()
	if ds.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tidak ada data untuk diekspor"})
		return
	}

	view := filter.Apply(ds.Records, filtersFromQuery(c))
	if len(view) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tidak ada data sesuai filter"})
		return
	}

	payload, err := excel.Export(ds, view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ekspor gagal: " + err.Error()})
		return
	}

	tempPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("inovasi_export_%d_%d.xlsx", time.Now().UnixNano(), os.Getpid()))
	if err := os.WriteFile(tempPath, payload, 0644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menulis berkas ekspor"})
		return
	}

	token := h.downloads.put(tempPath, len(view), exportDownloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"rowCount": len(view),
		"fileName": "data_inovasi_filtered.xlsx",
	})
}

// DownloadExport Mengunduh hasil ekspor via token sekali-waktu
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "token unduhan tidak dikenal atau kedaluwarsa"})
		return
	}

	defer func() {
		h.downloads.delete(token)
		os.Remove(item.filePath)
	}()

	c.FileAttachment(item.filePath, "data_inovasi_filtered.xlsx")
}
