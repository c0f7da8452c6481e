package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/collab"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/filter"
)

// CollabRequest Permintaan saran kolaborasi
type CollabRequest struct {
	// Titles Judul inovasi terpilih (2-5)
	Titles []string `json:"titles"`
	// MaxCombinations Batas kombinasi yang dianalisis (1-10, bawaan 5)
	MaxCombinations int `json:"maxCombinations"`
}

type collabResult struct {
	Titles         []string `json:"titles"`
	Recommendation string   `json:"recommendation,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// SuggestCollab Menganalisis kombinasi inovasi terpilih lewat Gemini.
// Kegagalan satu kombinasi dilaporkan inline pada hasil kombinasi itu
// saja; kombinasi lain tetap diproses.
// POST /api/collab
func (h *Handler) SuggestCollab(c *gin.Context) {
	if h.collab == nil {
		c.JSON(http.StatusServiceUnavailable,
			gin.H{"error": "saran kolaborasi nonaktif: API key Gemini belum dikonfigurasi"})
		return
	}

	var req CollabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload tidak valid"})
		return
	}

	titles := make([]string, 0, len(req.Titles))
	for _, t := range req.Titles {
		if t = strings.TrimSpace(t); t != "" {
			titles = append(titles, t)
		}
	}
	if len(titles) < collab.MinSelection || len(titles) > collab.MaxSelection {
		c.JSON(http.StatusBadRequest, gin.H{"error": collab.ErrSelectionSize.Error()})
		return
	}

	maxComb := req.MaxCombinations
	if maxComb <= 0 {
		maxComb = 5
	}
	if maxComb > 10 {
		maxComb = 10
	}

	ds := h.manager.Current()
	if ds.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tidak ada data untuk dianalisis"})
		return
	}
	view := filter.Apply(ds.Records, filtersFromQuery(c))

	combos := collab.Combinations(titles, maxComb)
	results := make([]collabResult, 0, len(combos))
	for _, combo := range combos {
		rec, err := h.collab.Suggest(c.Request.Context(), combo, view)
		result := collabResult{Titles: combo}
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Recommendation = rec
		}
		results = append(results, result)
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "combinations": len(combos)})
}
