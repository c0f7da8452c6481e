package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/model"
)

// filtersFromQuery Membangun FilterPredicateSet dari query string.
// Dimensi yang tidak dikirim memakai nilai bawaan "tanpa filter",
// sehingga set predikat selalu lengkap.
func filtersFromQuery(c *gin.Context) model.FilterPredicateSet {
	f := model.DefaultFilters()

	if v := strings.TrimSpace(c.Query("minMaturity")); v != "" {
		if m, err := strconv.ParseFloat(v, 64); err == nil && m > 0 {
			f.MinMaturity = m
		}
	}

	if vals := queryValues(c, "kind"); len(vals) > 0 {
		f.Kinds = vals
	}
	if vals := queryValues(c, "orgGroup"); len(vals) > 0 {
		f.OrgGroups = vals
	}
	if vals := queryValues(c, "orgCategory"); len(vals) > 0 {
		f.OrgCategories = vals
	}
	if vals := queryValues(c, "affair"); len(vals) > 0 {
		f.MainAffairs = vals
	}

	f.Search = strings.TrimSpace(c.Query("search"))

	if v := strings.TrimSpace(c.Query("region")); v != "" {
		f.Region = v
	}

	return f
}

// queryValues Nilai multi: parameter berulang maupun dipisah koma
func queryValues(c *gin.Context, key string) []string {
	raw := c.QueryArray(key)
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseIntWithDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// paginate Batas halaman aman untuk daftar record
func paginate(c *gin.Context, total int) (page, pageSize, start, end int) {
	page = parseIntWithDefault(c.Query("page"), 1)
	pageSize = parseIntWithDefault(c.Query("pageSize"), 200)
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 200
	}
	if pageSize > 2000 {
		pageSize = 2000
	}

	start = (page - 1) * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return page, pageSize, start, end
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
