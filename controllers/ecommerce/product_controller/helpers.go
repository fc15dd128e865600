package product_controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

var errInvalidQuery = errors.New("invalid query")

// queryKeys are the params that replace the store's own search/filter state.
var queryKeys = []string{"q", "type", "area", "banca", "phase", "period", "sortBy"}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// hasQueryParams reports whether the request narrows the catalog itself.
func hasQueryParams(c *gin.Context) bool {
	values := c.Request.URL.Query()
	for _, key := range queryKeys {
		if _, ok := values[key]; ok {
			return true
		}
	}
	return false
}

// multiValue accepts both repeated params and comma-separated lists.
func multiValue(c *gin.Context, key string) []string {
	out := []string{}
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func parseQuery(c *gin.Context) (models.Query, error) {
	q := models.Query{
		Search:  strings.TrimSpace(c.Query("q")),
		Filters: models.EmptyFilters(),
		Sort:    models.SortOption(c.DefaultQuery("sortBy", string(models.SortRelevance))),
	}
	if !q.Sort.Valid() {
		return models.Query{}, fmt.Errorf("%w: sortBy %q", errInvalidQuery, q.Sort)
	}

	for _, v := range multiValue(c, "type") {
		t := models.ProductType(v)
		if !t.Valid() {
			return models.Query{}, fmt.Errorf("%w: type %q", errInvalidQuery, v)
		}
		q.Filters.Types = append(q.Filters.Types, t)
	}
	for _, v := range multiValue(c, "phase") {
		p := models.Phase(v)
		if !p.Valid() {
			return models.Query{}, fmt.Errorf("%w: phase %q", errInvalidQuery, v)
		}
		q.Filters.Phases = append(q.Filters.Phases, p)
	}
	for _, v := range multiValue(c, "period") {
		p := models.Period(v)
		if !p.Valid() {
			return models.Query{}, fmt.Errorf("%w: period %q", errInvalidQuery, v)
		}
		q.Filters.Periods = append(q.Filters.Periods, p)
	}
	q.Filters.Areas = multiValue(c, "area")
	q.Filters.Bancas = multiValue(c, "banca")

	return q, nil
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
