package admin_controller

import (
	"log"
	"net/http"

	filter_cache "github.com/YokoReis/focus-flash-forge-23/cache"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// GetAdminStats godoc
// @Summary Get admin dashboard statistics
// @Description Catalog size, products per type, current cart value and the popular products
// @Tags Admin - Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Stats}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/stats [get]
func (h *Handler) GetAdminStats(c *gin.Context) {
	if stats, ok := filter_cache.GetStats(); ok {
		log.Printf("[admin.stats] cache hit")
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats retrieved successfully", stats))
		return
	}

	stats := h.store.Stats()
	filter_cache.SetStats(stats)
	log.Printf("[admin.stats] computed: %d products, revenue %d", stats.TotalProducts, stats.TotalRevenue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats retrieved successfully", stats))
}
