package admin_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// GetAllAdminActivityLogs godoc
// @Summary Get admin activity feed
// @Description Most recent admin actions, newest first, with pagination
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param action query string false "Filter by action (e.g., created_product, admin_login)"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/activity-logs [get]
func (h *Handler) GetAllAdminActivityLogs(c *gin.Context) {
	// Pagination
	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			if parsed > 100 {
				parsed = 100 // Max 100 items per page
			}
			limit = parsed
		}
	}

	all := h.activity.Recent(0, c.Query("action"))
	total := len(all)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	log.Printf("[admin.all-activity] page %d: %d of %d entries", page, end-start, total)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Activity logs retrieved successfully",
		all[start:end],
		models.NewPagination(page, limit, total),
	))
}
