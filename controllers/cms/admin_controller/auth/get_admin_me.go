package admin_auth_controller

import (
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/middleware"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/gin-gonic/gin"
)

// GetAdminMe godoc
// @Summary Get current admin session
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminMeResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /admin/me [get]
func (h *Handler) GetAdminMe(c *gin.Context) {
	raw, exists := c.Get(middleware.AdminClaimsKey)
	claims, ok := raw.(*services.AdminJWTClaims)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	resp := models.AdminMeResponse{
		IsAdmin: h.store.IsAdmin(),
		Subject: claims.Subject,
	}
	if claims.IssuedAt != nil {
		resp.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin session retrieved", resp))
}
