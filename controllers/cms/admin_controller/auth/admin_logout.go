package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/middleware"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Ends the admin session. Every token issued before this call stops working
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func (h *Handler) AdminLogout(c *gin.Context) {
	h.store.AdminLogout()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AdminCookieName,
		"",
		-1,
		"/",
		"",
		h.secureCookie,
		true,
	)
	log.Printf("[admin.logout] session ended, token cleared from cookie")

	h.activity.LogActivity(services.LogActivityRequest{
		Action:       models.ActionAdminLogout,
		ResourceType: models.ResourceTypeSession,
		Status:       models.StatusSuccess,
		Context:      c,
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
