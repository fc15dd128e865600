package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/middleware"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/gin-gonic/gin"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Checks the admin password against the store authenticator. Returns a JWT and sets it in the admin_token cookie
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Admin password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid password"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	log.Printf("[admin.login] attempt")

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	// Step 1: Verify password (sets the persisted session flag on success)
	if !h.store.AdminLogin(req.Password) {
		log.Printf("[admin.login] invalid password from %s", c.ClientIP())
		h.activity.LogActivity(services.LogActivityRequest{
			Action:       models.ActionAdminLogin,
			ResourceType: models.ResourceTypeSession,
			Status:       models.StatusFailed,
			ErrorMessage: "invalid password",
			Context:      c,
		})
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid password"))
		return
	}

	// Step 2: Generate JWT token
	token, expiresAt, err := h.jwt.GenerateAdminJWT()
	if err != nil {
		log.Printf("[admin.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Step 3: Set token in HTTP cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AdminCookieName,
		token,
		int(h.jwt.Expiry().Seconds()),
		"/",
		"",
		h.secureCookie,
		true,
	)

	h.activity.LogActivity(services.LogActivityRequest{
		Action:       models.ActionAdminLogin,
		ResourceType: models.ResourceTypeSession,
		Status:       models.StatusSuccess,
		Context:      c,
	})
	log.Printf("[admin.login] success, token expires %s", expiresAt.Format("2006-01-02 15:04"))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}))
}
