package cms_routes

import (
	admin_controller "github.com/YokoReis/focus-flash-forge-23/controllers/cms/admin_controller"
	admin_auth "github.com/YokoReis/focus-flash-forge-23/controllers/cms/admin_controller/auth"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up the admin session and dashboard routes. rg is the
// /admin group; protected carries the auth middleware.
func SetupAdminRoutes(rg *gin.RouterGroup, protected gin.HandlersChain, auth *admin_auth.Handler, dashboard *admin_controller.Handler) {
	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	rg.POST("/login", auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("")
	admin.Use(protected...)
	{
		// Auth
		admin.POST("/logout", auth.AdminLogout)
		admin.GET("/me", auth.GetAdminMe)

		// Activity logs
		admin.GET("/activity-logs", dashboard.GetAllAdminActivityLogs)

		// Stats
		admin.GET("/stats", dashboard.GetAdminStats)
	}
}
