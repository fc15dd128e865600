package routes

import (
	"net/http"
	"time"

	filter_cache "github.com/YokoReis/focus-flash-forge-23/cache"
	admin_controller "github.com/YokoReis/focus-flash-forge-23/controllers/cms/admin_controller"
	admin_auth "github.com/YokoReis/focus-flash-forge-23/controllers/cms/admin_controller/auth"
	"github.com/YokoReis/focus-flash-forge-23/controllers/cms/product_controller"
	store_cart "github.com/YokoReis/focus-flash-forge-23/controllers/ecommerce/cart_controller"
	store_favorite "github.com/YokoReis/focus-flash-forge-23/controllers/ecommerce/favorite_controller"
	store_filter "github.com/YokoReis/focus-flash-forge-23/controllers/ecommerce/filter_controller"
	store_product "github.com/YokoReis/focus-flash-forge-23/controllers/ecommerce/product_controller"
	_ "github.com/YokoReis/focus-flash-forge-23/docs"
	"github.com/YokoReis/focus-flash-forge-23/metrics"
	"github.com/YokoReis/focus-flash-forge-23/middleware"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/routes/cms_routes"
	"github.com/YokoReis/focus-flash-forge-23/routes/ecommerce_routes"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/YokoReis/focus-flash-forge-23/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the long-lived components the HTTP layer is built from.
type Dependencies struct {
	Store    *store.Store
	JWT      *services.JWTService
	Activity *services.ActivityLogService
	// Images and Mailer are optional.
	Images services.ImageStorage
	Mailer *services.ResendClient
	// RateLimiter guards the admin routes; nil disables limiting.
	RateLimiter  gin.HandlerFunc
	CORSOrigins  []string
	SecureCookie bool
}

// NewRouter builds the gin engine with every route registered. It subscribes the
// response caches to deps.Store, so callers do not wire invalidation themselves.
func NewRouter(deps Dependencies) *gin.Engine {
	// Snapshots cached for a previous store must not leak into this one
	filter_cache.Invalidate()
	deps.Store.OnChange(func(c store.Collection) {
		filter_cache.OnStoreChange(string(c))
	})

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(metrics.Middleware())

	// Configure CORS for all content types including PDFs
	corsCfg := cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}
	if len(deps.CORSOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", gin.H{
			"products": len(deps.Store.Products()),
		}))
	})
	router.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// ════════════════════════════════════════════════════════════
	// Admin (at /api/v1/admin prefix)
	// ════════════════════════════════════════════════════════════
	adminGroup := api.Group("/admin")
	if deps.RateLimiter != nil {
		adminGroup.Use(deps.RateLimiter)
	}
	protected := gin.HandlersChain{middleware.AdminAuthMiddleware(deps.JWT, deps.Store)}

	cms_routes.SetupAdminRoutes(
		adminGroup,
		protected,
		admin_auth.NewHandler(deps.Store, deps.JWT, deps.Activity, deps.SecureCookie),
		admin_controller.NewHandler(deps.Store, deps.Activity),
	)
	cms_routes.SetupProductRoutes(
		adminGroup,
		protected,
		middleware.ActivityLoggingMiddleware(deps.Store, deps.Activity),
		product_controller.NewHandler(deps.Store, deps.Images),
	)

	// ════════════════════════════════════════════════════════════
	// Public storefront (no rate limiter)
	// ════════════════════════════════════════════════════════════
	storeGroup := api.Group("/store")
	ecommerce_routes.SetupStorefrontRoutes(
		storeGroup,
		store_product.NewHandler(deps.Store),
		store_filter.NewHandler(deps.Store),
	)
	ecommerce_routes.SetupCartRoutes(
		storeGroup,
		store_cart.NewHandler(deps.Store, deps.Mailer),
		store_favorite.NewHandler(deps.Store),
	)

	return router
}
