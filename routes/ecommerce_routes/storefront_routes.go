package ecommerce_routes

import (
	store_filter "github.com/YokoReis/focus-flash-forge-23/controllers/ecommerce/filter_controller"
	store_product "github.com/YokoReis/focus-flash-forge-23/controllers/ecommerce/product_controller"
	store_suggester "github.com/YokoReis/focus-flash-forge-23/controllers/ecommerce/suggester_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the public catalog routes under /store.
func SetupStorefrontRoutes(store *gin.RouterGroup, products *store_product.Handler, filters *store_filter.Handler) {
	// Product routes
	productGroup := store.Group("/products")
	{
		productGroup.GET("", products.GetStorefrontProducts)                  // List with filters
		productGroup.GET("/slug/:slug", products.GetStorefrontProductBySlug)  // Single product by slug
		productGroup.GET("/type/:type", products.GetStorefrontProductsByType) // One product type
		productGroup.GET("/:id", products.GetStorefrontProductByID)           // Single product
	}

	// Filter routes
	store.GET("/filters/metadata", filters.GetFilterMetadata)
	store.GET("/filters", filters.GetActiveFilters)
	store.PUT("/filters", filters.SetActiveFilters)
	store.DELETE("/filters", filters.ClearFilters)
	store.PUT("/search", filters.SetSearchTerm)

	// Bundle suggester
	store.POST("/suggestions", store_suggester.GetSuggestions)
}
