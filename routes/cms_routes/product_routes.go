package cms_routes

import (
	"github.com/YokoReis/focus-flash-forge-23/controllers/cms/product_controller"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes registers the catalog management routes under the /admin
// group. protected carries auth; logging records mutations.
func SetupProductRoutes(rg *gin.RouterGroup, protected gin.HandlersChain, logging gin.HandlerFunc, h *product_controller.Handler) {
	product := rg.Group("/products")
	product.Use(protected...)

	// Read
	product.GET("", h.GetProducts)
	product.GET("/:id", h.GetProductByID)

	// ════════════════════════════════════════════════════════════
	// Mutations (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	mutations := product.Group("")
	mutations.Use(logging)
	{
		// Create
		mutations.POST("", h.CreateProduct)

		// Update
		mutations.PATCH("/:id", h.UpdateProduct)

		// Delete
		mutations.DELETE("/:id", h.DeleteProduct)

		// Cover image
		mutations.POST("/:id/image", h.UploadProductImage)
	}
}
