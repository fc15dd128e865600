package product_controller

import (
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductByID godoc
// @Summary Get single product details for storefront
// @Description Full product with its variant details
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func (h *Handler) GetStorefrontProductByID(c *gin.Context) {
	product, ok := h.store.GetProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", product))
}

// GetStorefrontProductBySlug godoc
// @Summary Get product by slug
// @Tags store
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/slug/{slug} [get]
func (h *Handler) GetStorefrontProductBySlug(c *gin.Context) {
	product, ok := h.store.GetProductBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", product))
}
