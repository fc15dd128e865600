package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/config"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Removes the product from the catalog and its images from storage. Cart and favorite entries are kept
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	product, ok := h.store.GetProductByID(productID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	h.store.DeleteProduct(productID)

	// Image cleanup failures don't undo the delete
	if h.images != nil && product.ImageURL != "" {
		ctx, cancel := config.WithCustomTimeout(30 * time.Second)
		defer cancel()
		if err := h.images.DeleteProductImages(ctx, productID); err != nil {
			log.Printf("[product.delete] %s: image cleanup failed: %v", productID, err)
		}
	}

	log.Printf("[product.delete] %s deleted", productID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{"id": productID}))
}
