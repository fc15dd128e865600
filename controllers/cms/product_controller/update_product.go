package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// UpdateProduct godoc
// @Summary Update an existing product
// @Description Partial update. Variant fields of the current type are merged; changing "type" requires every field of the new variant
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body object true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func (h *Handler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	// Step 1: Read the partial product
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	// Step 2: Decode against the current variant and apply
	updated, found, err := h.store.UpdateProductJSON(productID, raw)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if errors.Is(err, models.ErrInvalidDetails) {
		log.Printf("[product.update] %s: rejected: %v", productID, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product: "+err.Error()))
		return
	}
	if err != nil {
		log.Printf("[product.update] %s: invalid patch: %v", productID, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	log.Printf("[product.update] %s updated", productID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", updated))
}
