package product_controller

import (
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Get a product by ID
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [get]
func (h *Handler) GetProductByID(c *gin.Context) {
	product, ok := h.store.GetProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", product))
}
