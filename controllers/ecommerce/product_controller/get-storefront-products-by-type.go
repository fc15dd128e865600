package product_controller

import (
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductsByType godoc
// @Summary Get products of one type
// @Description Paginated cards of a single product type, in catalog order
// @Tags store
// @Produce json
// @Param type path string true "Product type" Enums(deck, summary, mindmap, bundle)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProductResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /store/products/type/{type} [get]
func (h *Handler) GetStorefrontProductsByType(c *gin.Context) {
	productType := models.ProductType(c.Param("type"))
	if !productType.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product type"))
		return
	}

	page, limit := parsePagination(c)
	products := h.store.GetProductsByType(productType)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products retrieved successfully",
		h.toCards(paginate(products, page, limit)),
		models.NewPagination(page, limit, len(products)),
	))
}
