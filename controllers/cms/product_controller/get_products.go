package product_controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary Get paginated products
// @Description Retrieve the full catalog with pagination, optional search and type filter
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param q query string false "Search term"
// @Param type query string false "Filter by type" Enums(deck, summary, mindmap, bundle)
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	// Step 2: Build query
	query := models.Query{
		Search:  strings.TrimSpace(c.Query("q")),
		Filters: models.EmptyFilters(),
		Sort:    models.SortRelevance,
	}
	if t := c.Query("type"); t != "" {
		productType := models.ProductType(t)
		if !productType.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product type"))
			return
		}
		query.Filters.Types = []models.ProductType{productType}
	}

	// Step 3: Fetch and paginate
	products := h.store.QueryProducts(query)
	total := len(products)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products retrieved successfully",
		products[start:end],
		models.NewPagination(page, limit, total),
	))
}
