package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Paginated catalog cards. Without search/filter/sort params the session's active search term and filters apply
// @Tags store
// @Produce json
// @Param q query string false "Search query (title, description, banca, area, concurso, tags)"
// @Param type query []string false "Product types (repeatable ?type=deck&type=bundle)" Enums(deck, summary, mindmap, bundle)
// @Param area query []string false "Areas (repeatable)"
// @Param banca query []string false "Bancas (repeatable)"
// @Param phase query []string false "Phases (repeatable)" Enums(pre, pos)
// @Param period query []string false "Periods in days (repeatable)" Enums(15, 30, 45, 60, 90)
// @Param sortBy query string false "Sort order" Enums(relevancia, mais-vendidos, recentes, preco-menor, preco-maior) default(relevancia)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProductResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /store/products [get]
func (h *Handler) GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	var products []models.Product
	if hasQueryParams(c) {
		query, err := parseQuery(c)
		if err != nil {
			if errors.Is(err, errInvalidQuery) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
			return
		}
		products = h.store.QueryProducts(query)
	} else {
		products = h.store.FilteredProducts()
	}

	total := len(products)
	log.Printf("[store.products] %d matches, page %d", total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products retrieved successfully",
		h.toCards(paginate(products, page, limit)),
		models.NewPagination(page, limit, total),
	))
}
