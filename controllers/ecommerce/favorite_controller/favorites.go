package favorite_controller

import (
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/store"
	"github.com/gin-gonic/gin"
)

// Handler serves the favorites endpoints.
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) favorites() models.FavoritesResponse {
	products := h.store.FavoriteProducts()
	cards := make([]models.StorefrontProductResponse, 0, len(products))
	for _, p := range products {
		cards = append(cards, models.ToStorefront(p, true))
	}
	return models.FavoritesResponse{Items: h.store.Favorites(), Products: cards}
}

// GetFavorites godoc
// @Summary List favorites
// @Description Favorite entries plus the cards of those whose product still exists
// @Tags store - favorites
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FavoritesResponse}
// @Router /store/favorites [get]
func (h *Handler) GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites retrieved", h.favorites()))
}

// AddToFavorites godoc
// @Summary Add a product to favorites
// @Tags store - favorites
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.FavoritesResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /store/favorites/{productId} [post]
func (h *Handler) AddToFavorites(c *gin.Context) {
	productID := c.Param("productId")
	if _, ok := h.store.GetProductByID(productID); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	h.store.AddToFavorites(productID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Added to favorites", h.favorites()))
}

// RemoveFromFavorites godoc
// @Summary Remove a product from favorites
// @Tags store - favorites
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.FavoritesResponse}
// @Router /store/favorites/{productId} [delete]
func (h *Handler) RemoveFromFavorites(c *gin.Context) {
	h.store.RemoveFromFavorites(c.Param("productId"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Removed from favorites", h.favorites()))
}

// GetFavoriteStatus godoc
// @Summary Check whether a product is a favorite
// @Tags store - favorites
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.FavoriteStatusResponse}
// @Router /store/favorites/{productId} [get]
func (h *Handler) GetFavoriteStatus(c *gin.Context) {
	productID := c.Param("productId")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorite status retrieved", models.FavoriteStatusResponse{
		ProductID:  productID,
		IsFavorite: h.store.IsFavorite(productID),
	}))
}
