package cart_controller

import (
	"log"
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the cart
// @Description Cart lines resolved against the catalog. Lines whose product was deleted are returned with available=false
// @Tags store - cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Router /store/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart retrieved", h.store.CartSummary()))
}

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Adds quantity (default 1) to the product's line, creating it when absent
// @Tags store - cart
// @Accept json
// @Produce json
// @Param item body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/cart/items [post]
func (h *Handler) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if _, ok := h.store.GetProductByID(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	h.store.AddToCart(req.ProductID, req.Quantity)
	log.Printf("[cart.add] %s x%d", req.ProductID, req.Quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product added to cart", h.store.CartSummary()))
}

// UpdateCartQuantity godoc
// @Summary Set the quantity of a cart line
// @Description A quantity of zero or less removes the line. Unknown lines are left alone
// @Tags store - cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param item body models.UpdateCartQuantityRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Failure 400 {object} models.ApiResponse
// @Router /store/cart/items/{productId} [patch]
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	var req models.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	h.store.UpdateCartQuantity(c.Param("productId"), *req.Quantity)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", h.store.CartSummary()))
}

// RemoveFromCart godoc
// @Summary Remove a cart line
// @Tags store - cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Router /store/cart/items/{productId} [delete]
func (h *Handler) RemoveFromCart(c *gin.Context) {
	h.store.RemoveFromCart(c.Param("productId"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product removed from cart", h.store.CartSummary()))
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags store - cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartSummary}
// @Router /store/cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	h.store.ClearCart()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", h.store.CartSummary()))
}

// GetCartTotal godoc
// @Summary Get the cart total
// @Description Sum of price × quantity over lines whose product still exists, in cents
// @Tags store - cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartTotalResponse}
// @Router /store/cart/total [get]
func (h *Handler) GetCartTotal(c *gin.Context) {
	summary := h.store.CartSummary()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart total retrieved", models.CartTotalResponse{
		Total:      summary.Total,
		Formatted:  services.FormatBRL(summary.Total),
		TotalItems: summary.TotalItems,
	}))
}
