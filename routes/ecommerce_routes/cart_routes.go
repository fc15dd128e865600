package ecommerce_routes

import (
	store_cart "github.com/YokoReis/focus-flash-forge-23/controllers/ecommerce/cart_controller"
	store_favorite "github.com/YokoReis/focus-flash-forge-23/controllers/ecommerce/favorite_controller"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes registers the cart and favorites routes under /store.
func SetupCartRoutes(store *gin.RouterGroup, cart *store_cart.Handler, favorites *store_favorite.Handler) {
	cartGroup := store.Group("/cart")
	{
		cartGroup.GET("", cart.GetCart)
		cartGroup.DELETE("", cart.ClearCart)
		cartGroup.GET("/total", cart.GetCartTotal)
		cartGroup.POST("/items", cart.AddToCart)
		cartGroup.PATCH("/items/:productId", cart.UpdateCartQuantity)
		cartGroup.DELETE("/items/:productId", cart.RemoveFromCart)
		cartGroup.GET("/quote.pdf", cart.DownloadCartQuotePDF)
		cartGroup.POST("/quote/email", cart.SendCartQuoteEmail)
	}

	favoriteGroup := store.Group("/favorites")
	{
		favoriteGroup.GET("", favorites.GetFavorites)
		favoriteGroup.GET("/:productId", favorites.GetFavoriteStatus)
		favoriteGroup.POST("/:productId", favorites.AddToFavorites)
		favoriteGroup.DELETE("/:productId", favorites.RemoveFromFavorites)
	}
}
