package product_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/middleware"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Adds a deck, summary, mind map or bundle to the catalog. The id is always generated; slug and lastUpdate are derived when empty
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.Product true "Flat product JSON with a type discriminator"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	// Step 1: Parse JSON request
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	var product models.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		log.Printf("[product.create] invalid body: %v", err)
		if errors.Is(err, models.ErrUnknownProductType) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product type"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Validate and store
	created, err := h.store.AddProduct(product)
	if err != nil {
		log.Printf("[product.create] rejected: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product: "+err.Error()))
		return
	}

	c.Set(middleware.ActivityResourceIDKey, created.ID)
	log.Printf("[product.create] %s %q created as %s", created.Type(), created.Title, created.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", created))
}
