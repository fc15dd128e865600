package product_controller

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/config"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

const maxImageSize = 5 << 20

var allowedImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// UploadProductImage godoc
// @Summary Upload a product cover image
// @Description Uploads the "image" form file to Cloudinary and stores the resulting URL on the product
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param image formData file true "Cover image (jpg, png, webp; max 5MB)"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Image storage not configured"
// @Router /admin/products/{id}/image [post]
func (h *Handler) UploadProductImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image storage is not configured"))
		return
	}

	productID := c.Param("id")
	if _, ok := h.store.GetProductByID(productID); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	// Step 1: Validate the upload
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image exceeds 5MB"))
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unsupported image format"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image"))
		return
	}
	defer file.Close()

	// Step 2: Upload
	start := time.Now()
	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	url, err := h.images.UploadProductImage(ctx, file, productID, fileHeader.Filename)
	if err != nil {
		log.Printf("[product.image] %s: upload failed: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}
	log.Printf("[product.image] %s: uploaded in %v", productID, time.Since(start))

	// Step 3: Store the URL
	if err := h.store.UpdateProduct(productID, models.ProductPatch{ImageURL: &url}); err != nil {
		log.Printf("[product.image] %s: failed to store url: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	product, ok := h.store.GetProductByID(productID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", product))
}
