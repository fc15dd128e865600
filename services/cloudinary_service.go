package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const productImageRoot = "focus-flash/products"

// ImageStorage stores product cover images.
type ImageStorage interface {
	UploadProductImage(ctx context.Context, file io.Reader, productID, filename string) (string, error)
	DeleteProductImages(ctx context.Context, productID string) error
}

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &CloudinaryService{cld: cld}, nil
}

// ProductImageFolder is the Cloudinary folder holding a product's images.
func ProductImageFolder(productID string) string {
	return productImageRoot + "/" + productID
}

// UploadProductImage uploads a cover image and returns the secure URL
func (s *CloudinaryService) UploadProductImage(ctx context.Context, file io.Reader, productID, filename string) (string, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         ProductImageFolder(productID),
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
		Tags:           api.CldAPIArray{"product", productID},
	}

	// Only set PublicID if filename is provided
	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}

	// Ensure we return the secure URL
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// DeleteProductImages removes every asset under the product folder, then the folder.
func (s *CloudinaryService) DeleteProductImages(ctx context.Context, productID string) error {
	folder := ProductImageFolder(productID)
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folder},
	})
	if err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folder, err)
	}

	// Cloudinary usually drops empty folders on its own
	if _, err := s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folder}); err != nil {
		log.Printf("[cloudinary.DeleteProductImages] folder %s not removed: %v", folder, err)
	}
	return nil
}
