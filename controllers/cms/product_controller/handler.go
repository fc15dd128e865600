package product_controller

import (
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/YokoReis/focus-flash-forge-23/store"
)

// Handler serves the admin product endpoints.
type Handler struct {
	store  *store.Store
	images services.ImageStorage
}

// NewHandler wires the admin product endpoints. images may be nil when no image
// storage is configured; uploads then answer 503.
func NewHandler(st *store.Store, images services.ImageStorage) *Handler {
	return &Handler{store: st, images: images}
}
