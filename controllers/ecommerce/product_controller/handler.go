package product_controller

import (
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/store"
)

// Handler serves the public catalog endpoints.
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) toCards(products []models.Product) []models.StorefrontProductResponse {
	cards := make([]models.StorefrontProductResponse, 0, len(products))
	for _, p := range products {
		cards = append(cards, models.ToStorefront(p, h.store.IsFavorite(p.ID)))
	}
	return cards
}
