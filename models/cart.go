package models

import "time"

// MaxCartQuantity caps the units of one product in the cart.
const MaxCartQuantity = 999

// CartItem is a cart entry. At most one entry exists per product id.
type CartItem struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// Favorite is a favorites entry. At most one entry exists per product id.
type Favorite struct {
	ProductID string    `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

// CartLine is a cart entry resolved against the catalog. Entries whose product was
// deleted stay in the cart with Available=false and a zero subtotal.
type CartLine struct {
	ProductID string      `json:"productId"`
	Title     string      `json:"title,omitempty"`
	Type      ProductType `json:"type,omitempty"`
	UnitPrice int64       `json:"unitPrice"`
	Quantity  int         `json:"quantity"`
	Subtotal  int64       `json:"subtotal"`
	Available bool        `json:"available"`
	AddedAt   time.Time   `json:"addedAt"`
}

type CartSummary struct {
	Lines      []CartLine `json:"lines"`
	TotalItems int        `json:"totalItems"`
	Total      int64      `json:"total"` // cents
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required" example:"1"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1,max=999" example:"2"`
}

type UpdateCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=999" example:"3"`
}

type FavoriteStatusResponse struct {
	ProductID  string `json:"productId"`
	IsFavorite bool   `json:"isFavorite"`
}

type QuoteEmailRequest struct {
	Email string `json:"email" binding:"required,email" example:"aluno@example.com"`
}

type CartTotalResponse struct {
	Total      int64  `json:"total"`
	Formatted  string `json:"formatted" example:"R$ 129,80"`
	TotalItems int    `json:"totalItems"`
}

type FavoritesResponse struct {
	Items    []Favorite                  `json:"items"`
	Products []StorefrontProductResponse `json:"products"`
}
