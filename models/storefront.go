// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

// StorefrontProductResponse is the thin card shown in catalog listings.
type StorefrontProductResponse struct {
	ID         string      `json:"id"`
	Type       ProductType `json:"type"`
	Title      string      `json:"title"`
	Slug       string      `json:"slug"`
	Banca      string      `json:"banca"`
	Area       string      `json:"area"`
	Phase      Phase       `json:"phase"`
	Period     Period      `json:"period"`
	Price      int64       `json:"price"`
	Image      string      `json:"image,omitempty"`
	Featured   bool        `json:"featured"`
	Trending   bool        `json:"trending"`
	Popularity string      `json:"popularity,omitempty"`
	IsFavorite bool        `json:"isFavorite"`
}

// ToStorefront builds the listing card for p.
func ToStorefront(p Product, favorite bool) StorefrontProductResponse {
	return StorefrontProductResponse{
		ID:         p.ID,
		Type:       p.Type(),
		Title:      p.Title,
		Slug:       p.Slug,
		Banca:      p.Banca,
		Area:       p.Area,
		Phase:      p.Phase,
		Period:     p.Period,
		Price:      p.Price,
		Image:      p.ImageURL,
		Featured:   p.Featured,
		Trending:   p.Trending,
		Popularity: p.Popularity,
		IsFavorite: favorite,
	}
}

// ═══════════════════════════════════════════════════════════
// Bundle suggester
// ═══════════════════════════════════════════════════════════

type SuggestionTier string

const (
	TierRecommended SuggestionTier = "recomendado"
	TierBudget      SuggestionTier = "economico"
	TierComplete    SuggestionTier = "completo"
)

// SuggestionRequest carries the wizard selections.
type SuggestionRequest struct {
	Area  string `json:"area" binding:"required" example:"Fiscal"`
	Orgao string `json:"orgao" example:"Receita Federal"`
	Banca string `json:"banca" binding:"required" example:"FGV"`
	Fase  Phase  `json:"fase" binding:"required,oneof=pre pos" example:"pos"`
	Prazo Period `json:"prazo" binding:"required,oneof=15 30 45 60 90" example:"60"`
}

type Suggestion struct {
	Title                 string         `json:"title"`
	Description           string         `json:"description"`
	Decks                 []string       `json:"decks"`
	Price                 int64          `json:"preco"`
	OriginalPrice         int64          `json:"precoOriginal"`
	NumCards              int            `json:"numCards"`
	IncludesJurisprudence bool           `json:"incluiJurisprudencia"`
	Tier                  SuggestionTier `json:"tipo"`
}

// Savings returns the discount in cents against the original price.
func (s Suggestion) Savings() int64 {
	return s.OriginalPrice - s.Price
}
