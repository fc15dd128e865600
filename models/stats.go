package models

// Stats is a derived, non-persisted view of the store.
type Stats struct {
	TotalProducts   int                 `json:"totalProducts"`
	ProductsByType  map[ProductType]int `json:"productsByType"`
	TotalRevenue    int64               `json:"totalRevenue"` // cents, current cart value
	PopularProducts []Product           `json:"popularProducts"`
}
