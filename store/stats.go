package store

import "github.com/YokoReis/focus-flash-forge-23/models"

const maxPopularProducts = 5

// Stats is computed on every call and never persisted. ProductsByType always carries
// all four types.
func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byType := make(map[models.ProductType]int, len(models.ProductTypes))
	for _, t := range models.ProductTypes {
		byType[t] = 0
	}
	popular := []models.Product{}
	for _, p := range s.products {
		byType[p.Type()]++
		if (p.Featured || p.Trending) && len(popular) < maxPopularProducts {
			popular = append(popular, p.Clone())
		}
	}

	return models.Stats{
		TotalProducts:   len(s.products),
		ProductsByType:  byType,
		TotalRevenue:    s.cartTotalLocked(),
		PopularProducts: popular,
	}
}
