package store

import "github.com/YokoReis/focus-flash-forge-23/models"

// AddToFavorites is idempotent: a product already marked keeps its first entry.
func (s *Store) AddToFavorites(productID string) {
	s.mu.Lock()
	if s.isFavoriteLocked(productID) {
		s.mu.Unlock()
		return
	}
	s.favorites = append(s.favorites, models.Favorite{
		ProductID: productID,
		AddedAt:   s.now().UTC(),
	})
	s.persist(CollectionFavorites)
	s.mu.Unlock()

	s.notify(CollectionFavorites)
}

// RemoveFromFavorites drops every entry for productID.
func (s *Store) RemoveFromFavorites(productID string) {
	s.mu.Lock()
	kept := s.favorites[:0]
	removed := 0
	for _, f := range s.favorites {
		if f.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	s.favorites = kept
	if removed == 0 {
		s.mu.Unlock()
		return
	}
	s.persist(CollectionFavorites)
	s.mu.Unlock()

	s.notify(CollectionFavorites)
}

func (s *Store) IsFavorite(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isFavoriteLocked(productID)
}

func (s *Store) Favorites() []models.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Favorite{}, s.favorites...)
}

// FavoriteProducts resolves favorites against the catalog, skipping deleted products.
func (s *Store) FavoriteProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Product{}
	for _, f := range s.favorites {
		if p, ok := s.findProduct(f.ProductID); ok {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (s *Store) isFavoriteLocked(productID string) bool {
	for _, f := range s.favorites {
		if f.ProductID == productID {
			return true
		}
	}
	return false
}
