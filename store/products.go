package store

import (
	"fmt"

	"github.com/YokoReis/focus-flash-forge-23/models"
)

// LastUpdateLayout is the display format of Product.LastUpdate.
const LastUpdateLayout = "02/01/2006"

// AddProduct appends p under a freshly generated id and returns the stored value.
// Empty slug and lastUpdate are derived from the title and the clock.
func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	if err := p.Validate(); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	created := p.Clone()
	created.ID = s.newID()
	if created.Slug == "" {
		created.Slug = models.Slugify(created.Title)
	}
	if created.LastUpdate == "" {
		created.LastUpdate = s.now().Format(LastUpdateLayout)
	}
	if created.Tags == nil {
		created.Tags = []string{}
	}
	s.products = append(s.products, created)
	s.persist(CollectionProducts)
	s.mu.Unlock()

	s.notify(CollectionProducts)
	return created.Clone(), nil
}

// UpdateProduct merges patch into the product with the given id. A missing id is a
// silent no-op. The merged product must still validate, otherwise nothing changes
// and the validation error is returned.
func (s *Store) UpdateProduct(id string, patch models.ProductPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	s.mu.Lock()
	idx := s.indexOfProduct(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	_, err := s.applyPatchLocked(idx, patch)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(CollectionProducts)
	return nil
}

// UpdateProductJSON decodes a partial JSON product against the current value and
// applies it under the same lock, so concurrent updates never merge over a stale
// variant payload. found is false when no product has the id.
func (s *Store) UpdateProductJSON(id string, raw []byte) (updated models.Product, found bool, err error) {
	s.mu.Lock()
	idx := s.indexOfProduct(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Product{}, false, nil
	}
	patch, err := models.ParseProductPatch(raw, s.products[idx])
	if err != nil {
		s.mu.Unlock()
		return models.Product{}, true, err
	}
	if patch.IsEmpty() {
		current := s.products[idx].Clone()
		s.mu.Unlock()
		return current, true, nil
	}
	updated, err = s.applyPatchLocked(idx, patch)
	s.mu.Unlock()
	if err != nil {
		return models.Product{}, true, err
	}

	s.notify(CollectionProducts)
	return updated, true, nil
}

// applyPatchLocked validates and stores the merged product. Must be called with
// s.mu held.
func (s *Store) applyPatchLocked(idx int, patch models.ProductPatch) (models.Product, error) {
	id := s.products[idx].ID
	updated := patch.Apply(s.products[idx])
	updated.ID = id
	if err := updated.Validate(); err != nil {
		return models.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	s.products[idx] = updated
	s.persist(CollectionProducts)
	return updated.Clone(), nil
}

// DeleteProduct removes the product. Cart and favorite entries pointing at it are kept.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	idx := s.indexOfProduct(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.persist(CollectionProducts)
	s.mu.Unlock()

	s.notify(CollectionProducts)
}

func (s *Store) GetProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOfProduct(id)
	if idx < 0 {
		return models.Product{}, false
	}
	return s.products[idx].Clone(), true
}

// GetProductBySlug returns the first product carrying slug.
func (s *Store) GetProductBySlug(slug string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Slug == slug {
			return p.Clone(), true
		}
	}
	return models.Product{}, false
}

// GetProductsByType keeps the catalog order.
func (s *Store) GetProductsByType(t models.ProductType) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Product{}
	for _, p := range s.products {
		if p.Type() == t {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Products returns a copy of the whole catalog in collection order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

// ReplaceProducts swaps the whole catalog, keeping the given ids.
func (s *Store) ReplaceProducts(products []models.Product) error {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("product %s: %w", p.ID, err)
		}
	}

	s.mu.Lock()
	s.products = cloneProducts(products)
	s.persist(CollectionProducts)
	s.mu.Unlock()

	s.notify(CollectionProducts)
	return nil
}

func (s *Store) indexOfProduct(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// findProduct looks a product up without cloning. Must be called with s.mu held.
func (s *Store) findProduct(id string) (*models.Product, bool) {
	idx := s.indexOfProduct(id)
	if idx < 0 {
		return nil, false
	}
	return &s.products[idx], true
}
