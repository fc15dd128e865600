package store

import (
	"github.com/YokoReis/focus-flash-forge-23/models"
)

// AddToCart increments the quantity of an existing entry or appends a new one.
// A quantity below 1 counts as 1 and the line saturates at models.MaxCartQuantity.
// The product id is not checked against the catalog.
func (s *Store) AddToCart(productID string, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	quantity = capQuantity(quantity)

	s.mu.Lock()
	if idx := s.indexOfCartItem(productID); idx >= 0 {
		s.cart[idx].Quantity = capQuantity(s.cart[idx].Quantity + quantity)
	} else {
		s.cart = append(s.cart, models.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   s.now().UTC(),
		})
	}
	s.persist(CollectionCart)
	s.mu.Unlock()

	s.notify(CollectionCart)
}

func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	idx := s.indexOfCartItem(productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.cart = append(s.cart[:idx], s.cart[idx+1:]...)
	s.persist(CollectionCart)
	s.mu.Unlock()

	s.notify(CollectionCart)
}

// UpdateCartQuantity sets an absolute quantity, capped at models.MaxCartQuantity.
// Zero or less removes the entry; an id without an entry is ignored.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	idx := s.indexOfCartItem(productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.cart[idx].Quantity = capQuantity(quantity)
	s.persist(CollectionCart)
	s.mu.Unlock()

	s.notify(CollectionCart)
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = []models.CartItem{}
	s.persist(CollectionCart)
	s.mu.Unlock()

	s.notify(CollectionCart)
}

// CartTotal sums price * quantity in cents. Entries whose product no longer exists
// add nothing.
func (s *Store) CartTotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartTotalLocked()
}

func (s *Store) cartTotalLocked() int64 {
	var total int64
	for _, item := range s.cart {
		if p, ok := s.findProduct(item.ProductID); ok {
			total += p.Price * int64(item.Quantity)
		}
	}
	return total
}

func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartItem{}, s.cart...)
}

// CartSummary resolves every entry against the catalog. Dangling entries are listed
// as unavailable with a zero subtotal.
func (s *Store) CartSummary() models.CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := models.CartSummary{Lines: make([]models.CartLine, 0, len(s.cart))}
	for _, item := range s.cart {
		line := models.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
		}
		if p, ok := s.findProduct(item.ProductID); ok {
			line.Title = p.Title
			line.Type = p.Type()
			line.UnitPrice = p.Price
			line.Subtotal = p.Price * int64(item.Quantity)
			line.Available = true
		}
		summary.TotalItems += item.Quantity
		summary.Total += line.Subtotal
		summary.Lines = append(summary.Lines, line)
	}
	return summary
}

// capQuantity bounds a line quantity. Both operands of a merge are capped first,
// so the sum cannot overflow.
func capQuantity(quantity int) int {
	if quantity > models.MaxCartQuantity {
		return models.MaxCartQuantity
	}
	return quantity
}

func (s *Store) indexOfCartItem(productID string) int {
	for i, item := range s.cart {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
