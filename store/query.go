package store

import (
	"sort"
	"strings"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/models"
)

func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	s.searchTerm = term
	s.mu.Unlock()
}

func (s *Store) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchTerm
}

func (s *Store) SetActiveFilters(f models.FilterState) {
	s.mu.Lock()
	s.filters = f.Clone()
	s.mu.Unlock()
}

func (s *Store) ActiveFilters() models.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Clone()
}

// ClearFilters resets every filter axis. The search term is kept.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.filters = models.EmptyFilters()
	s.mu.Unlock()
}

// FilteredProducts applies the store's own search term and filters in catalog order.
func (s *Store) FilteredProducts() []models.Product {
	s.mu.RLock()
	q := models.Query{Search: s.searchTerm, Filters: s.filters.Clone(), Sort: models.SortRelevance}
	s.mu.RUnlock()
	return s.QueryProducts(q)
}

// QueryProducts filters the catalog by q.Search (case-insensitive substring) and
// q.Filters, then orders it by q.Sort. Every ordering is stable.
func (s *Store) QueryProducts(q models.Query) []models.Product {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	s.mu.RLock()
	out := []models.Product{}
	for _, p := range s.products {
		if !q.Filters.Matches(p) || !matchesSearch(p, term) {
			continue
		}
		out = append(out, p.Clone())
	}
	s.mu.RUnlock()

	sortProducts(out, q.Sort)
	return out
}

func matchesSearch(p models.Product, term string) bool {
	if term == "" {
		return true
	}
	fields := []string{p.Title, p.Description, p.Banca, p.Area, p.Concurso}
	fields = append(fields, p.Tags...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, by models.SortOption) {
	switch by {
	case models.SortBestSellers:
		sort.SliceStable(products, func(i, j int) bool {
			return bestSellerRank(products[i]) < bestSellerRank(products[j])
		})
	case models.SortRecent:
		sort.SliceStable(products, func(i, j int) bool {
			return ParseLastUpdate(products[i].LastUpdate).After(ParseLastUpdate(products[j].LastUpdate))
		})
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	}
}

func bestSellerRank(p models.Product) int {
	switch {
	case p.Trending:
		return 0
	case p.Featured:
		return 1
	}
	return 2
}

var lastUpdateLayouts = []string{LastUpdateLayout, time.RFC3339, "2006-01-02"}

// ParseLastUpdate reads the dd/mm/yyyy display date, also accepting RFC 3339 and
// ISO dates. Unparseable values give the zero time.
func ParseLastUpdate(v string) time.Time {
	for _, layout := range lastUpdateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
