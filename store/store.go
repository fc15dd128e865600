// Package store is the catalog state container: products, cart, favorites, the
// admin session flag and the active search/filter criteria. Every mutation is
// mirrored into a persistence.KeyValueStore as a whole-collection snapshot.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/persistence"
	"github.com/google/uuid"
)

// Collection names a persisted snapshot.
type Collection string

const (
	CollectionProducts     Collection = "products"
	CollectionCart         Collection = "cart"
	CollectionFavorites    Collection = "favorites"
	CollectionAdminSession Collection = "admin-session"
)

const adminSessionValue = "true"

// Authenticator decides whether an admin credential is accepted.
type Authenticator interface {
	Verify(credential string) bool
}

// AuthenticatorFunc adapts a plain function to Authenticator.
type AuthenticatorFunc func(credential string) bool

func (f AuthenticatorFunc) Verify(credential string) bool { return f(credential) }

type denyAll struct{}

func (denyAll) Verify(string) bool { return false }

// Store is safe for concurrent use. A single lock guards every collection together
// with its persisted mirror.
type Store struct {
	mu sync.RWMutex

	kv           persistence.KeyValueStore
	keyPrefix    string
	auth         Authenticator
	newID        func() string
	now          func() time.Time
	seed         func() []models.Product
	writeTimeout time.Duration
	onChange     []func(Collection)

	products   []models.Product
	cart       []models.CartItem
	favorites  []models.Favorite
	isAdmin    bool
	searchTerm string
	filters    models.FilterState
}

type Option func(*Store)

// WithAuthenticator sets the admin credential check. Without it every login fails.
func WithAuthenticator(a Authenticator) Option {
	return func(s *Store) {
		if a != nil {
			s.auth = a
		}
	}
}

// WithIDGenerator replaces the UUIDv7 product id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeed sets the catalog used when no products snapshot exists.
func WithSeed(products []models.Product) Option {
	return func(s *Store) {
		s.seed = func() []models.Product { return cloneProducts(products) }
	}
}

// WithWriteTimeout bounds each snapshot write.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// WithKeyPrefix namespaces the snapshot keys, e.g. "focusflash:" gives
// "focusflash:products".
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.keyPrefix = prefix
	}
}

// WithOnChange registers a callback run after a collection was mutated. Callbacks
// run outside the store lock.
func WithOnChange(fn func(Collection)) Option {
	return func(s *Store) {
		if fn != nil {
			s.onChange = append(s.onChange, fn)
		}
	}
}

// New builds the store and loads every snapshot from kv. Missing or unreadable
// snapshots fall back to the seed catalog (products) or to empty collections.
// Only a failing backend read is returned as an error.
func New(ctx context.Context, kv persistence.KeyValueStore, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("store: nil key-value store")
	}
	s := &Store{
		kv:           kv,
		auth:         denyAll{},
		newID:        newUUIDv7,
		now:          time.Now,
		seed:         DefaultCatalog,
		writeTimeout: 5 * time.Second,
		filters:      models.EmptyFilters(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Key returns the persisted key of a collection.
func (s *Store) Key(c Collection) string {
	return s.keyPrefix + string(c)
}

func (s *Store) load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, s.Key(CollectionProducts))
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	s.products = nil
	if ok {
		if err := json.Unmarshal(raw, &s.products); err != nil {
			log.Printf("[store.load] invalid products snapshot, using seed catalog: %v", err)
			s.products = nil
			ok = false
		}
	}
	if !ok || s.products == nil {
		s.products = s.seed()
	}

	raw, ok, err = s.kv.Get(ctx, s.Key(CollectionCart))
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	s.cart = []models.CartItem{}
	if ok {
		if err := json.Unmarshal(raw, &s.cart); err != nil || s.cart == nil {
			log.Printf("[store.load] invalid cart snapshot, starting empty: %v", err)
			s.cart = []models.CartItem{}
		}
	}
	s.cart = sanitizeCart(s.cart)

	raw, ok, err = s.kv.Get(ctx, s.Key(CollectionFavorites))
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	s.favorites = []models.Favorite{}
	if ok {
		if err := json.Unmarshal(raw, &s.favorites); err != nil || s.favorites == nil {
			log.Printf("[store.load] invalid favorites snapshot, starting empty: %v", err)
			s.favorites = []models.Favorite{}
		}
	}

	raw, ok, err = s.kv.Get(ctx, s.Key(CollectionAdminSession))
	if err != nil {
		return fmt.Errorf("load admin session: %w", err)
	}
	s.isAdmin = ok && string(raw) == adminSessionValue

	log.Printf("[store.load] %d products, %d cart items, %d favorites, admin=%t",
		len(s.products), len(s.cart), len(s.favorites), s.isAdmin)
	return nil
}

// persist writes one collection snapshot. Must be called with s.mu held.
// Failures are logged and never surfaced.
func (s *Store) persist(c Collection) {
	key := s.Key(c)
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	var (
		data []byte
		err  error
	)
	switch c {
	case CollectionProducts:
		data, err = json.Marshal(s.products)
	case CollectionCart:
		data, err = json.Marshal(s.cart)
	case CollectionFavorites:
		data, err = json.Marshal(s.favorites)
	case CollectionAdminSession:
		if !s.isAdmin {
			if err := s.kv.Delete(ctx, key); err != nil {
				log.Printf("[store.persist] failed to delete %s: %v", key, err)
			}
			return
		}
		data = []byte(adminSessionValue)
	}
	if err != nil {
		log.Printf("[store.persist] failed to encode %s: %v", key, err)
		return
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		log.Printf("[store.persist] failed to write %s: %v", key, err)
	}
}

// OnChange registers a callback on a constructed store, for components that are
// wired after New (the HTTP layer's caches).
func (s *Store) OnChange(fn func(Collection)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

func (s *Store) notify(c Collection) {
	s.mu.RLock()
	hooks := s.onChange
	s.mu.RUnlock()

	for _, fn := range hooks {
		fn(c)
	}
}

// sanitizeCart drops non-positive lines and caps oversized ones from a snapshot
// written by an older or foreign process.
func sanitizeCart(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		item.Quantity = capQuantity(item.Quantity)
		out = append(out, item)
	}
	return out
}

func cloneProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
