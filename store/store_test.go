package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func adminSecret(secret string) Authenticator {
	return AuthenticatorFunc(func(c string) bool { return c == secret })
}

func sequentialIDs() func() string {
	n := 100
	return func() string {
		n++
		return fmt.Sprintf("p-%d", n)
	}
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *persistence.MemoryStore) {
	t.Helper()
	kv := persistence.NewMemoryStore()
	base := []Option{
		WithAuthenticator(adminSecret("admin123")),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	}
	s, err := New(context.Background(), kv, append(base, opts...)...)
	require.NoError(t, err)
	return s, kv
}

func snapshot(t *testing.T, kv persistence.KeyValueStore, key string) ([]byte, bool) {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), key)
	require.NoError(t, err)
	return raw, ok
}

func newDeck(title string, price int64) models.Product {
	return models.Product{
		ProductInfo: models.ProductInfo{
			Title:  title,
			Banca:  "FGV",
			Area:   "Jurídica",
			Phase:  models.PhasePre,
			Period: models.Period30,
			Price:  price,
			Tags:   []string{"teste"},
		},
		Details: models.DeckDetails{NumCards: 10, Topics: []models.Topic{{Name: "Intro", Cards: 10, Weight: models.WeightLow}}},
	}
}

type failingKV struct {
	getErr error
	setErr error
}

func (f failingKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, f.getErr }
func (f failingKV) Set(context.Context, string, []byte) error        { return f.setErr }
func (f failingKV) Delete(context.Context, string) error             { return f.setErr }

// ═══════════════════════════════════════════════════════════
// Initialization
// ═══════════════════════════════════════════════════════════

func TestNew_SeedsEmptyBackend(t *testing.T) {
	s, _ := newTestStore(t)

	products := s.Products()
	require.Len(t, products, 7)
	assert.Equal(t, "1", products[0].ID)
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Favorites())
	assert.False(t, s.IsAdmin())
	assert.Equal(t, 0, s.ActiveFilters().Count())
}

func TestNew_LoadsSnapshots(t *testing.T) {
	ctx := context.Background()
	kv := persistence.NewMemoryStore()

	deck := newDeck("Persistido", 500)
	deck.ID = "42"
	products, err := json.Marshal([]models.Product{deck})
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "products", products))
	require.NoError(t, kv.Set(ctx, "cart", []byte(`[{"productId":"42","quantity":3,"addedAt":"2025-01-15T10:00:00.000Z"}]`)))
	require.NoError(t, kv.Set(ctx, "favorites", []byte(`[{"productId":"42","addedAt":"2025-01-15T10:00:00Z"}]`)))
	require.NoError(t, kv.Set(ctx, "admin-session", []byte(`true`)))

	s, err := New(ctx, kv)
	require.NoError(t, err)

	got, ok := s.GetProductByID("42")
	require.True(t, ok)
	assert.Equal(t, "Persistido", got.Title)
	assert.Len(t, s.Products(), 1)
	assert.Equal(t, int64(1500), s.CartTotal())
	assert.True(t, s.IsFavorite("42"))
	assert.True(t, s.IsAdmin())
}

func TestNew_InvalidSnapshotsFallBack(t *testing.T) {
	ctx := context.Background()
	kv := persistence.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, "products", []byte(`{not json`)))
	require.NoError(t, kv.Set(ctx, "cart", []byte(`"nope"`)))
	require.NoError(t, kv.Set(ctx, "favorites", []byte(`null`)))
	require.NoError(t, kv.Set(ctx, "admin-session", []byte(`false`)))

	s, err := New(ctx, kv)
	require.NoError(t, err)

	assert.Len(t, s.Products(), 7)
	assert.Empty(t, s.Cart())
	assert.NotNil(t, s.Favorites())
	assert.False(t, s.IsAdmin())
}

func TestNew_KeyPrefixAndSeed(t *testing.T) {
	ctx := context.Background()
	kv := persistence.NewMemoryStore()
	seed := []models.Product{newDeck("Único", 100)}
	seed[0].ID = "only"

	s, err := New(ctx, kv, WithKeyPrefix("ff:"), WithSeed(seed))
	require.NoError(t, err)
	require.Len(t, s.Products(), 1)

	s.AddToCart("only", 1)
	_, ok := snapshot(t, kv, "ff:cart")
	assert.True(t, ok)
	_, ok = snapshot(t, kv, "cart")
	assert.False(t, ok)
	assert.Equal(t, "ff:products", s.Key(CollectionProducts))
}

func TestNew_BackendReadError(t *testing.T) {
	_, err := New(context.Background(), failingKV{getErr: errors.New("connection refused")})
	assert.Error(t, err)

	_, err = New(context.Background(), nil)
	assert.Error(t, err)
}

func TestPersistFailuresAreSwallowed(t *testing.T) {
	s, err := New(context.Background(), failingKV{setErr: errors.New("disk full")},
		WithAuthenticator(adminSecret("admin123")))
	require.NoError(t, err)

	s.AddToCart("1", 2)
	assert.Equal(t, 2, s.Cart()[0].Quantity)
	assert.True(t, s.AdminLogin("admin123"))
	s.AdminLogout()
	assert.False(t, s.IsAdmin())
}

// ═══════════════════════════════════════════════════════════
// Products
// ═══════════════════════════════════════════════════════════

func TestAddProduct(t *testing.T) {
	s, kv := newTestStore(t)

	input := newDeck("Direito Penal: Parte Geral", 9900)
	input.ID = "ignored"
	created, err := s.AddProduct(input)
	require.NoError(t, err)

	assert.Equal(t, "p-101", created.ID)
	assert.Equal(t, "direito-penal-parte-geral", created.Slug)
	assert.Equal(t, "14/03/2025", created.LastUpdate)

	got, ok := s.GetProductByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	raw, ok := snapshot(t, kv, "products")
	require.True(t, ok)
	var persisted []models.Product
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 8)
	assert.Equal(t, created, persisted[7])
}

func TestAddProduct_RoundTripsEveryVariant(t *testing.T) {
	s, _ := newTestStore(t)

	for _, p := range DefaultCatalog() {
		t.Run(string(p.Type()), func(t *testing.T) {
			created, err := s.AddProduct(p)
			require.NoError(t, err)

			got, ok := s.GetProductByID(created.ID)
			require.True(t, ok)
			assert.Equal(t, created, got)
			assert.Equal(t, p.Details, got.Details)
		})
	}
}

func TestAddProduct_Rejects(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddProduct(models.Product{ProductInfo: models.ProductInfo{Title: "sem tipo"}})
	assert.ErrorIs(t, err, models.ErrMissingDetails)

	bad := newDeck("Desconto", 100)
	bad.Details = models.BundleDetails{Discount: 140}
	_, err = s.AddProduct(bad)
	assert.ErrorIs(t, err, models.ErrInvalidDetails)

	assert.Len(t, s.Products(), 7)
}

func TestReturnedProductsAreCopies(t *testing.T) {
	s, _ := newTestStore(t)

	p, ok := s.GetProductByID("1")
	require.True(t, ok)
	p.Tags[0] = "mutated"
	deck, _ := p.Deck()
	deck.Topics[0].Name = "mutated"

	again, _ := s.GetProductByID("1")
	assert.Equal(t, "direito", again.Tags[0])
	againDeck, _ := again.Deck()
	assert.Equal(t, "Princípios da Administração", againDeck.Topics[0].Name)
}

func TestUpdateProduct(t *testing.T) {
	s, _ := newTestStore(t)

	title := "Direito Administrativo FGV 2026"
	price := int64(15999)
	require.NoError(t, s.UpdateProduct("1", models.ProductPatch{Title: &title, Price: &price}))

	got, _ := s.GetProductByID("1")
	assert.Equal(t, title, got.Title)
	assert.Equal(t, price, got.Price)
	assert.Equal(t, "FGV", got.Banca)
	assert.Equal(t, models.TypeDeck, got.Type())
}

func TestUpdateProduct_MissingIsNoop(t *testing.T) {
	s, kv := newTestStore(t)
	title := "x"

	assert.NoError(t, s.UpdateProduct("does-not-exist", models.ProductPatch{Title: &title}))
	_, ok := snapshot(t, kv, "products")
	assert.False(t, ok, "no write for a no-op update")
}

func TestUpdateProduct_SwitchVariant(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.UpdateProduct("4", models.ProductPatch{Details: models.MindMapDetails{
		Nodes:           40,
		DownloadFormats: []models.DownloadFormat{models.DownloadSVG},
	}})
	require.NoError(t, err)

	got, _ := s.GetProductByID("4")
	assert.Equal(t, models.TypeMindMap, got.Type())
	mm, ok := got.MindMap()
	require.True(t, ok)
	assert.Equal(t, 40, mm.Nodes)
	_, isSummary := got.Summary()
	assert.False(t, isSummary)
}

func TestUpdateProduct_InvalidLeavesProductUntouched(t *testing.T) {
	s, _ := newTestStore(t)
	before, _ := s.GetProductByID("7")

	err := s.UpdateProduct("7", models.ProductPatch{Details: models.BundleDetails{Discount: -5}})
	assert.ErrorIs(t, err, models.ErrInvalidDetails)

	after, _ := s.GetProductByID("7")
	assert.Equal(t, before, after)
}

func TestUpdateProduct_FromPartialJSON(t *testing.T) {
	s, _ := newTestStore(t)

	current, _ := s.GetProductByID("1")
	patch, err := models.ParseProductPatch([]byte(`{"numCards": 700, "featured": false}`), current)
	require.NoError(t, err)
	require.NoError(t, s.UpdateProduct("1", patch))

	got, _ := s.GetProductByID("1")
	deck, _ := got.Deck()
	assert.Equal(t, 700, deck.NumCards)
	assert.Len(t, deck.Topics, 5)
	assert.False(t, got.Featured)

	_, err = models.ParseProductPatch([]byte(`{"type": "summary", "pages": 10}`), got)
	assert.ErrorIs(t, err, models.ErrVariantMismatch)
}

func TestUpdateProductJSON(t *testing.T) {
	s, _ := newTestStore(t)

	updated, found, err := s.UpdateProductJSON("1", []byte(`{"title": "Novo", "numCards": 700}`))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Novo", updated.Title)
	deck, _ := updated.Deck()
	assert.Equal(t, 700, deck.NumCards)
	assert.True(t, deck.IncludesJurisprudence)

	_, found, err = s.UpdateProductJSON("nope", []byte(`{"title": "x"}`))
	assert.False(t, found)
	assert.NoError(t, err)

	_, found, err = s.UpdateProductJSON("1", []byte(`{"type": "bundle"}`))
	assert.True(t, found)
	assert.ErrorIs(t, err, models.ErrVariantMismatch)

	_, _, err = s.UpdateProductJSON("1", []byte(`{"price": -1}`))
	assert.ErrorIs(t, err, models.ErrInvalidDetails)

	unchanged, found, err := s.UpdateProductJSON("1", []byte(`{}`))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Novo", unchanged.Title)
}

func TestUpdateProductJSON_ConcurrentVariantFields(t *testing.T) {
	for i := 0; i < 50; i++ {
		s, _ := newTestStore(t)

		var wg sync.WaitGroup
		for _, body := range []string{`{"numCards": 900}`, `{"includesJurisprudence": false}`} {
			wg.Add(1)
			go func(body string) {
				defer wg.Done()
				_, _, err := s.UpdateProductJSON("1", []byte(body))
				assert.NoError(t, err)
			}(body)
		}
		wg.Wait()

		got, _ := s.GetProductByID("1")
		deck, _ := got.Deck()
		require.Equal(t, 900, deck.NumCards)
		require.False(t, deck.IncludesJurisprudence)
	}
}

func TestDeleteProduct_DoesNotCascade(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddToCart("2", 1)
	s.AddToFavorites("2")

	s.DeleteProduct("2")

	_, ok := s.GetProductByID("2")
	assert.False(t, ok)
	assert.Len(t, s.Cart(), 1)
	assert.True(t, s.IsFavorite("2"))
	assert.Equal(t, int64(0), s.CartTotal())

	s.DeleteProduct("2")
	assert.Len(t, s.Products(), 6)
}

func TestGetProductsByType(t *testing.T) {
	s, _ := newTestStore(t)

	tests := []struct {
		productType models.ProductType
		wantIDs     []string
	}{
		{models.TypeDeck, []string{"1", "2"}},
		{models.TypeSummary, []string{"3", "4"}},
		{models.TypeMindMap, []string{"5", "6"}},
		{models.TypeBundle, []string{"7"}},
		{models.ProductType("podcast"), []string{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.productType), func(t *testing.T) {
			ids := []string{}
			for _, p := range s.GetProductsByType(tt.productType) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetProductBySlug(t *testing.T) {
	s, _ := newTestStore(t)

	p, ok := s.GetProductBySlug("pacote-completo-tribunais-fgv")
	require.True(t, ok)
	assert.Equal(t, "7", p.ID)

	_, ok = s.GetProductBySlug("nada")
	assert.False(t, ok)
}

func TestReplaceProducts(t *testing.T) {
	s, kv := newTestStore(t)
	one := newDeck("Substituto", 100)
	one.ID = "x1"

	require.NoError(t, s.ReplaceProducts([]models.Product{one}))
	assert.Len(t, s.Products(), 1)
	_, ok := snapshot(t, kv, "products")
	assert.True(t, ok)

	assert.Error(t, s.ReplaceProducts([]models.Product{{}}))
	assert.Len(t, s.Products(), 1)
}

// ═══════════════════════════════════════════════════════════
// Cart
// ═══════════════════════════════════════════════════════════

func TestAddToCart_MergesQuantities(t *testing.T) {
	s, kv := newTestStore(t)

	s.AddToCart("1", 2)
	s.AddToCart("1", 3)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "1", cart[0].ProductID)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, fixedNow, cart[0].AddedAt)

	p, _ := s.GetProductByID("1")
	assert.Equal(t, 5*p.Price, s.CartTotal())

	raw, ok := snapshot(t, kv, "cart")
	require.True(t, ok)
	var persisted []models.CartItem
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, cart, persisted)
}

func TestAddToCart_DefaultQuantity(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart("3", 0)
	s.AddToCart("3", -4)
	assert.Equal(t, 2, s.Cart()[0].Quantity)
}

func TestAddToCart_DanglingReference(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart("ghost", 4)
	s.AddToCart("4", 1)

	assert.Len(t, s.Cart(), 2)
	assert.Equal(t, int64(2999), s.CartTotal())

	summary := s.CartSummary()
	require.Len(t, summary.Lines, 2)
	assert.False(t, summary.Lines[0].Available)
	assert.Equal(t, int64(0), summary.Lines[0].Subtotal)
	assert.True(t, summary.Lines[1].Available)
	assert.Equal(t, "Português para Concursos - Teoria Essencial", summary.Lines[1].Title)
	assert.Equal(t, 5, summary.TotalItems)
	assert.Equal(t, int64(2999), summary.Total)
}

func TestCartTotal_OrderIndependent(t *testing.T) {
	a, _ := newTestStore(t)
	a.AddToCart("1", 2)
	a.AddToCart("3", 1)
	a.AddToCart("1", 1)

	b, _ := newTestStore(t)
	b.AddToCart("3", 1)
	b.AddToCart("1", 3)

	assert.Equal(t, a.CartTotal(), b.CartTotal())
	assert.Equal(t, int64(3*14999+4999), a.CartTotal())
}

func TestUpdateCartQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddToCart("1", 2)

	s.UpdateCartQuantity("1", 7)
	assert.Equal(t, 7, s.Cart()[0].Quantity)

	s.UpdateCartQuantity("2", 3)
	assert.Len(t, s.Cart(), 1, "absent entries are not created")

	s.UpdateCartQuantity("1", 0)
	assert.Empty(t, s.Cart())
}

func TestAddToCart_SaturatesQuantity(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart("1", math.MaxInt)
	s.AddToCart("1", 1)
	s.AddToCart("4", models.MaxCartQuantity-1)
	s.AddToCart("4", 5)

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, models.MaxCartQuantity, cart[0].Quantity)
	assert.Equal(t, models.MaxCartQuantity, cart[1].Quantity)
	assert.Equal(t, int64(models.MaxCartQuantity)*(14999+2999), s.CartTotal())
	assert.Equal(t, s.CartTotal(), s.Stats().TotalRevenue)
}

func TestUpdateCartQuantity_Capped(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddToCart("2", 1)

	s.UpdateCartQuantity("2", math.MaxInt)
	assert.Equal(t, models.MaxCartQuantity, s.Cart()[0].Quantity)
	assert.Equal(t, int64(models.MaxCartQuantity)*18999, s.CartSummary().Total)
}

func TestNew_SanitizesCartSnapshot(t *testing.T) {
	kv := persistence.NewMemoryStore()
	raw := `[{"productId":"1","quantity":5000},{"productId":"2","quantity":-3},{"productId":"3","quantity":2}]`
	require.NoError(t, kv.Set(context.Background(), "cart", []byte(raw)))

	s, err := New(context.Background(), kv)
	require.NoError(t, err)

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, models.MaxCartQuantity, cart[0].Quantity)
	assert.Equal(t, "3", cart[1].ProductID)
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddToCart("1", 1)
	s.AddToCart("2", 1)

	s.RemoveFromCart("1")
	s.RemoveFromCart("1")

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "2", cart[0].ProductID)
}

func TestClearCart(t *testing.T) {
	s, kv := newTestStore(t)
	s.AddToCart("1", 1)
	s.ClearCart()

	assert.Empty(t, s.Cart())
	raw, ok := snapshot(t, kv, "cart")
	require.True(t, ok)
	assert.JSONEq(t, `[]`, string(raw))
}

// ═══════════════════════════════════════════════════════════
// Favorites
// ═══════════════════════════════════════════════════════════

func TestFavorites(t *testing.T) {
	s, kv := newTestStore(t)

	s.AddToFavorites("5")
	s.AddToFavorites("5")
	s.AddToFavorites("ghost")

	assert.Len(t, s.Favorites(), 2)
	assert.True(t, s.IsFavorite("5"))
	assert.False(t, s.IsFavorite("1"))

	products := s.FavoriteProducts()
	require.Len(t, products, 1)
	assert.Equal(t, "5", products[0].ID)

	s.RemoveFromFavorites("5")
	assert.False(t, s.IsFavorite("5"))
	s.RemoveFromFavorites("5")

	raw, ok := snapshot(t, kv, "favorites")
	require.True(t, ok)
	var persisted []models.Favorite
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "ghost", persisted[0].ProductID)
}

// ═══════════════════════════════════════════════════════════
// Admin session
// ═══════════════════════════════════════════════════════════

func TestAdminSession(t *testing.T) {
	s, kv := newTestStore(t)

	assert.False(t, s.AdminLogin("wrong"))
	assert.False(t, s.IsAdmin())
	_, ok := snapshot(t, kv, "admin-session")
	assert.False(t, ok)

	assert.False(t, s.AdminLogin("ADMIN123"))

	assert.True(t, s.AdminLogin("admin123"))
	assert.True(t, s.IsAdmin())
	raw, ok := snapshot(t, kv, "admin-session")
	require.True(t, ok)
	assert.Equal(t, "true", string(raw))

	s.AdminLogout()
	assert.False(t, s.IsAdmin())
	_, ok = snapshot(t, kv, "admin-session")
	assert.False(t, ok)
}

func TestAdminLogin_DefaultDeniesAll(t *testing.T) {
	s, err := New(context.Background(), persistence.NewMemoryStore())
	require.NoError(t, err)
	assert.False(t, s.AdminLogin("admin123"))
	assert.False(t, s.AdminLogin(""))
}

// ═══════════════════════════════════════════════════════════
// Stats & change notifications
// ═══════════════════════════════════════════════════════════

func TestStats(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddToCart("7", 1)

	stats := s.Stats()
	assert.Equal(t, 7, stats.TotalProducts)
	assert.Equal(t, map[models.ProductType]int{
		models.TypeDeck: 2, models.TypeSummary: 2, models.TypeMindMap: 2, models.TypeBundle: 1,
	}, stats.ProductsByType)
	assert.Equal(t, int64(29999), stats.TotalRevenue)

	ids := []string{}
	for _, p := range stats.PopularProducts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
}

func TestStats_AllTypesPresent(t *testing.T) {
	s, _ := newTestStore(t, WithSeed(nil))

	stats := s.Stats()
	assert.Equal(t, 0, stats.TotalProducts)
	for _, pt := range models.ProductTypes {
		count, ok := stats.ProductsByType[pt]
		assert.True(t, ok, "missing key %s", pt)
		assert.Zero(t, count)
	}
	assert.NotNil(t, stats.PopularProducts)
}

func TestOnChange(t *testing.T) {
	var got []Collection
	s, _ := newTestStore(t, WithOnChange(func(c Collection) { got = append(got, c) }))

	s.AddToCart("1", 1)
	s.AddToFavorites("1")
	s.DeleteProduct("1")
	s.DeleteProduct("1")
	s.AdminLogin("admin123")

	assert.Equal(t, []Collection{CollectionCart, CollectionFavorites, CollectionProducts, CollectionAdminSession}, got)
}

func TestOnChange_RegisteredAfterNew(t *testing.T) {
	var early, late []Collection
	s, _ := newTestStore(t, WithOnChange(func(c Collection) { early = append(early, c) }))

	s.AddToCart("1", 1)
	s.OnChange(func(c Collection) { late = append(late, c) })
	s.OnChange(nil)
	_, _, err := s.UpdateProductJSON("1", []byte(`{"featured": false}`))
	require.NoError(t, err)

	assert.Equal(t, []Collection{CollectionCart, CollectionProducts}, early)
	assert.Equal(t, []Collection{CollectionProducts}, late)
}
