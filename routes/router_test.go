package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	filter_cache "github.com/YokoReis/focus-flash-forge-23/cache"
	"github.com/YokoReis/focus-flash-forge-23/middleware"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/persistence"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/YokoReis/focus-flash-forge-23/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeImages struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (f *fakeImages) UploadProductImage(_ context.Context, file io.Reader, productID, filename string) (string, error) {
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded = append(f.uploaded, productID)
	return "https://res.cloudinary.test/" + services.ProductImageFolder(productID) + "/" + filename, nil
}

func (f *fakeImages) DeleteProductImages(_ context.Context, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, productID)
	return nil
}

type testApp struct {
	router   *gin.Engine
	store    *store.Store
	kv       *persistence.MemoryStore
	activity *services.ActivityLogService
	images   *fakeImages
}

func newTestApp(t *testing.T, customize ...func(*Dependencies)) *testApp {
	t.Helper()

	kv := persistence.NewMemoryStore()
	st, err := store.New(context.Background(), kv,
		store.WithAuthenticator(services.NewSharedSecretAuthenticator("admin123")),
	)
	require.NoError(t, err)

	jwtService, err := services.NewJWTService("router-test-secret", time.Hour)
	require.NoError(t, err)

	app := &testApp{store: st, kv: kv, activity: services.NewActivityLogService(50), images: &fakeImages{}}
	deps := Dependencies{
		Store:       st,
		JWT:         jwtService,
		Activity:    app.activity,
		Images:      app.images,
		CORSOrigins: []string{"http://localhost:3000"},
	}
	for _, fn := range customize {
		fn(&deps)
	}
	app.router = NewRouter(deps)
	return app
}

type envelope struct {
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Error   bool               `json:"error"`
	Meta    *models.Pagination `json:"meta"`
}

func (a *testApp) do(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	w, env := a.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "admin123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AdminLoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func cardIDs(t *testing.T, raw json.RawMessage) []string {
	t.Helper()
	ids := []string{}
	for _, card := range decode[[]models.StorefrontProductResponse](t, raw) {
		ids = append(ids, card.ID)
	}
	return ids
}

// ═══════════════════════════════════════════════════════════
// Infrastructure
// ═══════════════════════════════════════════════════════════

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	w, env := app.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"products":7}`, string(env.Data))

	w, _ = app.do(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestSwaggerDocs(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths, "/store/products")
	assert.Contains(t, doc.Paths["/admin/products/{id}"], "patch")
	assert.Contains(t, doc.Paths["/store/cart/items"], "post")
}

// ═══════════════════════════════════════════════════════════
// Storefront
// ═══════════════════════════════════════════════════════════

func TestStorefrontProducts(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantIDs    []string
	}{
		{"whole catalog", "/api/v1/store/products", http.StatusOK, []string{"1", "2", "3", "4", "5", "6", "7"}},
		{"single type", "/api/v1/store/products?type=deck", http.StatusOK, []string{"1", "2"}},
		{"types OR within axis", "/api/v1/store/products?type=summary&type=mindmap", http.StatusOK, []string{"3", "4", "5", "6"}},
		{"comma separated", "/api/v1/store/products?type=summary,mindmap", http.StatusOK, []string{"3", "4", "5", "6"}},
		{"axes AND", "/api/v1/store/products?banca=FGV&area=Jur%C3%ADdica", http.StatusOK, []string{"1", "5"}},
		{"price ascending is stable", "/api/v1/store/products?sortBy=preco-menor&limit=3", http.StatusOK, []string{"4", "6", "5"}},
		{"price descending", "/api/v1/store/products?sortBy=preco-maior&limit=2", http.StatusOK, []string{"7", "2"}},
		{"second page", "/api/v1/store/products?limit=2&page=2", http.StatusOK, []string{"3", "4"}},
		{"page past the end", "/api/v1/store/products?page=9", http.StatusOK, []string{}},
		{"unknown sort", "/api/v1/store/products?sortBy=popular", http.StatusBadRequest, nil},
		{"unknown type", "/api/v1/store/products?type=ebook", http.StatusBadRequest, nil},
		{"unknown period", "/api/v1/store/products?period=20", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := app.do(t, http.MethodGet, tt.path, nil, "")
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.True(t, env.Error)
				return
			}
			assert.Equal(t, tt.wantIDs, cardIDs(t, env.Data))
		})
	}
}

func TestStorefrontProducts_Pagination(t *testing.T) {
	app := newTestApp(t)

	_, env := app.do(t, http.MethodGet, "/api/v1/store/products?limit=2", nil, "")
	require.NotNil(t, env.Meta)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 2, Total: 7, TotalPages: 4}, *env.Meta)

	// Out-of-range limits fall back to the default page size.
	_, env = app.do(t, http.MethodGet, "/api/v1/store/products?limit=500", nil, "")
	require.NotNil(t, env.Meta)
	assert.Equal(t, 12, env.Meta.Limit)
}

func TestStorefrontProducts_UsesSessionFilters(t *testing.T) {
	app := newTestApp(t)

	w, _ := app.do(t, http.MethodPut, "/api/v1/store/filters", map[string]any{"types": []string{"bundle"}}, "")
	require.Equal(t, http.StatusOK, w.Code)

	_, env := app.do(t, http.MethodGet, "/api/v1/store/products", nil, "")
	assert.Equal(t, []string{"7"}, cardIDs(t, env.Data))

	// Explicit params win over the session state.
	_, env = app.do(t, http.MethodGet, "/api/v1/store/products?type=deck", nil, "")
	assert.Equal(t, []string{"1", "2"}, cardIDs(t, env.Data))

	w, _ = app.do(t, http.MethodPut, "/api/v1/store/search", map[string]string{"term": "  zzz-nothing  "}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "zzz-nothing", app.store.SearchTerm())

	_, env = app.do(t, http.MethodGet, "/api/v1/store/products", nil, "")
	assert.Empty(t, cardIDs(t, env.Data))

	// Clearing filters keeps the search term.
	w, env = app.do(t, http.MethodDelete, "/api/v1/store/filters", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[map[string]any](t, env.Data)
	assert.Equal(t, "zzz-nothing", state["searchTerm"])
	assert.EqualValues(t, 0, state["activeCount"])
}

func TestSetActiveFilters_Invalid(t *testing.T) {
	app := newTestApp(t)

	w, _ := app.do(t, http.MethodPut, "/api/v1/store/filters", map[string]any{"phases": []string{"durante"}}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, app.store.ActiveFilters().Count())

	w, _ = app.do(t, http.MethodPut, "/api/v1/store/filters", "{not json", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorefrontProductLookups(t *testing.T) {
	app := newTestApp(t)

	w, env := app.do(t, http.MethodGet, "/api/v1/store/products/3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[models.Product](t, env.Data)
	assert.Equal(t, models.TypeSummary, p.Type())

	w, env = app.do(t, http.MethodGet, "/api/v1/store/products/slug/mapa-mental-processo-civil", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", decode[models.Product](t, env.Data).ID)

	w, _ = app.do(t, http.MethodGet, "/api/v1/store/products/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = app.do(t, http.MethodGet, "/api/v1/store/products/slug/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = app.do(t, http.MethodGet, "/api/v1/store/products/type/mindmap", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"5", "6"}, cardIDs(t, env.Data))

	w, _ = app.do(t, http.MethodGet, "/api/v1/store/products/type/ebook", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilterMetadata(t *testing.T) {
	app := newTestApp(t)

	w, env := app.do(t, http.MethodGet, "/api/v1/store/filters/metadata", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	meta := decode[models.FilterMetadata](t, env.Data)

	counts := map[string]int{}
	for _, o := range meta.Types {
		counts[o.Value] = o.Count
	}
	assert.Equal(t, map[string]int{"deck": 2, "summary": 2, "mindmap": 2, "bundle": 1}, counts)
	assert.Equal(t, "Mapas Mentais", meta.Types[2].Label)
	require.NotNil(t, meta.PriceRange)
	assert.Equal(t, models.PriceRangeData{Min: 2999, Max: 29999}, *meta.PriceRange)

	// A product mutation invalidates the cached metadata.
	app.store.DeleteProduct("7")
	_, env = app.do(t, http.MethodGet, "/api/v1/store/filters/metadata", nil, "")
	meta = decode[models.FilterMetadata](t, env.Data)
	assert.Equal(t, 0, meta.Types[3].Count)
	assert.Equal(t, int64(18999), meta.PriceRange.Max)
}

func TestSuggestions(t *testing.T) {
	app := newTestApp(t)

	valid := map[string]string{"area": "Fiscal", "banca": "FGV", "fase": "pos", "prazo": "60"}
	w, env := app.do(t, http.MethodPost, "/api/v1/store/suggestions", valid, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Suggestion](t, env.Data), 3)

	for name, body := range map[string]map[string]string{
		"missing banca":  {"area": "Fiscal", "fase": "pos", "prazo": "60"},
		"unknown phase":  {"area": "Fiscal", "banca": "FGV", "fase": "durante", "prazo": "60"},
		"unknown period": {"area": "Fiscal", "banca": "FGV", "fase": "pos", "prazo": "20"},
	} {
		t.Run(name, func(t *testing.T) {
			w, _ := app.do(t, http.MethodPost, "/api/v1/store/suggestions", body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// ═══════════════════════════════════════════════════════════
// Cart & favorites
// ═══════════════════════════════════════════════════════════

func TestCartFlow(t *testing.T) {
	app := newTestApp(t)

	w, env := app.do(t, http.MethodPost, "/api/v1/store/cart/items", map[string]any{"productId": "1", "quantity": 2}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(29998), decode[models.CartSummary](t, env.Data).Total)

	// Quantity defaults to one and adds to an existing line.
	app.do(t, http.MethodPost, "/api/v1/store/cart/items", map[string]any{"productId": "3"}, "")
	_, env = app.do(t, http.MethodPost, "/api/v1/store/cart/items", map[string]any{"productId": "1"}, "")
	summary := decode[models.CartSummary](t, env.Data)
	require.Len(t, summary.Lines, 2)
	assert.Equal(t, 3, summary.Lines[0].Quantity)
	assert.Equal(t, int64(3*14999+4999), summary.Total)

	w, _ = app.do(t, http.MethodPost, "/api/v1/store/cart/items", map[string]any{"productId": "999"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = app.do(t, http.MethodPost, "/api/v1/store/cart/items", map[string]any{"quantity": 1}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Zero removes the line.
	w, env = app.do(t, http.MethodPatch, "/api/v1/store/cart/items/1", map[string]any{"quantity": 0}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.CartSummary](t, env.Data).Lines, 1)

	w, _ = app.do(t, http.MethodPatch, "/api/v1/store/cart/items/3", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, env = app.do(t, http.MethodGet, "/api/v1/store/cart/total", nil, "")
	total := decode[models.CartTotalResponse](t, env.Data)
	assert.Equal(t, int64(4999), total.Total)
	assert.Equal(t, "R$ 49,99", total.Formatted)

	// A deleted product stays in the cart as unavailable.
	app.store.DeleteProduct("3")
	_, env = app.do(t, http.MethodGet, "/api/v1/store/cart", nil, "")
	summary = decode[models.CartSummary](t, env.Data)
	require.Len(t, summary.Lines, 1)
	assert.False(t, summary.Lines[0].Available)
	assert.Zero(t, summary.Total)

	w, _ = app.do(t, http.MethodDelete, "/api/v1/store/cart/items/3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, app.store.Cart())
}

func TestCartQuote(t *testing.T) {
	app := newTestApp(t)

	w, _ := app.do(t, http.MethodGet, "/api/v1/store/cart/quote.pdf", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	app.store.AddToCart("7", 1)

	w, _ = app.do(t, http.MethodGet, "/api/v1/store/cart/quote.pdf", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orcamento-")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	// No mailer configured.
	w, _ = app.do(t, http.MethodPost, "/api/v1/store/cart/quote/email", map[string]string{"email": "aluno@example.com"}, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w, _ = app.do(t, http.MethodPost, "/api/v1/store/cart/quote/email", map[string]string{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = app.do(t, http.MethodDelete, "/api/v1/store/cart", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = app.do(t, http.MethodPost, "/api/v1/store/cart/quote/email", map[string]string{"email": "aluno@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoritesFlow(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 2; i++ {
		w, _ := app.do(t, http.MethodPost, "/api/v1/store/favorites/5", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	_, env := app.do(t, http.MethodGet, "/api/v1/store/favorites", nil, "")
	favorites := decode[models.FavoritesResponse](t, env.Data)
	assert.Len(t, favorites.Items, 1)
	require.Len(t, favorites.Products, 1)
	assert.True(t, favorites.Products[0].IsFavorite)

	_, env = app.do(t, http.MethodGet, "/api/v1/store/products/type/mindmap", nil, "")
	cards := decode[[]models.StorefrontProductResponse](t, env.Data)
	assert.True(t, cards[0].IsFavorite)
	assert.False(t, cards[1].IsFavorite)

	_, env = app.do(t, http.MethodGet, "/api/v1/store/favorites/5", nil, "")
	assert.True(t, decode[models.FavoriteStatusResponse](t, env.Data).IsFavorite)

	app.do(t, http.MethodDelete, "/api/v1/store/favorites/5", nil, "")
	_, env = app.do(t, http.MethodGet, "/api/v1/store/favorites/5", nil, "")
	assert.False(t, decode[models.FavoriteStatusResponse](t, env.Data).IsFavorite)

	w, _ := app.do(t, http.MethodPost, "/api/v1/store/favorites/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ═══════════════════════════════════════════════════════════
// Admin
// ═══════════════════════════════════════════════════════════

func TestAdminSession(t *testing.T) {
	app := newTestApp(t)

	w, _ := app.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, app.store.IsAdmin())

	w, _ = app.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := app.login(t)
	assert.True(t, app.store.IsAdmin())
	raw, ok, err := app.kv.Get(context.Background(), app.store.Key(store.CollectionAdminSession))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", string(raw))

	w, env := app.do(t, http.MethodGet, "/api/v1/admin/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[models.AdminMeResponse](t, env.Data)
	assert.True(t, me.IsAdmin)
	assert.Equal(t, "admin", me.Subject)

	w, _ = app.do(t, http.MethodGet, "/api/v1/admin/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = app.do(t, http.MethodPost, "/api/v1/admin/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, app.store.IsAdmin())
	_, ok, err = app.kv.Get(context.Background(), app.store.Key(store.CollectionAdminSession))
	require.NoError(t, err)
	assert.False(t, ok)

	// The token outlives the session but no longer grants access.
	w, _ = app.do(t, http.MethodGet, "/api/v1/admin/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	logins := app.activity.Recent(0, models.ActionAdminLogin)
	require.Len(t, logins, 2)
	assert.Equal(t, models.StatusSuccess, logins[0].Status)
	assert.Equal(t, models.StatusFailed, logins[1].Status)
}

func TestAdminLogin_SetsCookie(t *testing.T) {
	app := newTestApp(t)

	w, _ := app.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "admin123"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AdminCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

const newDeckJSON = `{
	"id": "ignored",
	"type": "deck",
	"title": "Direito Tributário Essencial",
	"description": "Flashcards de tributário",
	"banca": "FGV",
	"area": "Fiscal",
	"phase": "pre",
	"period": "45",
	"price": 8990,
	"version": "1.0",
	"tags": ["tributário"],
	"featured": false,
	"trending": false,
	"numCards": 300,
	"includesJurisprudence": true,
	"topics": [{"name": "ICMS", "cards": 120, "weight": "Alta incidência"}],
	"previewCards": []
}`

func TestAdminProductCRUD(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	// Mutations require auth.
	w, _ := app.do(t, http.MethodPost, "/api/v1/admin/products", newDeckJSON, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := app.do(t, http.MethodPost, "/api/v1/admin/products", newDeckJSON, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Product](t, env.Data)
	assert.NotEqual(t, "ignored", created.ID)
	assert.Equal(t, "direito-tribut-rio-essencial", created.Slug)
	assert.NotEmpty(t, created.LastUpdate)
	assert.Len(t, app.store.Products(), 8)

	entries := app.activity.Recent(1, models.ActionCreateProduct)
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ResourceID)
	assert.Equal(t, "Direito Tributário Essencial", entries[0].ResourceName)

	path := "/api/v1/admin/products/" + created.ID

	// Same-variant fields merge into the existing payload.
	w, env = app.do(t, http.MethodPatch, path, `{"title":"Tributário Avançado","numCards":350}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Product](t, env.Data)
	assert.Equal(t, "Tributário Avançado", updated.Title)
	deck, ok := updated.Deck()
	require.True(t, ok)
	assert.Equal(t, 350, deck.NumCards)
	assert.True(t, deck.IncludesJurisprudence)

	// Switching variant without the new variant's fields is rejected.
	w, _ = app.do(t, http.MethodPatch, path, `{"type":"bundle"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = app.do(t, http.MethodPatch, path, `{"type":"ebook"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = app.do(t, http.MethodPatch, path, `{"pages":10}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = app.do(t, http.MethodPatch, path, `{"price":-1}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	p, _ := app.store.GetProductByID(created.ID)
	assert.Equal(t, models.TypeDeck, p.Type())
	assert.Equal(t, int64(8990), p.Price)

	w, env = app.do(t, http.MethodPatch, path, `{"type":"bundle","products":[{"type":"deck","id":"1"}],"discount":15}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	bundle, ok := decode[models.Product](t, env.Data).Bundle()
	require.True(t, ok)
	assert.Equal(t, 15, bundle.Discount)

	w, _ = app.do(t, http.MethodPatch, "/api/v1/admin/products/999", `{"title":"x"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = app.do(t, http.MethodDelete, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	_, ok = app.store.GetProductByID(created.ID)
	assert.False(t, ok)
	assert.Empty(t, app.images.deleted, "no image was uploaded")

	w, _ = app.do(t, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	failed := app.activity.Recent(1, models.ActionDeleteProduct)
	require.Len(t, failed, 1)
	assert.Equal(t, models.StatusFailed, failed[0].Status)
}

func TestAdminProductCreate_Invalid(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	for name, body := range map[string]string{
		"unknown type":     `{"type":"ebook","title":"x"}`,
		"missing type":     `{"title":"x"}`,
		"bad summary":      `{"type":"summary","title":"x","format":"docx"}`,
		"bad discount":     `{"type":"bundle","title":"x","discount":120}`,
		"malformed":        `{"type":`,
		"bad topic weight": `{"type":"deck","title":"x","topics":[{"name":"a","cards":1,"weight":"Alta"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			w, env := app.do(t, http.MethodPost, "/api/v1/admin/products", body, token)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.True(t, env.Error)
		})
	}
	assert.Len(t, app.store.Products(), 7)
}

func uploadRequest(t *testing.T, path, token, filename string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAdminProductImage(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, uploadRequest(t, "/api/v1/admin/products/2/image", token, "cover.png"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	p, _ := app.store.GetProductByID("2")
	assert.Equal(t, "https://res.cloudinary.test/focus-flash/products/2/cover.png", p.ImageURL)
	assert.Equal(t, []string{"2"}, app.images.uploaded)

	w = httptest.NewRecorder()
	app.router.ServeHTTP(w, uploadRequest(t, "/api/v1/admin/products/2/image", token, "cover.gif"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	app.router.ServeHTTP(w, uploadRequest(t, "/api/v1/admin/products/999/image", token, "cover.png"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting the product cleans up its images.
	rec, _ := app.do(t, http.MethodDelete, "/api/v1/admin/products/2", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"2"}, app.images.deleted)

	uploads := app.activity.Recent(0, models.ActionUploadProductImage)
	assert.Len(t, uploads, 3)
}

func TestAdminProductImage_NotConfigured(t *testing.T) {
	app := newTestApp(t, func(d *Dependencies) { d.Images = nil })
	token := app.login(t)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, uploadRequest(t, "/api/v1/admin/products/1/image", token, "cover.png"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAdminProductsAndStats(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	w, env := app.do(t, http.MethodGet, "/api/v1/admin/products?type=summary", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Product](t, env.Data), 2)
	assert.Equal(t, 2, env.Meta.Total)

	w, _ = app.do(t, http.MethodGet, "/api/v1/admin/products?type=ebook", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = app.do(t, http.MethodGet, "/api/v1/admin/products/4", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4", decode[models.Product](t, env.Data).ID)

	_, env = app.do(t, http.MethodGet, "/api/v1/admin/stats", nil, token)
	stats := decode[models.Stats](t, env.Data)
	assert.Equal(t, 7, stats.TotalProducts)
	assert.Equal(t, map[models.ProductType]int{"deck": 2, "summary": 2, "mindmap": 2, "bundle": 1}, stats.ProductsByType)
	assert.Zero(t, stats.TotalRevenue)

	// Cart changes invalidate the cached stats.
	app.store.AddToCart("4", 2)
	_, env = app.do(t, http.MethodGet, "/api/v1/admin/stats", nil, token)
	assert.Equal(t, int64(5998), decode[models.Stats](t, env.Data).TotalRevenue)

	_, env = app.do(t, http.MethodGet, "/api/v1/admin/activity-logs?limit=1", nil, token)
	logs := decode[[]models.ActivityLog](t, env.Data)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionAdminLogin, logs[0].Action)
}

func TestAdminRateLimit(t *testing.T) {
	app := newTestApp(t, func(d *Dependencies) {
		d.RateLimiter = middleware.LocalRateLimiter(2, time.Minute)
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		w, _ := app.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "wrong"}, "")
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)

	// Storefront routes are not limited.
	for i := 0; i < 3; i++ {
		w, _ := app.do(t, http.MethodGet, "/api/v1/store/products", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCartQuantityLimits(t *testing.T) {
	app := newTestApp(t)

	w, _ := app.do(t, http.MethodPost, "/api/v1/store/cart/items", map[string]any{"productId": "1", "quantity": 1000}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, app.store.Cart())

	w, _ = app.do(t, http.MethodPost, "/api/v1/store/cart/items", map[string]any{"productId": "1", "quantity": models.MaxCartQuantity}, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Repeated adds saturate instead of wrapping around.
	w, env := app.do(t, http.MethodPost, "/api/v1/store/cart/items", map[string]any{"productId": "1", "quantity": models.MaxCartQuantity}, "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[models.CartSummary](t, env.Data)
	assert.Equal(t, models.MaxCartQuantity, summary.Lines[0].Quantity)
	assert.Equal(t, int64(models.MaxCartQuantity)*14999, summary.Total)

	w, _ = app.do(t, http.MethodPatch, "/api/v1/store/cart/items/1", map[string]any{"quantity": 9223372036854775807}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.MaxCartQuantity, app.store.Cart()[0].Quantity)
}

func TestNewRouter_WiresCacheInvalidation(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	w, _ := app.do(t, http.MethodGet, "/api/v1/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	_, cached := filter_cache.GetStats()
	require.True(t, cached)

	app.store.AddToCart("1", 1)
	_, cached = filter_cache.GetStats()
	assert.False(t, cached, "cart changes drop the stats snapshot")

	app.do(t, http.MethodGet, "/api/v1/store/filters/metadata", nil, "")
	_, cached = filter_cache.GetMetadata()
	require.True(t, cached)

	// A router over another store starts from empty caches.
	other, err := store.New(context.Background(), persistence.NewMemoryStore(),
		store.WithSeed(store.DefaultCatalog()[:1]),
	)
	require.NoError(t, err)
	jwtService, err := services.NewJWTService("router-test-secret", time.Hour)
	require.NoError(t, err)
	router := NewRouter(Dependencies{Store: other, JWT: jwtService, Activity: services.NewActivityLogService(10)})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/filters/metadata", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	meta := decode[models.FilterMetadata](t, env.Data)
	require.NotNil(t, meta.PriceRange)
	assert.Equal(t, models.PriceRangeData{Min: 14999, Max: 14999}, *meta.PriceRange)
}
