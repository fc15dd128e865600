package product_controller

import (
	"net/http/httptest"
	"testing"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/store/products?"+rawQuery, nil)
	return c
}

func TestParseQuery(t *testing.T) {
	c := contextFor("q=+direito+&type=deck,bundle&area=Fiscal&area=Jur%C3%ADdica&phase=pos&period=30,60&sortBy=recentes")

	q, err := parseQuery(c)
	require.NoError(t, err)
	assert.Equal(t, "direito", q.Search)
	assert.Equal(t, models.SortRecent, q.Sort)
	assert.Equal(t, []models.ProductType{models.TypeDeck, models.TypeBundle}, q.Filters.Types)
	assert.Equal(t, []string{"Fiscal", "Jurídica"}, q.Filters.Areas)
	assert.Equal(t, []string{}, q.Filters.Bancas)
	assert.Equal(t, []models.Phase{models.PhasePos}, q.Filters.Phases)
	assert.Equal(t, []models.Period{models.Period30, models.Period60}, q.Filters.Periods)
}

func TestParseQuery_Defaults(t *testing.T) {
	q, err := parseQuery(contextFor(""))
	require.NoError(t, err)
	assert.Equal(t, models.SortRelevance, q.Sort)
	assert.Zero(t, q.Filters.Count())
}

func TestParseQuery_Invalid(t *testing.T) {
	for _, raw := range []string{"sortBy=cheapest", "type=ebook", "phase=durante", "period=7"} {
		t.Run(raw, func(t *testing.T) {
			_, err := parseQuery(contextFor(raw))
			assert.ErrorIs(t, err, errInvalidQuery)
		})
	}

	// Empty list items are dropped.
	q, err := parseQuery(contextFor("type=deck,"))
	require.NoError(t, err)
	assert.Equal(t, []models.ProductType{models.TypeDeck}, q.Filters.Types)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 12},
		{"page=3&limit=5", 3, 5},
		{"page=0&limit=0", 1, 12},
		{"page=abc&limit=101", 1, 12},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page, limit := parsePagination(contextFor(tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestHasQueryParams(t *testing.T) {
	assert.False(t, hasQueryParams(contextFor("page=2&limit=4")))
	assert.True(t, hasQueryParams(contextFor("q=")))
	assert.True(t, hasQueryParams(contextFor("sortBy=preco-menor")))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, paginate(items, 1, 2))
	assert.Equal(t, []int{5}, paginate(items, 3, 2))
	assert.Empty(t, paginate(items, 4, 2))
}
