package filter_cache

import (
	"testing"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/stretchr/testify/assert"
)

func TestMetadataCache(t *testing.T) {
	Invalidate()
	_, ok := GetMetadata()
	assert.False(t, ok)

	SetMetadata(models.FilterMetadata{PriceRange: &models.PriceRangeData{Min: 100, Max: 900}})
	got, ok := GetMetadata()
	assert.True(t, ok)
	assert.Equal(t, int64(900), got.PriceRange.Max)

	OnStoreChange("cart")
	_, ok = GetMetadata()
	assert.True(t, ok, "cart changes keep filter metadata")

	OnStoreChange("products")
	_, ok = GetMetadata()
	assert.False(t, ok)
}

func TestStatsCache(t *testing.T) {
	Invalidate()
	SetStats(models.Stats{TotalProducts: 7})

	got, ok := GetStats()
	assert.True(t, ok)
	assert.Equal(t, 7, got.TotalProducts)

	OnStoreChange("favorites")
	_, ok = GetStats()
	assert.True(t, ok)

	OnStoreChange("cart")
	_, ok = GetStats()
	assert.False(t, ok)
}
