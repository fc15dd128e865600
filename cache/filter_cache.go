package filter_cache

import (
	"sync"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/models"
)

const TTL = 5 * time.Minute

// ── Storefront filter metadata ───────────────────────────────────────────────
// Option lists with live counts, read by GET /store/filters/metadata.

type metadataEntry struct {
	data      models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metadataEntry
)

func GetMetadata() (models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.data, true
	}
	return models.FilterMetadata{}, false
}

func SetMetadata(data models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metadataEntry{data: data, fetchedAt: time.Now()}
}

// ── Admin dashboard stats ────────────────────────────────────────────────────

type statsEntry struct {
	data      models.Stats
	fetchedAt time.Time
}

var (
	statsMu    sync.RWMutex
	statsCache *statsEntry
)

func GetStats() (models.Stats, bool) {
	statsMu.RLock()
	defer statsMu.RUnlock()
	if statsCache != nil && time.Since(statsCache.fetchedAt) < TTL {
		return statsCache.data, true
	}
	return models.Stats{}, false
}

func SetStats(data models.Stats) {
	statsMu.Lock()
	defer statsMu.Unlock()
	statsCache = &statsEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidation ─────────────────────────────────────────────────────────────

// InvalidateStats drops the stats snapshot (cart changes move the revenue figure).
func InvalidateStats() {
	statsMu.Lock()
	statsCache = nil
	statsMu.Unlock()
}

// Invalidate drops everything (call on any product create/update/delete)
func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()

	InvalidateStats()
}

// OnStoreChange maps a store collection name to the snapshots it affects.
func OnStoreChange(collection string) {
	switch collection {
	case "products":
		Invalidate()
	case "cart":
		InvalidateStats()
	}
}
