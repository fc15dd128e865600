package filter_controller

import (
	"log"
	"net/http"
	"slices"

	filter_cache "github.com/YokoReis/focus-flash-forge-23/cache"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Option lists with labels and live product counts per axis, plus the catalog price range
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func (h *Handler) GetFilterMetadata(c *gin.Context) {
	if metadata, ok := filter_cache.GetMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
		return
	}

	metadata := buildFilterMetadata(h.store.Products())
	filter_cache.SetMetadata(metadata)
	log.Printf("[store.filters] metadata rebuilt")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

func buildFilterMetadata(products []models.Product) models.FilterMetadata {
	counts := map[string]map[string]int{
		"type": {}, "area": {}, "banca": {}, "phase": {}, "period": {},
	}
	var priceRange *models.PriceRangeData

	for _, p := range products {
		counts["type"][string(p.Type())]++
		counts["area"][p.Area]++
		counts["banca"][p.Banca]++
		counts["phase"][string(p.Phase)]++
		counts["period"][string(p.Period)]++

		if priceRange == nil {
			priceRange = &models.PriceRangeData{Min: p.Price, Max: p.Price}
			continue
		}
		if p.Price < priceRange.Min {
			priceRange.Min = p.Price
		}
		if p.Price > priceRange.Max {
			priceRange.Max = p.Price
		}
	}

	typeValues := make([]string, 0, len(models.ProductTypes))
	for _, t := range models.ProductTypes {
		typeValues = append(typeValues, string(t))
	}
	periodValues := make([]string, 0, len(models.Periods))
	for _, p := range models.Periods {
		periodValues = append(periodValues, string(p))
	}

	return models.FilterMetadata{
		Types:      buildOptions(typeValues, counts["type"], models.TypeLabels),
		Areas:      buildOptions(models.KnownAreas, counts["area"], models.AreaLabels),
		Bancas:     buildOptions(models.KnownBancas, counts["banca"], models.BancaLabels),
		Phases:     buildOptions([]string{string(models.PhasePre), string(models.PhasePos)}, counts["phase"], models.PhaseLabels),
		Periods:    buildOptions(periodValues, counts["period"], models.PeriodLabels),
		PriceRange: priceRange,
	}
}

// buildOptions lists the known values first, in their fixed order, then any other
// non-empty value found in the catalog, alphabetically.
func buildOptions(known []string, counts map[string]int, labels map[string]string) []models.FilterOption {
	options := make([]models.FilterOption, 0, len(known))
	seen := make(map[string]bool, len(known))
	for _, v := range known {
		seen[v] = true
		options = append(options, newOption(v, counts[v], labels))
	}

	extra := make([]string, 0)
	for v := range counts {
		if v != "" && !seen[v] {
			extra = append(extra, v)
		}
	}
	slices.Sort(extra)
	for _, v := range extra {
		options = append(options, newOption(v, counts[v], labels))
	}
	return options
}

func newOption(value string, count int, labels map[string]string) models.FilterOption {
	label, ok := labels[value]
	if !ok {
		label = value
	}
	return models.FilterOption{Label: label, Value: value, Count: count}
}
