package filter_controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/gin-gonic/gin"
)

// FilterStateResponse is the session's current search/filter selection.
type FilterStateResponse struct {
	SearchTerm  string             `json:"searchTerm"`
	Filters     models.FilterState `json:"filters"`
	ActiveCount int                `json:"activeCount"`
	Matching    int                `json:"matching"`
}

func (h *Handler) currentState() FilterStateResponse {
	filters := h.store.ActiveFilters()
	return FilterStateResponse{
		SearchTerm:  h.store.SearchTerm(),
		Filters:     filters,
		ActiveCount: filters.Count(),
		Matching:    len(h.store.FilteredProducts()),
	}
}

// GetActiveFilters godoc
// @Summary Get active search and filters
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=FilterStateResponse}
// @Router /store/filters [get]
func (h *Handler) GetActiveFilters(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters retrieved", h.currentState()))
}

// SetActiveFilters godoc
// @Summary Replace the active filters
// @Tags store
// @Accept json
// @Produce json
// @Param filters body models.FilterState true "Selected values per axis"
// @Success 200 {object} models.ApiResponse{data=FilterStateResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /store/filters [put]
func (h *Handler) SetActiveFilters(c *gin.Context) {
	var req models.FilterState
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if err := validateFilters(req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	h.store.SetActiveFilters(req)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters updated", h.currentState()))
}

// ClearFilters godoc
// @Summary Clear the active filters
// @Description Resets every axis; the search term is kept
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=FilterStateResponse}
// @Router /store/filters [delete]
func (h *Handler) ClearFilters(c *gin.Context) {
	h.store.ClearFilters()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters cleared", h.currentState()))
}

// SetSearchTerm godoc
// @Summary Set the search term
// @Tags store
// @Accept json
// @Produce json
// @Param search body models.SearchTermRequest true "Search term (empty clears it)"
// @Success 200 {object} models.ApiResponse{data=FilterStateResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /store/search [put]
func (h *Handler) SetSearchTerm(c *gin.Context) {
	var req models.SearchTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	h.store.SetSearchTerm(strings.TrimSpace(req.Term))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search term updated", h.currentState()))
}

func validateFilters(f models.FilterState) error {
	for _, t := range f.Types {
		if !t.Valid() {
			return fmt.Errorf("invalid type %q", t)
		}
	}
	for _, p := range f.Phases {
		if !p.Valid() {
			return fmt.Errorf("invalid phase %q", p)
		}
	}
	for _, p := range f.Periods {
		if !p.Valid() {
			return fmt.Errorf("invalid period %q", p)
		}
	}
	return nil
}
