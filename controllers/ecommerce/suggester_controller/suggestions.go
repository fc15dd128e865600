package suggester_controller

import (
	"log"
	"net/http"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/gin-gonic/gin"
)

// GetSuggestions godoc
// @Summary Suggest study bundles
// @Description Returns the recommended, budget and complete bundles for the wizard selections
// @Tags store
// @Accept json
// @Produce json
// @Param request body models.SuggestionRequest true "Area, banca, phase and days until the exam"
// @Success 200 {object} models.ApiResponse{data=[]models.Suggestion}
// @Failure 400 {object} models.ApiResponse
// @Router /store/suggestions [post]
func GetSuggestions(c *gin.Context) {
	var req models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	suggestions := services.SuggestBundles(req)
	log.Printf("[store.suggestions] %s/%s/%s/%s: %d suggestions", req.Area, req.Banca, req.Fase, req.Prazo, len(suggestions))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions generated", suggestions))
}
