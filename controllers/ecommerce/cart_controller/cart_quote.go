package cart_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/config"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/gin-gonic/gin"
)

// DownloadCartQuotePDF godoc
// @Summary Download the cart as a PDF quote
// @Tags store - cart
// @Produce application/pdf
// @Success 200 {file} file "PDF quote"
// @Failure 400 {object} models.ApiResponse "Cart is empty"
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart/quote.pdf [get]
func (h *Handler) DownloadCartQuotePDF(c *gin.Context) {
	summary := h.store.CartSummary()
	if len(summary.Lines) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	issuedAt := h.now()
	pdfBuffer, err := services.GenerateCartQuotePDF(summary, issuedAt)
	if err != nil {
		log.Printf("[cart.quote-pdf] failed to render: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate quote"))
		return
	}

	// Set response headers for file download
	filename := fmt.Sprintf("orcamento-%s.pdf", issuedAt.Format("20060102-1504"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[cart.quote-pdf] quote downloaded: %d lines, total %d", len(summary.Lines), summary.Total)
}

// SendCartQuoteEmail godoc
// @Summary Email the cart quote
// @Description Sends the PDF quote of the current cart to the given address
// @Tags store - cart
// @Accept json
// @Produce json
// @Param request body models.QuoteEmailRequest true "Recipient"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Email not configured"
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart/quote/email [post]
func (h *Handler) SendCartQuoteEmail(c *gin.Context) {
	var req models.QuoteEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	summary := h.store.CartSummary()
	if len(summary.Lines) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	issuedAt := h.now()
	pdfBuffer, err := services.GenerateCartQuotePDF(summary, issuedAt)
	if err != nil {
		log.Printf("[cart.quote-email] failed to render: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate quote"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(20 * time.Second)
	defer cancel()

	err = h.mailer.SendCartQuoteEmail(ctx, services.CartQuoteEmailData{
		To:         req.Email,
		Summary:    summary,
		IssuedAt:   issuedAt,
		PDFContent: pdfBuffer.Bytes(),
	})
	if errors.Is(err, services.ErrEmailNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Email delivery is not configured"))
		return
	}
	if err != nil {
		log.Printf("[cart.quote-email] failed to send to %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send email"))
		return
	}

	log.Printf("[cart.quote-email] quote sent to %s", req.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote sent successfully", gin.H{"email": req.Email}))
}
