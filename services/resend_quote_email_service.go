package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/models"
)

const resendAPIURL = "https://api.resend.com/emails"

// ErrEmailNotConfigured is returned when no Resend API key is set.
var ErrEmailNotConfigured = errors.New("email delivery is not configured")

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey     string
	from       string
	endpoint   string
	httpClient *http.Client
}

// NewResendClient returns nil when apiKey is empty so callers can treat email as
// an optional capability.
func NewResendClient(apiKey, from string) *ResendClient {
	if apiKey == "" {
		return nil
	}
	if from == "" {
		from = "noreply@focusflash.com.br"
	}
	return &ResendClient{
		apiKey:     apiKey,
		from:       from,
		endpoint:   resendAPIURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// CartQuoteEmailData holds data for the cart quote email
type CartQuoteEmailData struct {
	To         string
	Summary    models.CartSummary
	IssuedAt   time.Time
	PDFContent []byte
}

type quoteEmailLine struct {
	Title    string
	Quantity int
	Unit     string
	Subtotal string
}

var quoteEmailTemplate = template.Must(template.New("quote").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="UTF-8"><title>Seu orçamento Focus Flash</title></head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background-color: #f8fafc;">
  <table width="100%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr><td><h1 style="margin: 0; font-size: 26px; color: #0f172a;">Seu orçamento</h1>
      <p style="margin: 4px 0; font-size: 14px; color: #64748b;">Emitido em {{.IssuedAt}}</p></td></tr>
    <tr><td style="padding: 16px 0;">
      <table width="100%" cellpadding="0" cellspacing="0" border="0">
        {{range .Lines}}<tr>
          <td style="padding: 6px 0; font-size: 14px; color: #0f172a;">{{.Title}}</td>
          <td style="padding: 6px 0; font-size: 14px; text-align: right;">{{.Quantity}} × {{.Unit}}</td>
          <td style="padding: 6px 0; font-size: 14px; text-align: right; font-weight: 600;">{{.Subtotal}}</td>
        </tr>{{end}}
      </table>
    </td></tr>
    <tr><td style="border-top: 1px solid #e2e8f0; padding-top: 12px; font-size: 16px; font-weight: bold; text-align: right;">Total: {{.Total}}</td></tr>
    <tr><td style="padding-top: 16px; font-size: 12px; color: #64748b;">O PDF do orçamento segue em anexo.</td></tr>
  </table>
</body>
</html>`))

func renderQuoteEmail(data CartQuoteEmailData) (string, error) {
	lines := make([]quoteEmailLine, 0, len(data.Summary.Lines))
	for _, l := range data.Summary.Lines {
		title := l.Title
		if !l.Available {
			title = fmt.Sprintf("Produto %s (indisponível)", l.ProductID)
		}
		lines = append(lines, quoteEmailLine{
			Title:    title,
			Quantity: l.Quantity,
			Unit:     FormatBRL(l.UnitPrice),
			Subtotal: FormatBRL(l.Subtotal),
		})
	}

	var buf bytes.Buffer
	err := quoteEmailTemplate.Execute(&buf, map[string]any{
		"IssuedAt": data.IssuedAt.Format("02/01/2006 15:04"),
		"Lines":    lines,
		"Total":    FormatBRL(data.Summary.Total),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendCartQuoteEmail sends the quote as HTML with the PDF attached
func (r *ResendClient) SendCartQuoteEmail(ctx context.Context, data CartQuoteEmailData) error {
	if r == nil {
		return ErrEmailNotConfigured
	}

	htmlBody, err := renderQuoteEmail(data)
	if err != nil {
		return fmt.Errorf("failed to render quote email: %w", err)
	}

	payload := map[string]any{
		"from":    r.from,
		"to":      data.To,
		"subject": "Seu orçamento Focus Flash",
		"html":    htmlBody,
		"attachments": []map[string]any{
			{
				"filename": fmt.Sprintf("orcamento-%s.pdf", data.IssuedAt.Format("20060102-1504")),
				"content":  base64.StdEncoding.EncodeToString(data.PDFContent),
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] cart quote sent to %s", data.To)
	return nil
}
