package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	quoteDark  = color.Color{Red: 15, Green: 23, Blue: 42}
	quoteMuted = color.Color{Red: 100, Green: 116, Blue: 139}
)

var typeLabelsPT = map[models.ProductType]string{
	models.TypeDeck:    "Flashcards",
	models.TypeSummary: "Resumo",
	models.TypeMindMap: "Mapa Mental",
	models.TypeBundle:  "Pacote",
}

// FormatBRL renders cents as "R$ 1.234,56".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	reais := strconv.FormatInt(cents/100, 10)
	var grouped strings.Builder
	for i, r := range reais {
		if i > 0 && (len(reais)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), cents%100)
}

func quoteText(size float64, style consts.Style, c color.Color, align consts.Align) props.Text {
	return props.Text{Size: size, Style: style, Color: c, Align: align}
}

// GenerateCartQuotePDF renders the cart as a one-page price quote. Items whose
// product no longer exists are listed as unavailable and add nothing to the total.
func GenerateCartQuotePDF(summary models.CartSummary, issuedAt time.Time) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("ORÇAMENTO", quoteText(24, consts.Bold, quoteDark, consts.Left))
		})
	})
	m.Row(10, func() {
		m.Col(8, func() {
			m.Text("FOCUS FLASH", quoteText(16, consts.Bold, quoteDark, consts.Left))
		})
		m.Col(4, func() {
			m.Text("Emitido em "+issuedAt.Format("02/01/2006 15:04"), quoteText(9, consts.Normal, quoteMuted, consts.Right))
		})
	})

	m.Row(8, func() {})

	headers := []struct {
		label string
		width uint
		align consts.Align
	}{
		{"Produto", 5, consts.Left},
		{"Tipo", 2, consts.Left},
		{"Qtd", 1, consts.Right},
		{"Unitário", 2, consts.Right},
		{"Subtotal", 2, consts.Right},
	}
	m.Row(6, func() {
		for _, h := range headers {
			m.Col(h.width, func() {
				m.Text(h.label, quoteText(8, consts.Bold, quoteDark, h.align))
			})
		}
	})

	for _, line := range summary.Lines {
		title, kind := line.Title, typeLabelsPT[line.Type]
		if !line.Available {
			title, kind = fmt.Sprintf("Produto %s (indisponível)", line.ProductID), "-"
		}
		cells := []string{
			title,
			kind,
			strconv.Itoa(line.Quantity),
			FormatBRL(line.UnitPrice),
			FormatBRL(line.Subtotal),
		}
		m.Row(6, func() {
			for i, h := range headers {
				m.Col(h.width, func() {
					m.Text(cells[i], quoteText(9, consts.Normal, quoteDark, h.align))
				})
			}
		})
	}

	if len(summary.Lines) == 0 {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text("Carrinho vazio", quoteText(9, consts.Italic, quoteMuted, consts.Left))
			})
		})
	}

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Itens", quoteText(9, consts.Normal, quoteMuted, consts.Right))
		})
		m.Col(2, func() {
			m.Text(strconv.Itoa(summary.TotalItems), quoteText(9, consts.Normal, quoteDark, consts.Right))
		})
	})
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", quoteText(12, consts.Bold, quoteDark, consts.Right))
		})
		m.Col(2, func() {
			m.Text(FormatBRL(summary.Total), quoteText(12, consts.Bold, quoteDark, consts.Right))
		})
	})

	m.Row(12, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Orçamento válido por 7 dias. Valores sujeitos a alteração.", quoteText(8, consts.Normal, quoteMuted, consts.Left))
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}
	return &buf, nil
}
