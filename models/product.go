package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Enumerations
// ═══════════════════════════════════════════════════════════

type ProductType string

const (
	TypeDeck    ProductType = "deck"
	TypeSummary ProductType = "summary"
	TypeMindMap ProductType = "mindmap"
	TypeBundle  ProductType = "bundle"
)

// ProductTypes lists every product type in display order.
var ProductTypes = []ProductType{TypeDeck, TypeSummary, TypeMindMap, TypeBundle}

func (t ProductType) Valid() bool {
	switch t {
	case TypeDeck, TypeSummary, TypeMindMap, TypeBundle:
		return true
	}
	return false
}

// Phase tells whether the material targets study before ("pre") or after ("pos")
// the exam announcement is published.
type Phase string

const (
	PhasePre Phase = "pre"
	PhasePos Phase = "pos"
)

func (p Phase) Valid() bool {
	return p == PhasePre || p == PhasePos
}

// Period is the recommended study duration in days.
type Period string

const (
	Period15 Period = "15"
	Period30 Period = "30"
	Period45 Period = "45"
	Period60 Period = "60"
	Period90 Period = "90"
)

var Periods = []Period{Period15, Period30, Period45, Period60, Period90}

func (p Period) Valid() bool {
	for _, v := range Periods {
		if p == v {
			return true
		}
	}
	return false
}

type TopicWeight string

const (
	WeightVeryHigh TopicWeight = "Muito Alta"
	WeightHigh     TopicWeight = "Alta incidência"
	WeightMedium   TopicWeight = "Média"
	WeightLow      TopicWeight = "Baixa"
)

func (w TopicWeight) Valid() bool {
	switch w {
	case WeightVeryHigh, WeightHigh, WeightMedium, WeightLow:
		return true
	}
	return false
}

var (
	ErrUnknownProductType = errors.New("unknown product type")
	ErrInvalidDetails     = errors.New("invalid product details")
	ErrMissingDetails     = errors.New("product has no variant details")
)

// ═══════════════════════════════════════════════════════════
// Product
// ═══════════════════════════════════════════════════════════

// ProductInfo holds the fields shared by every product variant.
type ProductInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Banca       string   `json:"banca"`
	Area        string   `json:"area"`
	Concurso    string   `json:"concurso,omitempty"`
	Phase       Phase    `json:"phase"`
	Period      Period   `json:"period"`
	Price       int64    `json:"price"` // cents
	Version     string   `json:"version"`
	Slug        string   `json:"slug"`
	LastUpdate  string   `json:"lastUpdate"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Trending    bool     `json:"trending"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Popularity  string   `json:"popularity,omitempty"`
}

// Product is a catalog entry. Details carries the variant payload and decides the
// product type; fields of other variants do not exist on the value.
type Product struct {
	ProductInfo
	Details Details `json:"-"`
}

func (p Product) Type() ProductType {
	if p.Details == nil {
		return ""
	}
	return p.Details.Type()
}

// Deck returns the deck payload when the product is a deck.
func (p Product) Deck() (DeckDetails, bool) {
	d, ok := p.Details.(DeckDetails)
	return d, ok
}

func (p Product) Summary() (SummaryDetails, bool) {
	d, ok := p.Details.(SummaryDetails)
	return d, ok
}

func (p Product) MindMap() (MindMapDetails, bool) {
	d, ok := p.Details.(MindMapDetails)
	return d, ok
}

func (p Product) Bundle() (BundleDetails, bool) {
	d, ok := p.Details.(BundleDetails)
	return d, ok
}

// Validate checks enum fields and the variant payload. Cross-field completeness
// (a deck with zero cards, an empty bundle) is accepted.
func (p Product) Validate() error {
	if p.Details == nil {
		return ErrMissingDetails
	}
	if p.Phase != "" && !p.Phase.Valid() {
		return fmt.Errorf("%w: phase %q", ErrInvalidDetails, p.Phase)
	}
	if p.Period != "" && !p.Period.Valid() {
		return fmt.Errorf("%w: period %q", ErrInvalidDetails, p.Period)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidDetails)
	}
	return p.Details.Validate()
}

// Clone returns a deep copy so callers never share slices with the store.
func (p Product) Clone() Product {
	out := p
	out.Tags = cloneSlice(p.Tags)
	if p.Details != nil {
		out.Details = p.Details.clone()
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title, collapses every run of characters outside [a-z0-9]
// into a dash and trims leading/trailing dashes.
func Slugify(title string) string {
	s := slugInvalid.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// ═══════════════════════════════════════════════════════════
// Variant payloads
// ═══════════════════════════════════════════════════════════

// Details is the closed set of product variant payloads.
type Details interface {
	Type() ProductType
	Validate() error
	clone() Details
}

type Topic struct {
	Name   string      `json:"name"`
	Cards  int         `json:"cards"`
	Weight TopicWeight `json:"weight"`
}

type PreviewCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type DeckDetails struct {
	NumCards              int           `json:"numCards"`
	IncludesJurisprudence bool          `json:"includesJurisprudence"`
	Topics                []Topic       `json:"topics"`
	PreviewCards          []PreviewCard `json:"previewCards"`
}

func (DeckDetails) Type() ProductType { return TypeDeck }

func (d DeckDetails) Validate() error {
	if d.NumCards < 0 {
		return fmt.Errorf("%w: negative numCards", ErrInvalidDetails)
	}
	for _, t := range d.Topics {
		if t.Cards < 0 {
			return fmt.Errorf("%w: topic %q has negative cards", ErrInvalidDetails, t.Name)
		}
		if t.Weight != "" && !t.Weight.Valid() {
			return fmt.Errorf("%w: topic %q weight %q", ErrInvalidDetails, t.Name, t.Weight)
		}
	}
	return nil
}

func (d DeckDetails) clone() Details {
	d.Topics = cloneSlice(d.Topics)
	d.PreviewCards = cloneSlice(d.PreviewCards)
	return d
}

type SummaryFormat string

const (
	FormatPDF  SummaryFormat = "pdf"
	FormatHTML SummaryFormat = "html"
)

type Chapter struct {
	Name  string `json:"name"`
	Pages int    `json:"pages"`
}

type SummaryDetails struct {
	Pages        int           `json:"pages"`
	Format       SummaryFormat `json:"format"`
	Chapters     []Chapter     `json:"chapters"`
	HasExercises bool          `json:"hasExercises"`
}

func (SummaryDetails) Type() ProductType { return TypeSummary }

func (d SummaryDetails) Validate() error {
	if d.Pages < 0 {
		return fmt.Errorf("%w: negative pages", ErrInvalidDetails)
	}
	if d.Format != FormatPDF && d.Format != FormatHTML {
		return fmt.Errorf("%w: summary format %q", ErrInvalidDetails, d.Format)
	}
	return nil
}

func (d SummaryDetails) clone() Details {
	d.Chapters = cloneSlice(d.Chapters)
	return d
}

type DownloadFormat string

const (
	DownloadPNG DownloadFormat = "png"
	DownloadPDF DownloadFormat = "pdf"
	DownloadSVG DownloadFormat = "svg"
)

type MindMapPreview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type MindMapDetails struct {
	Nodes           int              `json:"nodes"`
	Interactive     bool             `json:"interactive"`
	DownloadFormats []DownloadFormat `json:"downloadFormats"`
	Preview         MindMapPreview   `json:"preview"`
}

func (MindMapDetails) Type() ProductType { return TypeMindMap }

func (d MindMapDetails) Validate() error {
	if d.Nodes < 0 {
		return fmt.Errorf("%w: negative nodes", ErrInvalidDetails)
	}
	for _, f := range d.DownloadFormats {
		switch f {
		case DownloadPNG, DownloadPDF, DownloadSVG:
		default:
			return fmt.Errorf("%w: download format %q", ErrInvalidDetails, f)
		}
	}
	return nil
}

func (d MindMapDetails) clone() Details {
	d.DownloadFormats = cloneSlice(d.DownloadFormats)
	return d
}

// ProductRef points at another catalog entry. Bundles keep these unresolved.
type ProductRef struct {
	Type ProductType `json:"type"`
	ID   string      `json:"id"`
}

type BundleDetails struct {
	Products []ProductRef `json:"products"`
	Discount int          `json:"discount"` // percentage
}

func (BundleDetails) Type() ProductType { return TypeBundle }

func (d BundleDetails) Validate() error {
	if d.Discount < 0 || d.Discount > 100 {
		return fmt.Errorf("%w: discount %d outside 0-100", ErrInvalidDetails, d.Discount)
	}
	for _, ref := range d.Products {
		if !ref.Type.Valid() {
			return fmt.Errorf("%w: bundle member type %q", ErrInvalidDetails, ref.Type)
		}
	}
	return nil
}

func (d BundleDetails) clone() Details {
	d.Products = cloneSlice(d.Products)
	return d
}

// ═══════════════════════════════════════════════════════════
// JSON (flat shape with a "type" discriminator)
// ═══════════════════════════════════════════════════════════

type deckJSON struct {
	Type ProductType `json:"type"`
	ProductInfo
	DeckDetails
}

type summaryJSON struct {
	Type ProductType `json:"type"`
	ProductInfo
	SummaryDetails
}

type mindMapJSON struct {
	Type ProductType `json:"type"`
	ProductInfo
	MindMapDetails
}

type bundleJSON struct {
	Type ProductType `json:"type"`
	ProductInfo
	BundleDetails
}

func (p Product) MarshalJSON() ([]byte, error) {
	switch d := p.Details.(type) {
	case DeckDetails:
		return json.Marshal(deckJSON{TypeDeck, p.ProductInfo, d})
	case SummaryDetails:
		return json.Marshal(summaryJSON{TypeSummary, p.ProductInfo, d})
	case MindMapDetails:
		return json.Marshal(mindMapJSON{TypeMindMap, p.ProductInfo, d})
	case BundleDetails:
		return json.Marshal(bundleJSON{TypeBundle, p.ProductInfo, d})
	case nil:
		return nil, ErrMissingDetails
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownProductType, d)
	}
}

// UnmarshalJSON decodes the flat shape. Missing variant fields decode to zero values.
func (p *Product) UnmarshalJSON(data []byte) error {
	var head struct {
		Type ProductType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case TypeDeck:
		var v deckJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = Product{ProductInfo: v.ProductInfo, Details: v.DeckDetails}
	case TypeSummary:
		var v summaryJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = Product{ProductInfo: v.ProductInfo, Details: v.SummaryDetails}
	case TypeMindMap:
		var v mindMapJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = Product{ProductInfo: v.ProductInfo, Details: v.MindMapDetails}
	case TypeBundle:
		var v bundleJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = Product{ProductInfo: v.ProductInfo, Details: v.BundleDetails}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProductType, head.Type)
	}
	return nil
}
