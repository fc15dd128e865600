package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrVariantMismatch is returned when a partial update switches the product type
// without carrying every field the new variant requires.
var ErrVariantMismatch = errors.New("partial update does not match product variant")

// ProductPatch is a partial update. Nil fields are left untouched; a non-nil Details
// replaces the whole variant payload (and therefore possibly the type).
type ProductPatch struct {
	Title       *string
	Description *string
	Banca       *string
	Area        *string
	Concurso    *string
	Phase       *Phase
	Period      *Period
	Price       *int64
	Version     *string
	Slug        *string
	LastUpdate  *string
	Tags        *[]string
	Featured    *bool
	Trending    *bool
	ImageURL    *string
	Popularity  *string
	Details     Details
}

// IsEmpty reports whether the patch changes nothing.
func (pp ProductPatch) IsEmpty() bool {
	if pp.Details != nil {
		return false
	}
	return pp == ProductPatch{}
}

// Apply returns p with the patch merged in. The id never changes.
func (pp ProductPatch) Apply(p Product) Product {
	out := p.Clone()
	setIf(&out.Title, pp.Title)
	setIf(&out.Description, pp.Description)
	setIf(&out.Banca, pp.Banca)
	setIf(&out.Area, pp.Area)
	setIf(&out.Concurso, pp.Concurso)
	setIf(&out.Phase, pp.Phase)
	setIf(&out.Period, pp.Period)
	setIf(&out.Price, pp.Price)
	setIf(&out.Version, pp.Version)
	setIf(&out.Slug, pp.Slug)
	setIf(&out.LastUpdate, pp.LastUpdate)
	setIf(&out.Featured, pp.Featured)
	setIf(&out.Trending, pp.Trending)
	setIf(&out.ImageURL, pp.ImageURL)
	setIf(&out.Popularity, pp.Popularity)
	if pp.Tags != nil {
		out.Tags = cloneSlice(*pp.Tags)
	}
	if pp.Details != nil {
		out.Details = pp.Details.clone()
	}
	return out
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// requiredVariantKeys lists the JSON keys a payload must carry to switch a product
// to that variant.
var requiredVariantKeys = map[ProductType][]string{
	TypeDeck:    {"numCards", "includesJurisprudence", "topics", "previewCards"},
	TypeSummary: {"pages", "format", "chapters", "hasExercises"},
	TypeMindMap: {"nodes", "interactive", "downloadFormats", "preview"},
	TypeBundle:  {"products", "discount"},
}

var commonKeys = map[string]bool{
	"id": true, "type": true, "title": true, "description": true, "banca": true,
	"area": true, "concurso": true, "phase": true, "period": true, "price": true,
	"version": true, "slug": true, "lastUpdate": true, "tags": true, "featured": true,
	"trending": true, "imageUrl": true, "popularity": true,
}

// ParseProductPatch decodes a partial JSON product against the current value.
//
// Variant fields of the current type are shallow-merged onto the existing payload.
// A different "type" is accepted only when every required field of the new variant
// is present; the result is never a product whose payload lacks its own fields.
func ParseProductPatch(data []byte, current Product) (ProductPatch, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return ProductPatch{}, err
	}

	var patch ProductPatch
	decoders := map[string]any{
		"title":       &patch.Title,
		"description": &patch.Description,
		"banca":       &patch.Banca,
		"area":        &patch.Area,
		"concurso":    &patch.Concurso,
		"phase":       &patch.Phase,
		"period":      &patch.Period,
		"price":       &patch.Price,
		"version":     &patch.Version,
		"slug":        &patch.Slug,
		"lastUpdate":  &patch.LastUpdate,
		"tags":        &patch.Tags,
		"featured":    &patch.Featured,
		"trending":    &patch.Trending,
		"imageUrl":    &patch.ImageURL,
		"popularity":  &patch.Popularity,
	}
	for key, dst := range decoders {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return ProductPatch{}, fmt.Errorf("field %q: %w", key, err)
		}
	}

	target := current.Type()
	if raw, ok := fields["type"]; ok {
		if err := json.Unmarshal(raw, &target); err != nil {
			return ProductPatch{}, fmt.Errorf("field \"type\": %w", err)
		}
		if !target.Valid() {
			return ProductPatch{}, fmt.Errorf("%w: %q", ErrUnknownProductType, target)
		}
	}

	variant := make(map[string]json.RawMessage)
	for key, raw := range fields {
		if !commonKeys[key] {
			variant[key] = raw
		}
	}

	if target != current.Type() {
		for _, key := range requiredVariantKeys[target] {
			if _, ok := variant[key]; !ok {
				return ProductPatch{}, fmt.Errorf("%w: %s requires %q", ErrVariantMismatch, target, key)
			}
		}
		details, err := decodeDetails(target, variant)
		if err != nil {
			return ProductPatch{}, err
		}
		patch.Details = details
		return patch, nil
	}

	if len(variant) == 0 {
		return patch, nil
	}

	// Same variant: merge the supplied keys over the existing payload.
	base, err := json.Marshal(current.Details)
	if err != nil {
		return ProductPatch{}, err
	}
	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &merged); err != nil {
		return ProductPatch{}, err
	}
	for key, raw := range variant {
		if _, known := merged[key]; !known {
			return ProductPatch{}, fmt.Errorf("%w: %q is not a %s field", ErrVariantMismatch, key, target)
		}
		merged[key] = raw
	}
	details, err := decodeDetails(target, merged)
	if err != nil {
		return ProductPatch{}, err
	}
	patch.Details = details
	return patch, nil
}

func decodeDetails(t ProductType, fields map[string]json.RawMessage) (Details, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var d Details
	switch t {
	case TypeDeck:
		var v DeckDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case TypeSummary:
		var v SummaryDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case TypeMindMap:
		var v MindMapDetails
		err = json.Unmarshal(raw, &v)
		d = v
	case TypeBundle:
		var v BundleDetails
		err = json.Unmarshal(raw, &v)
		d = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProductType, t)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
