package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout of a catalog seed:
//
//	products:
//	  - id: "1"
//	    type: deck
//	    title: Direito Administrativo
//	    period: 60
//	    version: "2025.1"
//	    numCards: 680
//	    ...
type seedFile struct {
	Products []map[string]any `yaml:"products"`
}

// YAML reads unquoted 10 or 60 as integers; these keys are strings. Integers are
// converted exactly, anything else (2025.10, true) must be quoted.
var stringKeys = []string{"id", "period", "version", "lastUpdate"}

func coerceStringKeys(entry map[string]any) error {
	for _, key := range stringKeys {
		switch v := entry[key].(type) {
		case nil, string:
		case int:
			entry[key] = strconv.Itoa(v)
		default:
			return fmt.Errorf("%s must be a quoted string, got %v", key, v)
		}
	}
	return nil
}

// LoadSeedFile reads a YAML catalog. Each entry uses the same flat keys as the JSON
// product encoding.
func LoadSeedFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates a YAML catalog.
func ParseSeed(data []byte) ([]models.Product, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}

	products := make([]models.Product, 0, len(f.Products))
	seen := make(map[string]bool, len(f.Products))
	for i, entry := range f.Products {
		if err := coerceStringKeys(entry); err != nil {
			return nil, fmt.Errorf("seed product #%d: %w", i+1, err)
		}
		raw, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("seed product #%d: %w", i+1, err)
		}
		var p models.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("seed product #%d: %w", i+1, err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("seed product #%d: missing id", i+1)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("seed product #%d: duplicate id %q", i+1, p.ID)
		}
		seen[p.ID] = true
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seed product %s: %w", p.ID, err)
		}
		if p.Slug == "" {
			p.Slug = models.Slugify(p.Title)
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		products = append(products, p)
	}
	return products, nil
}
