package models

// FilterState holds the selected criteria per axis. An empty axis does not restrict.
type FilterState struct {
	Types   []ProductType `json:"types"`
	Areas   []string      `json:"areas"`
	Bancas  []string      `json:"bancas"`
	Phases  []Phase       `json:"phases"`
	Periods []Period      `json:"periods"`
}

// EmptyFilters returns a FilterState whose axes are non-nil empty slices, so it
// serializes as [] rather than null.
func EmptyFilters() FilterState {
	return FilterState{
		Types:   []ProductType{},
		Areas:   []string{},
		Bancas:  []string{},
		Phases:  []Phase{},
		Periods: []Period{},
	}
}

// Count returns the number of selected criteria across all axes.
func (f FilterState) Count() int {
	return len(f.Types) + len(f.Areas) + len(f.Bancas) + len(f.Phases) + len(f.Periods)
}

func (f FilterState) Clone() FilterState {
	return FilterState{
		Types:   append([]ProductType{}, f.Types...),
		Areas:   append([]string{}, f.Areas...),
		Bancas:  append([]string{}, f.Bancas...),
		Phases:  append([]Phase{}, f.Phases...),
		Periods: append([]Period{}, f.Periods...),
	}
}

// Matches reports whether p satisfies every non-empty axis.
func (f FilterState) Matches(p Product) bool {
	return matchAxis(f.Types, p.Type()) &&
		matchAxis(f.Areas, p.Area) &&
		matchAxis(f.Bancas, p.Banca) &&
		matchAxis(f.Phases, p.Phase) &&
		matchAxis(f.Periods, p.Period)
}

func matchAxis[T comparable](selected []T, value T) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// SortOption names a catalog ordering.
type SortOption string

const (
	SortRelevance   SortOption = "relevancia"
	SortBestSellers SortOption = "mais-vendidos"
	SortRecent      SortOption = "recentes"
	SortPriceAsc    SortOption = "preco-menor"
	SortPriceDesc   SortOption = "preco-maior"
)

func (s SortOption) Valid() bool {
	switch s {
	case SortRelevance, SortBestSellers, SortRecent, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Query narrows and orders the catalog.
type Query struct {
	Search  string
	Filters FilterState
	Sort    SortOption
}

type SearchTermRequest struct {
	Term string `json:"term" example:"administrativo"`
}

// ═══════════════════════════════════════════════════════════
// Filter metadata (storefront sidebar)
// ═══════════════════════════════════════════════════════════

// FilterOption represents a single filter option
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Types      []FilterOption  `json:"types"`
	Areas      []FilterOption  `json:"areas"`
	Bancas     []FilterOption  `json:"bancas"`
	Phases     []FilterOption  `json:"phases"`
	Periods    []FilterOption  `json:"periods"`
	PriceRange *PriceRangeData `json:"priceRange"`
}

// PriceRangeData represents the minimum and maximum price in the store (cents)
type PriceRangeData struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Display labels for the known option ids. Values found in the catalog without a
// label here are shown as-is.
var (
	TypeLabels = map[string]string{
		string(TypeDeck):    "Flashcards",
		string(TypeSummary): "Resumos",
		string(TypeMindMap): "Mapas Mentais",
		string(TypeBundle):  "Pacotes",
	}
	AreaLabels = map[string]string{
		"Jurídica":  "Jurídica",
		"Fiscal":    "Fiscal",
		"Tribunais": "Tribunais",
		"Básica":    "Matérias Básicas",
		"Policial":  "Área Policial",
		"Saúde":     "Área da Saúde",
	}
	BancaLabels = map[string]string{
		"FGV":      "FGV",
		"Cebraspe": "Cebraspe",
		"FCC":      "FCC",
		"ESAF":     "ESAF",
		"Vunesp":   "Vunesp",
		"IBFC":     "IBFC",
	}
	PhaseLabels = map[string]string{
		string(PhasePre): "Pré-edital",
		string(PhasePos): "Pós-edital",
	}
	PeriodLabels = map[string]string{
		string(Period15): "15 dias",
		string(Period30): "30 dias",
		string(Period45): "45 dias",
		string(Period60): "60 dias",
		string(Period90): "90 dias",
	}

	KnownAreas  = []string{"Jurídica", "Fiscal", "Tribunais", "Básica", "Policial", "Saúde"}
	KnownBancas = []string{"FGV", "Cebraspe", "FCC", "ESAF", "Vunesp", "IBFC"}
)
