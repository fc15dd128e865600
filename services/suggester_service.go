package services

import (
	"fmt"

	"github.com/YokoReis/focus-flash-forge-23/models"
)

// SuggestBundles returns the three bundle options shown by the "montar meu pacote"
// wizard. The lists are fixed; only titles, descriptions and the jurisprudence flag
// of the recommended option follow the selections.
func SuggestBundles(req models.SuggestionRequest) []models.Suggestion {
	return []models.Suggestion{
		{
			Title:                 fmt.Sprintf("Pacote %s Recomendado", req.Area),
			Description:           fmt.Sprintf("Curadoria otimizada para %s com foco em %s dias", req.Banca, req.Prazo),
			Decks:                 []string{"Direito Administrativo", "Português", "Conhecimentos Específicos"},
			Price:                 12999,
			OriginalPrice:         16999,
			NumCards:              1200,
			IncludesJurisprudence: req.Fase == models.PhasePos,
			Tier:                  models.TierRecommended,
		},
		{
			Title:         "Alternativa Econômica",
			Description:   fmt.Sprintf("Essencial para %s - %s", req.Area, req.Banca),
			Decks:         []string{"Direito Administrativo", "Português"},
			Price:         7999,
			OriginalPrice: 9999,
			NumCards:      800,
			Tier:          models.TierBudget,
		},
		{
			Title:                 "Pacote Completo Premium",
			Description:           "Cobertura total com jurisprudência e questões comentadas",
			Decks:                 []string{"Todas as disciplinas", "Jurisprudência", "Questões", "Resumos"},
			Price:                 19999,
			OriginalPrice:         25999,
			NumCards:              2000,
			IncludesJurisprudence: true,
			Tier:                  models.TierComplete,
		},
	}
}
