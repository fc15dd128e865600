package store

import "github.com/YokoReis/focus-flash-forge-23/models"

// DefaultCatalog returns a fresh copy of the bundled sample catalog: two decks, two
// summaries, two mind maps and one bundle, ids "1" to "7".
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ProductInfo: models.ProductInfo{
				ID:          "1",
				Title:       "Direito Administrativo Completo FGV",
				Description: "Preparação completa para concursos com foco na banca FGV. Inclui princípios, atos administrativos, licitações e jurisprudência atualizada.",
				Banca:       "FGV",
				Area:        "Jurídica",
				Concurso:    "TCE-RJ 2025",
				Phase:       models.PhasePos,
				Period:      models.Period60,
				Price:       14999,
				Version:     "2025.1",
				Slug:        "direito-administrativo-fgv-completo",
				LastUpdate:  "15/01/2025",
				Tags:        []string{"direito", "administrativo", "fgv", "tribunais"},
				Featured:    true,
				Trending:    true,
				Popularity:  "2.847 estudando",
			},
			Details: models.DeckDetails{
				NumCards:              680,
				IncludesJurisprudence: true,
				Topics: []models.Topic{
					{Name: "Princípios da Administração", Cards: 120, Weight: models.WeightVeryHigh},
					{Name: "Atos Administrativos", Cards: 180, Weight: models.WeightVeryHigh},
					{Name: "Processo Administrativo", Cards: 140, Weight: models.WeightHigh},
					{Name: "Licitações e Contratos", Cards: 160, Weight: models.WeightHigh},
					{Name: "Responsabilidade Civil", Cards: 80, Weight: models.WeightMedium},
				},
				PreviewCards: []models.PreviewCard{
					{
						Front: "Quais são os princípios expressos da Administração Pública segundo a CF/88?",
						Back:  "LIMPE: Legalidade, Impessoalidade, Moralidade, Publicidade e Eficiência (art. 37, caput)",
					},
					{
						Front: "O que caracteriza o ato administrativo discricionário?",
						Back:  "Liberdade de escolha quanto ao conteúdo, destinatário, conveniência, oportunidade e forma, dentro dos limites legais.",
					},
				},
			},
		},
		{
			ProductInfo: models.ProductInfo{
				ID:          "2",
				Title:       "Receita Federal - Auditor Fiscal",
				Description: "Deck especializado para o concurso da Receita Federal com foco em legislação tributária e contabilidade.",
				Banca:       "ESAF",
				Area:        "Fiscal",
				Concurso:    "RFB 2024",
				Phase:       models.PhasePre,
				Period:      models.Period90,
				Price:       18999,
				Version:     "2024.8",
				Slug:        "receita-federal-auditor-fiscal",
				LastUpdate:  "22/02/2024",
				Tags:        []string{"receita", "federal", "tributário", "esaf"},
				Trending:    true,
				Popularity:  "4.122 estudando",
			},
			Details: models.DeckDetails{
				NumCards: 950,
				Topics: []models.Topic{
					{Name: "Direito Tributário", Cards: 320, Weight: models.WeightVeryHigh},
					{Name: "Contabilidade Geral", Cards: 280, Weight: models.WeightHigh},
					{Name: "Auditoria", Cards: 200, Weight: models.WeightHigh},
					{Name: "Legislação Específica", Cards: 150, Weight: models.WeightMedium},
				},
				PreviewCards: []models.PreviewCard{
					{
						Front: "Quais são os princípios tributários constitucionais?",
						Back:  "Legalidade, Anterioridade, Irretroatividade, Isonomia, Capacidade Contributiva, Vedação ao Confisco.",
					},
				},
			},
		},
		{
			ProductInfo: models.ProductInfo{
				ID:          "3",
				Title:       "Resumo Completo - Direito Constitucional",
				Description: "Teoria condensada dos principais tópicos de Direito Constitucional com esquemas e mapas conceituais.",
				Banca:       "Cebraspe",
				Area:        "Jurídica",
				Phase:       models.PhasePre,
				Period:      models.Period45,
				Price:       4999,
				Version:     "2025.1",
				Slug:        "resumo-direito-constitucional",
				LastUpdate:  "10/01/2025",
				Tags:        []string{"constitucional", "resumo", "teoria", "esquemas"},
				Featured:    true,
			},
			Details: models.SummaryDetails{
				Pages:        120,
				Format:       models.FormatPDF,
				HasExercises: true,
				Chapters: []models.Chapter{
					{Name: "Princípios Constitucionais", Pages: 25},
					{Name: "Direitos Fundamentais", Pages: 35},
					{Name: "Organização do Estado", Pages: 30},
					{Name: "Controle de Constitucionalidade", Pages: 30},
				},
			},
		},
		{
			ProductInfo: models.ProductInfo{
				ID:          "4",
				Title:       "Português para Concursos - Teoria Essencial",
				Description: "Resumo completo de gramática, interpretação de texto e redação oficial focado em concursos públicos.",
				Banca:       "FCC",
				Area:        "Básica",
				Phase:       models.PhasePre,
				Period:      models.Period30,
				Price:       2999,
				Version:     "2025.1",
				Slug:        "portugues-teoria-essencial",
				LastUpdate:  "05/01/2025",
				Tags:        []string{"português", "gramática", "interpretação", "redação"},
				Trending:    true,
			},
			Details: models.SummaryDetails{
				Pages:  80,
				Format: models.FormatPDF,
				Chapters: []models.Chapter{
					{Name: "Morfologia e Sintaxe", Pages: 20},
					{Name: "Interpretação de Texto", Pages: 25},
					{Name: "Redação Oficial", Pages: 20},
					{Name: "Ortografia e Acentuação", Pages: 15},
				},
			},
		},
		{
			ProductInfo: models.ProductInfo{
				ID:          "5",
				Title:       "Mapa Mental - Processo Civil",
				Description: "Visualização completa dos procedimentos do Processo Civil com fluxogramas interativos e conexões lógicas.",
				Banca:       "FGV",
				Area:        "Jurídica",
				Phase:       models.PhasePos,
				Period:      models.Period30,
				Price:       3999,
				Version:     "2025.1",
				Slug:        "mapa-mental-processo-civil",
				LastUpdate:  "08/01/2025",
				Tags:        []string{"processo", "civil", "mapa", "visual", "procedimentos"},
				Trending:    true,
			},
			Details: models.MindMapDetails{
				Nodes:           150,
				Interactive:     true,
				DownloadFormats: []models.DownloadFormat{models.DownloadPNG, models.DownloadPDF, models.DownloadSVG},
				Preview: models.MindMapPreview{
					Title:       "Estrutura do Processo Civil",
					Description: "Visualização dos principais institutos processuais",
					ImageURL:    "/mock-mindmap-preview.jpg",
				},
			},
		},
		{
			ProductInfo: models.ProductInfo{
				ID:          "6",
				Title:       "Organização Administrativa do Estado",
				Description: "Mapa mental completo da estrutura administrativa brasileira com órgãos, autarquias, fundações e empresas públicas.",
				Banca:       "Cebraspe",
				Area:        "Jurídica",
				Phase:       models.PhasePre,
				Period:      models.Period45,
				Price:       2999,
				Version:     "2025.1",
				Slug:        "organizacao-administrativa-estado",
				LastUpdate:  "12/01/2025",
				Tags:        []string{"administrativo", "organização", "estado", "estrutura"},
				Featured:    true,
			},
			Details: models.MindMapDetails{
				Nodes:           120,
				DownloadFormats: []models.DownloadFormat{models.DownloadPNG, models.DownloadPDF},
				Preview: models.MindMapPreview{
					Title:       "Estrutura do Estado Brasileiro",
					Description: "Organização administrativa completa",
					ImageURL:    "/mock-mindmap-admin.jpg",
				},
			},
		},
		{
			ProductInfo: models.ProductInfo{
				ID:          "7",
				Title:       "Pacote Completo - Tribunais FGV",
				Description: "Combo completo para concursos de Tribunais da banca FGV: flashcards + resumos + mapas mentais com 30% de desconto.",
				Banca:       "FGV",
				Area:        "Tribunais",
				Phase:       models.PhasePos,
				Period:      models.Period60,
				Price:       29999, // discount already applied
				Version:     "2025.1",
				Slug:        "pacote-completo-tribunais-fgv",
				LastUpdate:  "15/01/2025",
				Tags:        []string{"pacote", "tribunais", "fgv", "completo", "combo"},
				Featured:    true,
				Trending:    true,
			},
			Details: models.BundleDetails{
				Products: []models.ProductRef{
					{Type: models.TypeDeck, ID: "1"},
					{Type: models.TypeSummary, ID: "3"},
					{Type: models.TypeMindMap, ID: "5"},
				},
				Discount: 30,
			},
		},
	}
}
