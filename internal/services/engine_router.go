package services

import (
	"strings"

	"opsintel/internal/models"
)

// Keywords are matched as lower-case substrings of the question
var (
	tabularKeywords = []string{
		"ticket médio", "média de", "proporção", "percentual",
		"crescimento", "variação", "tendência", "dia da semana",
		"comparar com", "calcular", "dividir",
		"average ticket", "average of", "proportion", "percentage",
		"growth", "variation", "trend", "day of week",
		"compare with", "calculate", "divide",
	}

	sqlKeywords = []string{
		"maior", "menor", "total", "soma", "count", "quantos",
		"listar", "mostrar", "top", "ranking",
		"highest", "lowest", "sum", "how many", "list", "show",
	}
)

type engineRouter struct{}

func NewEngineRouter() EngineRouterInterface {
	return &engineRouter{}
}

// Route picks the tabular engine only when it scores strictly higher; ties go to SQL
func (r *engineRouter) Route(question string) models.EngineMode {
	q := strings.ToLower(question)

	if keywordScore(q, tabularKeywords) > keywordScore(q, sqlKeywords) {
		return models.EngineTabular
	}
	return models.EngineSQL
}

func keywordScore(question string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(question, kw) {
			score++
		}
	}
	return score
}
