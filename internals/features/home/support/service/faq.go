package service

import "strings"

// FaqEntry é uma pergunta frequente da central de ajuda.
type FaqEntry struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	IconName string `json:"icon_name"`
}

// FaqCategory agrupa as perguntas de uma mesma área do produto.
type FaqCategory struct {
	Category  string     `json:"category"`
	IconName  string     `json:"icon_name"`
	Questions []FaqEntry `json:"questions"`
}

// FaqEntries é o conteúdo estático da central de ajuda.
var FaqEntries = []FaqEntry{
	{
		Category: "Calculadora IMC",
		Question: "O que é o Score IMC?",
		Answer:   "O Score IMC (Índice de Maturidade Circular) é uma avaliação que mede o nível de maturidade da sua empresa em práticas de economia circular e sustentabilidade.",
		IconName: "Calculator",
	},
	{
		Category: "MTR",
		Question: "O que é um MTR?",
		Answer:   "MTR significa Manifesto de Transporte de Resíduos. É um documento obrigatório para o transporte de resíduos de construção e demolição.",
		IconName: "FileText",
	},
	{
		Category: "ESG",
		Question: "Como funciona o Painel ESG?",
		Answer:   "O Painel ESG permite monitorar indicadores de Environmental, Social e Governance da sua empresa, calculando scores baseados em métricas específicas.",
		IconName: "Leaf",
	},
	{
		Category: "Financeiro",
		Question: "Como exportar relatórios?",
		Answer:   "Você pode exportar relatórios em formato Excel clicando no botão \"Exportar\" presente em cada módulo do sistema.",
		IconName: "DollarSign",
	},
}

// GroupFaq agrupa as perguntas por categoria, com filtro opcional de
// busca por substring (sem diferenciar maiúsculas) em pergunta e resposta.
func GroupFaq(entries []FaqEntry, search string) []FaqCategory {
	search = strings.ToLower(strings.TrimSpace(search))

	order := []string{}
	grouped := map[string]*FaqCategory{}
	for _, e := range entries {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Question), search) &&
			!strings.Contains(strings.ToLower(e.Answer), search) {
			continue
		}
		cat, ok := grouped[e.Category]
		if !ok {
			cat = &FaqCategory{Category: e.Category, IconName: e.IconName}
			grouped[e.Category] = cat
			order = append(order, e.Category)
		}
		cat.Questions = append(cat.Questions, e)
	}

	out := make([]FaqCategory, 0, len(order))
	for _, name := range order {
		out = append(out, *grouped[name])
	}
	return out
}
