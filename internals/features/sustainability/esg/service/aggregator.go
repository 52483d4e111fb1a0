package service

import (
	"fmt"
	"math"
	"time"
)

var ErrIntervaloInvalido = fmt.Errorf("intervalo de datas inválido")

// PillarEntry é um lançamento de pontuação ESG em um instante.
type PillarEntry struct {
	Environmental int
	Social        int
	Governance    int
	CreatedAt     time.Time
}

// Snapshot resume o painel ESG a partir do histórico de lançamentos.
type Snapshot struct {
	Environmental int `json:"environmental_score"`
	Social        int `json:"social_score"`
	Governance    int `json:"governance_score"`

	// Score é a média dos três pilares do lançamento mais recente.
	Score int `json:"score"`
	// Average é a média das médias de todos os lançamentos.
	Average int `json:"average"`

	// Variações do lançamento atual contra o imediatamente anterior.
	Delta              int `json:"delta"`
	DeltaEnvironmental int `json:"delta_environmental"`
	DeltaSocial        int `json:"delta_social"`
	DeltaGovernance    int `json:"delta_governance"`

	Entries int `json:"entries"`
}

func entryMean(e PillarEntry) float64 {
	return float64(e.Environmental+e.Social+e.Governance) / 3.0
}

// Summarize consolida o histórico ESG. As entradas devem vir em ordem
// crescente de created_at; histórico vazio produz um snapshot zerado.
func Summarize(entries []PillarEntry) Snapshot {
	if len(entries) == 0 {
		return Snapshot{}
	}

	current := entries[len(entries)-1]
	snap := Snapshot{
		Environmental: current.Environmental,
		Social:        current.Social,
		Governance:    current.Governance,
		Score:         int(math.Round(entryMean(current))),
		Entries:       len(entries),
	}

	sum := 0.0
	for _, e := range entries {
		sum += entryMean(e)
	}
	snap.Average = int(math.Round(sum / float64(len(entries))))

	if len(entries) >= 2 {
		previous := entries[len(entries)-2]
		snap.Delta = int(math.Round(entryMean(current)) - math.Round(entryMean(previous)))
		snap.DeltaEnvironmental = current.Environmental - previous.Environmental
		snap.DeltaSocial = current.Social - previous.Social
		snap.DeltaGovernance = current.Governance - previous.Governance
	}
	return snap
}

// LastN recorta os n lançamentos mais recentes (n <= 0 devolve tudo).
func LastN(entries []PillarEntry, n int) []PillarEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}

// InRange recorta os lançamentos dentro de [start, end]. end anterior a
// start é um erro de validação.
func InRange(entries []PillarEntry, start, end time.Time) ([]PillarEntry, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: fim anterior ao início", ErrIntervaloInvalido)
	}
	out := make([]PillarEntry, 0, len(entries))
	for _, e := range entries {
		if e.CreatedAt.Before(start) || e.CreatedAt.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// DistributionItem é a fatia de um tipo de resíduo no gráfico de pizza.
type DistributionItem struct {
	WasteType  string    `json:"waste_type"`
	Percentage float64   `json:"percentage"`
	CreatedAt  time.Time `json:"created_at"`
}

// CurrentDistribution devolve o conjunto de fatias mais recente: todas as
// linhas que compartilham o maior created_at formam uma distribuição.
func CurrentDistribution(items []DistributionItem) []DistributionItem {
	if len(items) == 0 {
		return nil
	}

	latest := items[0].CreatedAt
	for _, it := range items {
		if it.CreatedAt.After(latest) {
			latest = it.CreatedAt
		}
	}

	out := make([]DistributionItem, 0, len(items))
	for _, it := range items {
		if it.CreatedAt.Equal(latest) {
			out = append(out, it)
		}
	}
	return out
}
