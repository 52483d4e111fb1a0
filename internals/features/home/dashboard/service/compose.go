package service

import (
	"math"
	"time"

	finservice "canteirocircular_backend/internals/features/finance/transactions/service"
	esgservice "canteirocircular_backend/internals/features/sustainability/esg/service"
	imcservice "canteirocircular_backend/internals/features/sustainability/imc/service"
	mtrservice "canteirocircular_backend/internals/features/sustainability/mtr/service"
)

// ImcEntry é uma avaliação IMC reduzida ao que o dashboard precisa.
type ImcEntry struct {
	TotalScore int
	CreatedAt  time.Time
}

// Inputs reúne os dados já carregados de cada módulo, em ordem
// cronológica. Os lançamentos financeiros já chegam recortados ao
// período; avaliações IMC e lançamentos ESG são recortados pelo
// próprio compositor.
type Inputs struct {
	Imc         []ImcEntry
	Esg         []esgservice.PillarEntry
	MtrDueDates []time.Time
	Financial   []finservice.Entry
}

// Metrics agrega os cartões do dashboard para um período.
type Metrics struct {
	Period string `json:"period"`

	Imc struct {
		Latest        int    `json:"latest"`
		Average       int    `json:"average"`
		MaturityLevel string `json:"maturity_level"`
		Assessments   int64  `json:"assessments"`
	} `json:"imc"`

	Esg esgservice.Snapshot `json:"esg"`

	Mtr struct {
		Ativos            int64 `json:"ativos"`
		Vencidos          int64 `json:"vencidos"`
		ProximoVencimento int64 `json:"proximo_vencimento"`
	} `json:"mtr"`

	Financial struct {
		Totals finservice.Totals       `json:"totals"`
		Trend  []finservice.MonthPoint `json:"trend"`
	} `json:"financial"`
}

// Compose consolida os indicadores de todos os módulos em um payload
// só, recortando avaliações IMC e lançamentos ESG ao intervalo do
// período. Os MTRs ficam fora do recorte: a classificação deles é
// função do vencimento contra o agora, não do período escolhido.
func Compose(in Inputs, period string, now time.Time) (Metrics, error) {
	from, to, err := PeriodRange(period, now)
	if err != nil {
		return Metrics{}, err
	}

	m := Metrics{Period: period}
	if m.Period == "" {
		m.Period = "atual"
	}

	var imc []ImcEntry
	for _, e := range in.Imc {
		if e.CreatedAt.Before(from) || !e.CreatedAt.Before(to) {
			continue
		}
		imc = append(imc, e)
	}
	m.Imc.Assessments = int64(len(imc))
	if len(imc) > 0 {
		latest := imc[len(imc)-1].TotalScore
		m.Imc.Latest = latest
		m.Imc.MaturityLevel = imcservice.MaturityLevel(latest)

		sum := 0
		for _, e := range imc {
			sum += e.TotalScore
		}
		m.Imc.Average = int(math.Round(float64(sum) / float64(len(imc))))
	}

	var esg []esgservice.PillarEntry
	for _, e := range in.Esg {
		if e.CreatedAt.Before(from) || !e.CreatedAt.Before(to) {
			continue
		}
		esg = append(esg, e)
	}
	m.Esg = esgservice.Summarize(esg)

	for _, due := range in.MtrDueDates {
		switch mtrservice.Classify(due, now) {
		case mtrservice.ClassVencido:
			m.Mtr.Vencidos++
		case mtrservice.ClassProximoVencimento:
			m.Mtr.ProximoVencimento++
			m.Mtr.Ativos++
		default:
			m.Mtr.Ativos++
		}
	}

	m.Financial.Totals = finservice.Summarize(in.Financial)
	m.Financial.Trend = finservice.MonthlyTrend(in.Financial)
	return m, nil
}
