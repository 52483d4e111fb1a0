package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"canteirocircular_backend/internals/constants"

	"github.com/google/uuid"
)

// Entry é uma transação financeira já carregada para agregação.
type Entry struct {
	ID          uuid.UUID
	Description string
	Project     string
	Category    string
	Type        string
	Amount      float64
	Date        time.Time
}

// Períodos aceitos pelo filtro financeiro.
const (
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// Filter é o conjunto de filtros combináveis da tela financeira.
// Campos vazios não filtram; todos os preenchidos valem em conjunto.
type Filter struct {
	Type      string
	Category  string
	Project   string
	MinAmount *float64
	MaxAmount *float64
	Period    string
}

// Apply filtra as transações. O filtro de projeto é por substring sem
// diferenciar maiúsculas; o período é relativo a now (mês ou ano corrente).
func Apply(entries []Entry, f Filter, now time.Time) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Type != "" && f.Type != "all" && e.Type != f.Type {
			continue
		}
		if f.Category != "" && f.Category != "all" && e.Category != f.Category {
			continue
		}
		if f.Project != "" && !strings.Contains(strings.ToLower(e.Project), strings.ToLower(f.Project)) {
			continue
		}
		if f.MinAmount != nil && e.Amount < *f.MinAmount {
			continue
		}
		if f.MaxAmount != nil && e.Amount > *f.MaxAmount {
			continue
		}
		if !inPeriod(e.Date, f.Period, now) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func inPeriod(date time.Time, period string, now time.Time) bool {
	switch period {
	case PeriodMonth:
		return date.Year() == now.Year() && date.Month() == now.Month()
	case PeriodYear:
		return date.Year() == now.Year()
	default:
		return true
	}
}

// Totals resume entradas, saídas e saldo.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

func Summarize(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		switch e.Type {
		case constants.TransactionIncome:
			t.Income += e.Amount
		case constants.TransactionExpense:
			t.Expense += e.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// CategorySlice é uma fatia do gráfico de despesas por categoria.
type CategorySlice struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ByCategory agrega somente as despesas, por categoria, em ordem
// decrescente de valor (empates por nome).
func ByCategory(entries []Entry) []CategorySlice {
	totals := map[string]float64{}
	for _, e := range entries {
		if e.Type != constants.TransactionExpense {
			continue
		}
		totals[e.Category] += e.Amount
	}

	out := make([]CategorySlice, 0, len(totals))
	for cat, total := range totals {
		out = append(out, CategorySlice{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

var monthShort = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthPoint é um ponto do gráfico de evolução mensal.
type MonthPoint struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlyTrend agrega por (ano, mês) do campo date, em ordem cronológica.
// Meses sem lançamentos não aparecem.
func MonthlyTrend(entries []Entry) []MonthPoint {
	type key struct {
		year  int
		month int
	}
	buckets := map[key]*MonthPoint{}
	for _, e := range entries {
		k := key{e.Date.Year(), int(e.Date.Month())}
		p, ok := buckets[k]
		if !ok {
			p = &MonthPoint{
				Year:  k.year,
				Month: k.month,
				Label: monthShort[k.month-1] + "/" + strconv.Itoa(k.year),
			}
			buckets[k] = p
		}
		switch e.Type {
		case constants.TransactionIncome:
			p.Income += e.Amount
		case constants.TransactionExpense:
			p.Expense += e.Amount
		}
	}

	out := make([]MonthPoint, 0, len(buckets))
	for _, p := range buckets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

