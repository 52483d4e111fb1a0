package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"canteirocircular_backend/internals/constants"
)

var ErrPeriodoInvalido = fmt.Errorf("período inválido")

// PeriodRange traduz o período do dashboard em um intervalo [from, to).
// atual: mês corrente; anterior: mês passado; Nmeses (ex.: 3meses,
// 6meses): os N meses que terminam no mês corrente. trimestre é um
// atalho para 3meses.
func PeriodRange(period string, now time.Time) (time.Time, time.Time, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch period {
	case "", constants.PeriodAtual:
		return monthStart, monthStart.AddDate(0, 1, 0), nil
	case constants.PeriodAnterior:
		return monthStart.AddDate(0, -1, 0), monthStart, nil
	case constants.PeriodTrimestre:
		return monthStart.AddDate(0, -2, 0), monthStart.AddDate(0, 1, 0), nil
	}

	if raw, ok := strings.CutSuffix(period, "meses"); ok {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			return monthStart.AddDate(0, -(n - 1), 0), monthStart.AddDate(0, 1, 0), nil
		}
	}
	return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrPeriodoInvalido, period)
}

// ExportRow é uma linha genérica do relatório exportável do dashboard.
type ExportRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
