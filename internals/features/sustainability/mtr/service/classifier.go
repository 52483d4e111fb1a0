package service

import (
	"fmt"
	"time"

	"canteirocircular_backend/internals/constants"
)

// Classificação de urgência de um manifesto, derivada do vencimento.
const (
	ClassAtivo             = constants.MTRStatusAtivo
	ClassVencido           = constants.MTRStatusVencido
	ClassProximoVencimento = "proximo_vencimento"
)

// ExpiringWindow é a antecedência com que um manifesto entra em alerta.
const ExpiringWindow = 7 * 24 * time.Hour

// Classify deriva a situação do manifesto a partir do vencimento.
// Vencimento no passado ou agora: vencido. Dentro da janela de alerta:
// próximo do vencimento (o limite exato da janela ainda conta como ativo).
func Classify(dueDate, now time.Time) string {
	if !dueDate.After(now) {
		return ClassVencido
	}
	if dueDate.Before(now.Add(ExpiringWindow)) {
		return ClassProximoVencimento
	}
	return ClassAtivo
}

// StoredStatus reduz a classificação ao status persistido (ativo/vencido);
// o alerta de proximidade é sempre derivado na leitura.
func StoredStatus(dueDate, now time.Time) string {
	if Classify(dueDate, now) == ClassVencido {
		return constants.MTRStatusVencido
	}
	return constants.MTRStatusAtivo
}

// NextNumber gera o número sequencial de manifesto no formato MTR-AAAA-NNN.
func NextNumber(year int, seq int64) string {
	return fmt.Sprintf("MTR-%d-%03d", year, seq)
}
