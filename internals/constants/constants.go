package constants

// Tipos de transação financeira
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Status de MTR (persistido; a classificação de urgência é derivada do vencimento)
const (
	MTRStatusAtivo   = "ativo"
	MTRStatusVencido = "vencido"
)

// Status de chamado de suporte
const (
	TicketAberto      = "aberto"
	TicketEmAndamento = "em_andamento"
	TicketResolvido   = "resolvido"
)

// Prioridades de chamado
const (
	PriorityBaixa = "baixa"
	PriorityMedia = "média"
	PriorityAlta  = "alta"
)

// Status de meta ESG
const (
	GoalEmAndamento = "em_andamento"
	GoalConcluida   = "concluida"
)

// Períodos do dashboard
const (
	PeriodAtual     = "atual"     // mês corrente
	PeriodAnterior  = "anterior"  // mês anterior
	PeriodTrimestre = "trimestre" // últimos 3 meses
)
