package domain

const (
	DefaultStarMultiplier      = 1.2
	DefaultDeclineMultiplier   = 0.8
	DefaultLogisticsWarningPct = 10.0
	DefaultGoodsWarningPct     = 50.0
)

// Thresholds reúne os limites de classificação e alerta usados pelos cálculos
type Thresholds struct {
	// StarMultiplier: cliente é ESTRELA quando atual > anterior * StarMultiplier
	StarMultiplier float64 `json:"star_multiplier"`
	// DeclineMultiplier: cliente está em QUEDA quando atual < anterior * DeclineMultiplier
	DeclineMultiplier float64 `json:"decline_multiplier"`
	// LogisticsWarningPct é o teto do custo logístico sobre o faturamento (%)
	LogisticsWarningPct float64 `json:"logistics_warning_pct"`
	// GoodsWarningPct é o teto do custo de mercadoria sobre o faturamento (%)
	GoodsWarningPct float64 `json:"goods_warning_pct"`
	// AnnualTarget é a meta anual usada no atingimento geral
	AnnualTarget float64 `json:"annual_target"`
}

// DefaultThresholds usa a soma da tabela de metas como meta anual
func DefaultThresholds(targets TargetTable) Thresholds {
	return Thresholds{
		StarMultiplier:      DefaultStarMultiplier,
		DeclineMultiplier:   DefaultDeclineMultiplier,
		LogisticsWarningPct: DefaultLogisticsWarningPct,
		GoodsWarningPct:     DefaultGoodsWarningPct,
		AnnualTarget:        targets.AnnualTotal(),
	}
}
