package insighting

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// SnapshotReader fornece uma cópia consistente do snapshot para os cálculos
type SnapshotReader interface {
	Snapshot() *domain.Snapshot
}

// Insighter expõe as visões gerenciais calculadas sobre o snapshot atual
type Insighter interface {
	// RevenueSummary obtém a série mensal e trimestral de faturamento contra as metas
	RevenueSummary(year int) (*domain.RevenueSummary, error)

	// SellerPerformance obtém o atingimento de cada vendedor no mês e o melhor do mês
	SellerPerformance(year int, month domain.Month) (*domain.SellerPeriodPerformance, error)

	// AnnualSellerPerformance obtém o atingimento anual de cada vendedor
	AnnualSellerPerformance(year int) (*domain.SellerPeriodPerformance, error)

	// SellerRanking obtém o ranking de vendedores do mês com a variação contra o mês anterior
	SellerRanking(year int, month domain.Month) ([]domain.SellerRankingItem, error)

	// ClientPortfolio classifica a carteira T20 do ano atual contra o anterior
	ClientPortfolio(currentYear, priorYear int) (*domain.ClientPortfolio, error)

	// OpportunityCost estima o custo de oportunidade dos clientes parados no ano
	OpportunityCost(year int) (*domain.OpportunityCostSummary, error)

	// OperationalEfficiency obtém margens e alertas de custo operacional do ano
	OperationalEfficiency(year int) (*domain.OperationalEfficiency, error)

	// Dashboard reúne todas as visões em uma única leitura do snapshot
	Dashboard(year int, month domain.Month) (*domain.Dashboard, error)
}
