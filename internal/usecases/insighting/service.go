// Package insighting contém os cálculos gerenciais (faturamento x meta, vendedores, carteira T20,
// custo de oportunidade e eficiência operacional). Os cálculos são funções puras sobre uma
// cópia do snapshot; o Service apenas injeta tabelas de referência e limites.
package insighting

import (
	"fmt"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

var _ Insighter = (*Service)(nil)

type Service struct {
	reader     SnapshotReader
	targets    domain.TargetTable
	clients    []domain.TopClient
	thresholds domain.Thresholds
}

func NewService(
	reader SnapshotReader,
	targets domain.TargetTable,
	clients []domain.TopClient,
	thresholds domain.Thresholds,
) *Service {
	return &Service{
		reader:     reader,
		targets:    targets,
		clients:    clients,
		thresholds: thresholds,
	}
}

func (s *Service) Thresholds() domain.Thresholds {
	return s.thresholds
}

func (s *Service) RevenueSummary(year int) (*domain.RevenueSummary, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return AggregateRevenue(year, s.reader.Snapshot(), s.targets, s.thresholds.AnnualTarget), nil
}

func (s *Service) SellerPerformance(year int, month domain.Month) (*domain.SellerPeriodPerformance, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return EvaluateSellers(year, month, s.reader.Snapshot(), s.targets), nil
}

func (s *Service) AnnualSellerPerformance(year int) (*domain.SellerPeriodPerformance, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return EvaluateSellersAnnual(year, s.reader.Snapshot(), s.targets), nil
}

func (s *Service) SellerRanking(year int, month domain.Month) ([]domain.SellerRankingItem, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return RankSellers(year, month, s.reader.Snapshot()), nil
}

func (s *Service) ClientPortfolio(currentYear, priorYear int) (*domain.ClientPortfolio, error) {
	if err := validateReferenceYear(currentYear); err != nil {
		return nil, err
	}
	if err := validateReferenceYear(priorYear); err != nil {
		return nil, err
	}
	return ClassifyPortfolio(s.clients, s.reader.Snapshot(), currentYear, priorYear, s.thresholds), nil
}

func (s *Service) OpportunityCost(year int) (*domain.OpportunityCostSummary, error) {
	if err := validateReferenceYear(year); err != nil {
		return nil, err
	}
	return EstimateOpportunityCost(year, s.clients, s.reader.Snapshot()), nil
}

func (s *Service) OperationalEfficiency(year int) (*domain.OperationalEfficiency, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return CalculateEfficiency(year, s.reader.Snapshot(), s.thresholds), nil
}

// Dashboard calcula todas as visões a partir da mesma cópia do snapshot.
// A carteira compara o ano com o anterior (2026 compara com o histórico de 2025).
func (s *Service) Dashboard(year int, month domain.Month) (*domain.Dashboard, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	return BuildDashboard(year, month, s.reader.Snapshot(), s.targets, s.clients, s.thresholds), nil
}

// BuildDashboard é a montagem do painel sem validação, usada também pela CLI offline
func BuildDashboard(
	year int,
	month domain.Month,
	snapshot *domain.Snapshot,
	targets domain.TargetTable,
	clients []domain.TopClient,
	thresholds domain.Thresholds,
) *domain.Dashboard {
	return &domain.Dashboard{
		Year:          year,
		Month:         month,
		Revenue:       AggregateRevenue(year, snapshot, targets, thresholds.AnnualTarget),
		Sellers:       EvaluateSellers(year, month, snapshot, targets),
		AnnualSellers: EvaluateSellersAnnual(year, snapshot, targets),
		Ranking:       RankSellers(year, month, snapshot),
		Portfolio:     ClassifyPortfolio(clients, snapshot, year, year-1, thresholds),
		Opportunity:   EstimateOpportunityCost(year, clients, snapshot),
		Efficiency:    CalculateEfficiency(year, snapshot, thresholds),
	}
}

func validateYear(year int) error {
	if !domain.IsPlanningYear(year) {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	return nil
}

func validatePeriod(year int, month domain.Month) error {
	if err := validateYear(year); err != nil {
		return err
	}
	if !month.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
	return nil
}

func validateReferenceYear(year int) error {
	if !domain.IsPlanningYear(year) && !domain.IsHistoricalYear(year) {
		return fmt.Errorf("%w: %d", ErrInvalidReferenceYear, year)
	}
	return nil
}
