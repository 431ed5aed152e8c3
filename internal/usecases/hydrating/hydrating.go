// Package hydrating reconstrói o snapshot em memória a partir do payload persistido
package hydrating

import (
	"bytes"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/normalizing"
)

// Stats conta as folhas aproveitadas do payload e as que caíram no valor padrão
type Stats struct {
	Loaded   int
	Defaults int
}

// Skeleton cria o snapshot zerado com todos os anos planejáveis, meses e clientes
func Skeleton(clients []domain.TopClient) *domain.Snapshot {
	snapshot := &domain.Snapshot{
		Revenue:     make(map[int]*domain.MonthlySales, domain.PlanningYearCount),
		Operational: make(map[int]*domain.MonthlyCosts, domain.PlanningYearCount),
		Projections: make(map[string]map[int]float64, len(clients)),
	}

	for _, year := range domain.PlanningYears() {
		snapshot.Revenue[year] = &domain.MonthlySales{}
		snapshot.Operational[year] = &domain.MonthlyCosts{}
	}

	for _, client := range clients {
		years := make(map[int]float64, domain.PlanningYearCount)
		for _, year := range domain.PlanningYears() {
			years[year] = 0
		}
		snapshot.Projections[client.ID] = years
	}

	return snapshot
}

// Hydrate mescla o payload sobre o esqueleto folha a folha (ano → mês → campo).
// Seções, anos, meses ou campos ausentes ou inválidos ficam com o zero do esqueleto;
// chaves desconhecidas do payload são ignoradas.
func Hydrate(payload []byte, clients []domain.TopClient) (*domain.Snapshot, Stats) {
	snapshot := Skeleton(clients)
	stats := Stats{}

	if len(bytes.TrimSpace(payload)) == 0 {
		return snapshot, stats
	}

	if !gjson.ValidBytes(payload) {
		logrus.Warn("hydrating: payload persistido inválido, usando snapshot zerado")
		return snapshot, stats
	}

	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		logrus.Warn("hydrating: payload persistido não é um objeto, usando snapshot zerado")
		return snapshot, stats
	}

	revenue := root.Get("revenue")
	operational := root.Get("operational")
	projections := root.Get("projections")

	for _, year := range domain.PlanningYears() {
		yearKey := strconv.Itoa(year)
		revenueYear := revenue.Get(yearKey)
		operationalYear := operational.Get(yearKey)

		for _, month := range domain.Months() {
			sales := snapshot.Revenue[year].At(month)
			monthSales := revenueYear.Get(month.Key())
			for _, seller := range domain.Sellers() {
				if value, ok := leaf(monthSales.Get(seller.Key())); ok {
					sales.Set(seller, value)
					stats.Loaded++
				} else {
					stats.Defaults++
				}
			}

			costs := snapshot.Operational[year].At(month)
			monthCosts := operationalYear.Get(month.Key())
			for _, field := range domain.CostFields() {
				if value, ok := leaf(monthCosts.Get(field.Key())); ok {
					costs.Set(field, value)
					stats.Loaded++
				} else {
					stats.Defaults++
				}
			}
		}

		for _, client := range clients {
			if value, ok := leaf(projections.Get(client.ID).Get(yearKey)); ok {
				snapshot.Projections[client.ID][year] = value
				stats.Loaded++
			} else {
				stats.Defaults++
			}
		}
	}

	return snapshot, stats
}

// leaf aceita números e textos numéricos; qualquer outro tipo usa o padrão do esqueleto
func leaf(result gjson.Result) (float64, bool) {
	switch result.Type {
	case gjson.Number:
		return result.Float(), true
	case gjson.String:
		return normalizing.Normalize(result.Str), true
	default:
		return 0, false
	}
}

// Service carrega o snapshot persistido do repositório
type Service struct {
	repo    repository.SnapshotRepository
	clients []domain.TopClient
}

func NewService(repo repository.SnapshotRepository, clients []domain.TopClient) *Service {
	return &Service{
		repo:    repo,
		clients: clients,
	}
}

// Load nunca falha: erros de leitura são registrados e o esqueleto zerado é usado
func (s *Service) Load() *domain.Snapshot {
	if s.repo == nil {
		logrus.Info("hydrating: nenhum repositório configurado, usando snapshot zerado")
		return Skeleton(s.clients)
	}

	payload, err := s.repo.Load()
	if err != nil {
		logrus.WithError(err).Error("hydrating: erro ao carregar snapshot persistido, usando snapshot zerado")
		return Skeleton(s.clients)
	}

	if payload == nil {
		logrus.Info("hydrating: nenhum snapshot persistido encontrado, usando snapshot zerado")
		return Skeleton(s.clients)
	}

	snapshot, stats := Hydrate(payload, s.clients)

	logrus.WithFields(logrus.Fields{
		"loaded":   stats.Loaded,
		"defaults": stats.Defaults,
	}).Info("hydrating: snapshot carregado")

	return snapshot
}
