// Package recording é o único caminho de escrita do snapshot: valida a chave, normaliza o texto
// digitado e altera o estado em memória. Leitores sempre recebem uma cópia consistente.
package recording

import (
	"fmt"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/hydrating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/normalizing"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SnapshotReader fornece leituras consistentes do snapshot
type SnapshotReader interface {
	Snapshot() *domain.Snapshot
}

type Recorder interface {
	SnapshotReader

	// RecordSellerActual grava o realizado de um vendedor no mês e retorna o valor normalizado
	RecordSellerActual(year int, month domain.Month, seller domain.SellerID, raw string) (float64, error)
	// RecordOperationalCost grava um campo de custo operacional do mês
	RecordOperationalCost(year int, month domain.Month, field domain.CostField, raw string) (float64, error)
	// RecordProjection grava a projeção de faturamento de um cliente T20 no ano
	RecordProjection(clientID string, year int, raw string) (float64, error)

	// Load substitui o estado em memória pelo snapshot persistido
	Load()
	// Flush persiste o snapshot quando houve alterações desde o último salvamento
	Flush() error
	Dirty() bool
}

type Service struct {
	mu           sync.RWMutex
	snapshot     *domain.Snapshot
	version      uint64
	savedVersion uint64

	flushMu  sync.Mutex
	repo     repository.SnapshotRepository
	hydrator *hydrating.Service
	clients  map[string]domain.TopClient
}

func NewService(repo repository.SnapshotRepository, clients []domain.TopClient) *Service {
	byID := make(map[string]domain.TopClient, len(clients))
	for _, client := range clients {
		byID[client.ID] = client
	}

	return &Service{
		snapshot: hydrating.Skeleton(clients),
		repo:     repo,
		hydrator: hydrating.NewService(repo, clients),
		clients:  byID,
	}
}

func (s *Service) Load() {
	snapshot := s.hydrator.Load()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snapshot
	s.version = 0
	s.savedVersion = 0
}

func (s *Service) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Clone()
}

func (s *Service) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version != s.savedVersion
}

func (s *Service) RecordSellerActual(year int, month domain.Month, seller domain.SellerID, raw string) (float64, error) {
	if err := validatePeriod(year, month); err != nil {
		return 0, err
	}
	if !seller.Valid() {
		return 0, NewRecordingError(ErrUnknownSeller, apiErrors.ErrInvalidFormat, fmt.Sprintf("%d", int(seller)))
	}

	value := normalizing.Normalize(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	sales, ok := s.snapshot.Revenue[year]
	if !ok || sales == nil {
		sales = &domain.MonthlySales{}
		s.snapshot.Revenue[year] = sales
	}
	sales.At(month).Set(seller, value)
	s.version++

	logrus.WithFields(logrus.Fields{
		"year":   year,
		"month":  month.Key(),
		"seller": seller.Key(),
		"value":  value,
	}).Debug("recording: realizado do vendedor atualizado")

	return value, nil
}

func (s *Service) RecordOperationalCost(year int, month domain.Month, field domain.CostField, raw string) (float64, error) {
	if err := validatePeriod(year, month); err != nil {
		return 0, err
	}
	if !field.Valid() {
		return 0, NewRecordingError(ErrUnknownCostField, apiErrors.ErrInvalidFormat, fmt.Sprintf("%d", int(field)))
	}

	value := normalizing.Normalize(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	costs, ok := s.snapshot.Operational[year]
	if !ok || costs == nil {
		costs = &domain.MonthlyCosts{}
		s.snapshot.Operational[year] = costs
	}
	costs.At(month).Set(field, value)
	s.version++

	logrus.WithFields(logrus.Fields{
		"year":  year,
		"month": month.Key(),
		"field": field.Key(),
		"value": value,
	}).Debug("recording: custo operacional atualizado")

	return value, nil
}

func (s *Service) RecordProjection(clientID string, year int, raw string) (float64, error) {
	if _, ok := s.clients[clientID]; !ok {
		return 0, NewRecordingError(ErrUnknownClient, apiErrors.ErrInvalidFormat, clientID)
	}
	if !domain.IsPlanningYear(year) {
		return 0, NewRecordingError(ErrUnknownYear, apiErrors.ErrInvalidFormat, fmt.Sprintf("%d", year))
	}

	value := normalizing.Normalize(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	years, ok := s.snapshot.Projections[clientID]
	if !ok || years == nil {
		years = make(map[int]float64, domain.PlanningYearCount)
		s.snapshot.Projections[clientID] = years
	}
	years[year] = value
	s.version++

	logrus.WithFields(logrus.Fields{
		"client": clientID,
		"year":   year,
		"value":  value,
	}).Debug("recording: projeção do cliente atualizada")

	return value, nil
}

// Flush serializa e salva o snapshot. Falhas são registradas e retornadas, mas o estado em
// memória continua válido e marcado como pendente para a próxima tentativa.
func (s *Service) Flush() error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.RLock()
	if s.version == s.savedVersion {
		s.mu.RUnlock()
		return nil
	}
	version := s.version
	payload, err := json.Marshal(s.snapshot)
	s.mu.RUnlock()

	if err != nil {
		logrus.WithError(err).Error("recording: erro ao serializar snapshot")
		return NewRecordingError(ErrEncodeSnapshot, apiErrors.ErrInternalServer, err.Error())
	}

	if s.repo == nil {
		return nil
	}

	if err := s.repo.Save(payload); err != nil {
		logrus.WithError(err).Error("recording: erro ao salvar snapshot")
		return NewRecordingError(ErrSaveSnapshot, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.mu.Lock()
	if version > s.savedVersion {
		s.savedVersion = version
	}
	s.mu.Unlock()

	logrus.WithField("bytes", len(payload)).Info("recording: snapshot salvo")

	return nil
}

func validatePeriod(year int, month domain.Month) error {
	if !domain.IsPlanningYear(year) {
		return NewRecordingError(ErrUnknownYear, apiErrors.ErrInvalidFormat, fmt.Sprintf("%d", year))
	}
	if !month.Valid() {
		return NewRecordingError(ErrUnknownMonth, apiErrors.ErrInvalidFormat, fmt.Sprintf("%d", int(month)))
	}
	return nil
}
