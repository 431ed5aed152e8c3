// Package scheduler contém os serviços de agendamento: persistência periódica do snapshot
// e atualização do ranking de vendedores
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/internal/config"
)

// SnapshotFlusher é o lado de persistência do serviço de lançamentos
type SnapshotFlusher interface {
	Flush() error
	Dirty() bool
}

type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	flusher             SnapshotFlusher
	config              SnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSavedAt         time.Time
	lastError           string
	stopped             chan struct{}
}

func NewSnapshotSyncService(flusher SnapshotFlusher, cfg *config.Config) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: cfg.SnapshotSync.CronSchedule, // Default: a cada minuto
		SyncEnabled:  cfg.SnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"cron_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do snapshot carregada")

	return &SnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		flusher:   flusher,
		config:    syncConfig,
		stopped:   make(chan struct{}),
	}
}

// Start agenda a persistência periódica. Com o agendamento desligado, o snapshot ainda é
// salvo quando o contexto é cancelado.
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if s.config.SyncEnabled {
		logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de persistência do snapshot")

		_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
			if err := s.Sync(); err != nil {
				logrus.WithError(err).Error("Erro na persistência agendada do snapshot")
			}
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar persistência do snapshot: %w", err)
		}

		s.scheduler.StartAsync()
	} else {
		logrus.Info("Cron de persistência do snapshot desabilitada por configuração")
	}

	go func() {
		defer close(s.stopped)

		<-ctx.Done()
		logrus.Info("Parando cron do snapshot e salvando alterações pendentes")
		s.scheduler.Stop()

		if err := s.Sync(); err != nil {
			logrus.WithError(err).Error("Erro ao salvar snapshot no desligamento")
		}
	}()

	return nil
}

// Stopped é fechado depois do salvamento final, quando o contexto de Start é cancelado
func (s *SnapshotSyncService) Stopped() <-chan struct{} {
	return s.stopped
}

// Sync salva o snapshot se houver alterações pendentes
func (s *SnapshotSyncService) Sync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Persistência do snapshot já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	var err error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		if err != nil {
			s.lastError = err.Error()
		}
		s.syncMutex.Unlock()
	}()

	if !s.flusher.Dirty() {
		logrus.Debug("Snapshot sem alterações pendentes")
		return nil
	}

	if err = s.flusher.Flush(); err != nil {
		return err
	}

	s.syncMutex.Lock()
	s.lastSavedAt = time.Now()
	s.lastError = ""
	s.syncMutex.Unlock()

	return nil
}

// TriggerManualSync inicia manualmente uma persistência do snapshot
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Persistência do snapshot já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando persistência manual do snapshot")
	go func() {
		if err := s.Sync(); err != nil {
			logrus.WithError(err).Error("Erro na persistência manual do snapshot")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"dirty":                  s.flusher.Dirty(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_saved_at":          s.lastSavedAt,
		"last_error":             s.lastError,
	}
}
