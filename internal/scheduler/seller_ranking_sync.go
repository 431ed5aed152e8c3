package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

type SellerRankingSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

type SellerRankingSyncService struct {
	scheduler           *gocron.Scheduler
	reader              insighting.SnapshotReader
	rankingRepo         repository.SellerRankingRepository
	config              SellerRankingSyncConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSellerRankingSyncService(
	reader insighting.SnapshotReader,
	rankingRepo repository.SellerRankingRepository,
	cfg *config.Config,
) *SellerRankingSyncService {
	rankingConfig := SellerRankingSyncConfig{
		CronSchedule:  cfg.SellerRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:   cfg.SellerRankingSync.Enabled,      // Default: desabilitado
		MonthLookBack: cfg.SellerRankingSync.MonthLookBack,
	}

	if rankingConfig.MonthLookBack < 0 {
		rankingConfig.MonthLookBack = 0
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  rankingConfig.CronSchedule,
		"month_lookback": rankingConfig.MonthLookBack,
	}).Info("Configuração do agendador do ranking de vendedores carregada")

	return &SellerRankingSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		reader:      reader,
		rankingRepo: rankingRepo,
		config:      rankingConfig,
		now:         time.Now,
	}
}

func (s *SellerRankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do ranking de vendedores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking de vendedores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateSellerRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de vendedores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de vendedores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de vendedores")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateSellerRanking recalcula e grava o ranking do mês corrente e dos meses anteriores configurados
func (s *SellerRankingSyncService) UpdateSellerRanking() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking de vendedores já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização do ranking de vendedores")

	snapshot := s.reader.Snapshot()

	var failed int
	for _, period := range s.periods() {
		if _, err := s.processPeriod(snapshot, period.year, period.month); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("erro ao atualizar ranking de vendedores em %d período(s)", failed)
	}

	logrus.Info("Atualização do ranking de vendedores concluída")

	return nil
}

type period struct {
	year  int
	month domain.Month
}

// periods lista o mês corrente e os anteriores dentro da janela de planejamento
func (s *SellerRankingSyncService) periods() []period {
	year, month := utils.ReferencePeriod(s.now())

	periods := make([]period, 0, s.config.MonthLookBack+1)
	for i := 0; i <= s.config.MonthLookBack; i++ {
		y, m := utils.AddMonths(year, month, -i)
		if !domain.IsPlanningYear(y) {
			continue
		}
		periods = append(periods, period{year: y, month: domain.Month(m)})
	}

	return periods
}

// processPeriod calcula o ranking do período a partir do snapshot e grava por upsert.
// A variação de posição é sempre contra o mês anterior, a mesma base da leitura ao vivo,
// então rodar o job de novo no mesmo mês não muda o significado de position_change.
func (s *SellerRankingSyncService) processPeriod(snapshot *domain.Snapshot, year int, month domain.Month) ([]*domain.SellerRankingItem, error) {
	items := insighting.RankSellers(year, month, snapshot)

	updated := make([]*domain.SellerRankingItem, len(items))
	for i := range items {
		updated[i] = &items[i]
	}

	if err := s.rankingRepo.SaveOrUpdateSellerRanking(updated); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"year":  year,
			"month": month.Key(),
		}).Error("SellerRankingSyncService: erro ao salvar ranking de vendedores")
		return updated, err
	}

	logrus.WithFields(logrus.Fields{
		"year":   year,
		"month":  month.Key(),
		"leader": updated[0].Seller.Key(),
	}).Info("SellerRankingSyncService: ranking atualizado")

	return updated, nil
}

// TriggerManualSync inicia manualmente uma atualização do ranking de vendedores
func (s *SellerRankingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking de vendedores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de vendedores")
	go func() {
		if err := s.UpdateSellerRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de vendedores")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SellerRankingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"month_lookback":         s.config.MonthLookBack,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
