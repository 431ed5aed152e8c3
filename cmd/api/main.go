package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/infrastructure/exporter"
	"github.com/vfg2006/sales-performance-api/infrastructure/integrator/advisory"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/api"
	"github.com/vfg2006/sales-performance-api/internal/api/handler"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/reference"
	"github.com/vfg2006/sales-performance-api/internal/scheduler"
	"github.com/vfg2006/sales-performance-api/internal/usecases/advising"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/internal/usecases/recording"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

const (
	dbConnectTimeout = 5 * time.Second
	shutdownFlushMax = 10 * time.Second
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.Env, cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.WithFields(logrus.Fields{
		"env":   cfg.App.Env,
		"level": logrus.GetLevel(),
	}).Info("Logs configurados")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshotRepo, sellerRankingRepo, closeDB := repositories(ctx, cfg.Database)
	defer closeDB()

	targets := reference.Targets()
	clients := reference.TopClients()
	thresholds := cfg.Thresholds.Domain(targets)

	recorder := recording.NewService(snapshotRepo, clients)
	recorder.Load()

	insightService := insighting.NewService(recorder, targets, clients, thresholds)
	rankingService := ranking.NewSellerRankingService(sellerRankingRepo, insightService)

	var advisoryClient advisory.Client
	if cfg.Advisory.Enabled {
		advisoryClient = advisory.NewClient(cfg.Advisory)
	} else {
		logrus.Info("Serviço de recomendações desabilitado por configuração")
	}
	adviser := advising.NewService(insightService, advisoryClient)

	snapshotSyncService := scheduler.NewSnapshotSyncService(recorder, cfg)
	sellerRankingSyncService := scheduler.NewSellerRankingSyncService(recorder, sellerRankingRepo, cfg)

	// Inicia os agendadores em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de persistência do snapshot")
	} else {
		logrus.Info("Agendador de persistência do snapshot iniciado com sucesso")
	}

	if err := sellerRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de vendedores")
	} else {
		logrus.Info("Agendador do ranking de vendedores iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Recorder:          recorder,
		Insights:          insightService,
		Ranking:           rankingService,
		Adviser:           adviser,
		Exporter:          exporter.NewXLSXExporter(),
		Reference:         handler.NewReferenceData(targets, clients, thresholds),
		SnapshotSync:      snapshotSyncService,
		SellerRankingSync: sellerRankingSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	// O cancelamento dispara o salvamento final do snapshot
	cancel()
	select {
	case <-snapshotSyncService.Stopped():
	case <-time.After(shutdownFlushMax):
		logrus.Warn("Tempo esgotado aguardando o salvamento final do snapshot")
	}
}

// repositories usa o PostgreSQL quando habilitado e acessível; senão, os repositórios em memória
func repositories(ctx context.Context, dbConfig config.Database) (repository.SnapshotRepository, repository.SellerRankingRepository, func()) {
	if !dbConfig.Enabled {
		logrus.Warn("Banco de dados desabilitado, usando repositórios em memória")
		return repository.NewMemorySnapshotRepository(), repository.NewMemorySellerRankingRepository(), func() {}
	}

	conn, err := pgconn(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Warn("PostgreSQL inacessível, usando repositórios em memória")
		return repository.NewMemorySnapshotRepository(), repository.NewMemorySellerRankingRepository(), func() {}
	}

	closeConn := func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}

	return repository.NewSnapshotRepository(conn), repository.NewSellerRankingRepository(conn), closeConn
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	connectCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(connectCtx, dbConfig)
	if err != nil {
		return nil, err
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}
