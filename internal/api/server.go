package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/exporter"
	"github.com/vfg2006/sales-performance-api/internal/api/handler"
	"github.com/vfg2006/sales-performance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/scheduler"
	"github.com/vfg2006/sales-performance-api/internal/usecases/advising"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/internal/usecases/recording"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências das rotas
type Services struct {
	Recorder          recording.Recorder
	Insights          insighting.Insighter
	Ranking           ranking.RankingService
	Adviser           advising.Adviser
	Exporter          exporter.Exporter
	Reference         handler.ReferenceData
	SnapshotSync      *scheduler.SnapshotSyncService
	SellerRankingSync *scheduler.SellerRankingSyncService
}

func New(config *config.Config, services Services) (*Server, error) {
	// interfaces nil para rotinas não configuradas, nunca ponteiros nil
	cronServices := handler.CronJobServices{}
	if services.SnapshotSync != nil {
		cronServices.SnapshotSyncService = services.SnapshotSync
	}
	if services.SellerRankingSync != nil {
		cronServices.SellerRankingSyncService = services.SellerRankingSync
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Insights(services.Insights)...),
		router.WithRoutes(handler.SellerRanking(services.Ranking)...),
		router.WithRoutes(handler.Recording(services.Recorder)...),
		router.WithRoutes(handler.Reference(services.Reference)...),
		router.WithRoutes(handler.Advisory(services.Adviser)...),
		router.WithRoutes(handler.Export(services.Insights, services.Exporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(time.Duration(config.Server.SlowRequestMs) * time.Millisecond),
		middleware.Cors(config.Server.AllowedOrigins...),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	logrus.WithFields(logrus.Fields{
		"planning_years": domain.PlanningYears(),
		"advisory":       config.Advisory.Enabled,
		"routes":         rt.Routes(),
	}).Debug("Rotas registradas")

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
