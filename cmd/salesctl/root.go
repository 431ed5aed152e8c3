package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reference"
	"github.com/vfg2006/sales-performance-api/internal/usecases/hydrating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
)

type options struct {
	snapshotFile string
	year         int
	month        string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "salesctl",
		Short:         "Painel de desempenho comercial a partir de um snapshot em arquivo",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("nível de log inválido: %q", opts.logLevel)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "loglevel", "l", "warn", "Nível de log: debug, info, warn, error")

	rootCmd.AddCommand(
		newReportCmd(opts),
		newExportCmd(opts),
		newNormalizeCmd(),
	)

	return rootCmd
}

// addPeriodFlags registra as flags de snapshot e período usadas por report e export
func addPeriodFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.snapshotFile, "snapshot", "s", "", "Arquivo JSON do snapshot (vazio usa o snapshot zerado)")
	cmd.Flags().IntVarP(&opts.year, "year", "y", domain.FirstPlanningYear, "Ano de planejamento")
	cmd.Flags().StringVarP(&opts.month, "month", "m", "jan", "Mês (jan..dez ou 1..12)")
}

// dashboard hidrata o snapshot do arquivo e calcula o painel do período
func dashboard(opts *options) (*domain.Dashboard, error) {
	if !domain.IsPlanningYear(opts.year) {
		return nil, fmt.Errorf("%w: %d", insighting.ErrInvalidYear, opts.year)
	}

	month, ok := domain.ParseMonth(opts.month)
	if !ok {
		return nil, fmt.Errorf("%w: %q", insighting.ErrInvalidMonth, opts.month)
	}

	var payload []byte
	if opts.snapshotFile != "" {
		raw, err := os.ReadFile(opts.snapshotFile)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler snapshot: %w", err)
		}
		payload = raw
	}

	targets := reference.Targets()
	clients := reference.TopClients()

	snapshot, stats := hydrating.Hydrate(payload, clients)
	logrus.WithFields(logrus.Fields{
		"loaded":   stats.Loaded,
		"defaults": stats.Defaults,
	}).Info("salesctl: snapshot carregado")

	return insighting.BuildDashboard(opts.year, month, snapshot, targets, clients, thresholds(targets)), nil
}

// thresholds lê os limites da mesma configuração da API; sem configuração, usa os padrões
func thresholds(targets domain.TargetTable) domain.Thresholds {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Warn("salesctl: configuração inválida, usando limites padrão")
		return domain.DefaultThresholds(targets)
	}
	return cfg.Thresholds.Domain(targets)
}
