package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-performance-api/infrastructure/exporter"
)

func newExportCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Gera a planilha XLSX do painel do período",
		Example: "salesctl export --snapshot snapshot.json --year 2026 --month jan --out painel.xlsx",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dashboard(opts)
			if err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("painel-%d-%s.xlsx", d.Year, d.Month.Key())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("erro ao criar arquivo: %w", err)
			}
			defer f.Close()

			if err := exporter.NewXLSXExporter().ExportDashboard(f, d); err != nil {
				return err
			}

			logrus.WithField("file", out).Info("salesctl: planilha gerada")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	addPeriodFlags(cmd, opts)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Arquivo de saída (padrão: painel-<ano>-<mês>.xlsx)")

	return cmd
}
