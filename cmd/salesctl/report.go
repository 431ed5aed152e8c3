package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

func newReportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Imprime o painel do período em JSON",
		Example: "salesctl report --snapshot snapshot.json --year 2026 --month jan",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dashboard(opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(d))
			return err
		},
	}

	addPeriodFlags(cmd, opts)

	return cmd
}
