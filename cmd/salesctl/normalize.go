package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-performance-api/internal/usecases/normalizing"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <valor>",
		Short:   "Mostra o número interpretado a partir de um valor digitado",
		Example: `salesctl normalize "R$ 1.234,56"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := normalizing.Normalize(args[0])
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'f', -1, 64))
			return err
		},
	}
}
