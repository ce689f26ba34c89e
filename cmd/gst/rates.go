package main

import (
	"fmt"

	"github.com/Veraticus/gstcalc/internal/cli"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/spf13/cobra"
)

func ratesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "List the supported GST rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				rates := make([]int, len(model.Rates))
				for i, r := range model.Rates {
					rates[i] = int(r)
				}
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"rates":   rates,
					"default": int(a.cfg.DefaultRate),
				})
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), cli.RenderRates(a.cfg.DefaultRate))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rates as JSON")
	return cmd
}
