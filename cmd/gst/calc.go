package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/gstcalc/internal/cli"
	"github.com/Veraticus/gstcalc/internal/common"
	"github.com/Veraticus/gstcalc/internal/engine"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/Veraticus/gstcalc/internal/session"
	"github.com/spf13/cobra"
)

func calcCmd(a *app) *cobra.Command {
	var (
		rateFlag  string
		inclusive bool
		note      string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "calc AMOUNT",
		Short: "Calculate GST for a single amount",
		Long: `Calculate the GST breakdown for one amount.

By default the amount is treated as exclusive of GST and the tax is added
on top. With --inclusive the amount already contains GST and is split
into its base and tax parts.`,
		Example: `  gst calc 1000
  gst calc 1180 --inclusive
  gst calc "1,18,000" --rate 28 --note "Office chairs" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := engine.ParseAmount(args[0]); err != nil {
				return common.NewUserError(fmt.Sprintf("invalid amount %q", args[0]), err)
			}

			opts := []session.Option{}
			if rateFlag != "" {
				rate, err := model.ParseRate(rateFlag)
				if err != nil {
					return common.NewUserError("invalid --rate", err)
				}
				opts = append(opts, session.WithRate(rate))
			}
			if cmd.Flags().Changed("inclusive") {
				opts = append(opts, session.WithInclusive(inclusive))
			}

			sess, err := a.newSession(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			defer closeSession(sess)

			sess.SetAmount(args[0])
			sess.SetNote(note)
			record, ok, err := sess.Calculate(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("calculation was not recorded")
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toRecordJSON(record))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBreakdown(record))
			return err
		},
	}

	cmd.Flags().StringVarP(&rateFlag, "rate", "r", "", "GST rate: 5, 12, 18 or 28 (default from config, 18)")
	cmd.Flags().BoolVarP(&inclusive, "inclusive", "i", false, "amount already includes GST")
	cmd.Flags().StringVarP(&note, "note", "n", "", "note to attach to the calculation")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}
