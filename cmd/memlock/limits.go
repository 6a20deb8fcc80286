package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/memlock/budget"
	"github.com/hupe1980/memlock/internal/mlock"
	"github.com/spf13/cobra"
)

func newLimitsCmd(a *app) *cobra.Command {
	var noRaise bool

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Show the page size and the locked-memory ceiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			soft, hard, err := mlock.Default.Limits()
			if err != nil {
				return err
			}

			opts := []budget.Option{budget.WithLogger(a.logger.Logger)}
			if noRaise {
				opts = append(opts, budget.WithoutRaise())
			}
			b, err := budget.New(opts...)
			if err != nil && !errors.Is(err, budget.SetLimitError) {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "page size:  %d\n", b.PageSize())
			fmt.Fprintf(out, "soft limit: %s\n", formatLimit(soft))
			fmt.Fprintf(out, "hard limit: %s\n", formatLimit(hard))
			fmt.Fprintf(out, "budget:     %s\n", formatLimit(b.Limit()))
			if err != nil {
				fmt.Fprintf(out, "warning:    %v\n", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noRaise, "no-raise", false, "keep the soft limit instead of raising it to the hard limit")
	return cmd
}

func formatLimit(n uint64) string {
	if n == mlock.Unlimited {
		return "unlimited"
	}
	return humanize.IBytes(n)
}
