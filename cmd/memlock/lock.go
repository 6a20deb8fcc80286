package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/memlock/budget"
	"github.com/hupe1980/memlock/internal/mmap"
	"github.com/spf13/cobra"
)

func newLockCmd(a *app) *cobra.Command {
	var (
		limit   byteSize
		wait    time.Duration
		noRaise bool
	)

	cmd := &cobra.Command{
		Use:   "lock SIZE",
		Short: "Pin an anonymous region of SIZE bytes and report the budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var size byteSize
			if err := size.Set(args[0]); err != nil {
				return fmt.Errorf("invalid size %q: %w", args[0], err)
			}

			opts := []budget.Option{budget.WithLogger(a.logger.Logger)}
			if limit > 0 {
				opts = append(opts, budget.WithLimit(uint64(limit)))
			}
			if noRaise {
				opts = append(opts, budget.WithoutRaise())
			}
			b, err := budget.New(opts...)
			if err != nil && !errors.Is(err, budget.SetLimitError) {
				return err
			}

			region, release, err := mmap.MapAnon(int(size))
			if err != nil {
				return err
			}
			defer release()

			if wait > 0 {
				ctx, cancel := context.WithTimeout(cmd.Context(), wait)
				defer cancel()
				err = b.LockWait(ctx, region)
			} else {
				err = b.Lock(region)
			}
			if err != nil {
				return err
			}

			stats := b.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "locked: %s (%d pages)\n", humanize.IBytes(stats.Locked), stats.Locked/uint64(stats.PageSize))
			fmt.Fprintf(out, "limit:  %s\n", formatLimit(stats.Limit))

			return b.Unlock(region)
		},
	}

	cmd.Flags().Var(&limit, "limit", "cap the budget below the OS ceiling")
	cmd.Flags().DurationVar(&wait, "wait", 0, "wait up to this long for room instead of failing")
	cmd.Flags().BoolVar(&noRaise, "no-raise", false, "keep the soft limit instead of raising it to the hard limit")
	return cmd
}
