package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/memlock/mapfile"
	"github.com/spf13/cobra"
)

func newMapCmd(a *app) *cobra.Command {
	var (
		size         byteSize
		readonly     bool
		allowShrink  bool
		mustExist    bool
		mustNotExist bool
	)

	cmd := &cobra.Command{
		Use:   "map PATH",
		Short: "Open or create PATH, resize it, map it, and report the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mustExist && mustNotExist {
				return fmt.Errorf("--must-exist and --must-not-exist are mutually exclusive")
			}

			var flags mapfile.Flag
			if readonly {
				flags |= mapfile.ReadOnly
			}
			if allowShrink {
				flags |= mapfile.AllowShrink
			}
			if mustExist {
				flags |= mapfile.ForceExist | mapfile.ForceExistYes
			}
			if mustNotExist {
				flags |= mapfile.ForceExist
			}

			f, err := mapfile.Open(args[0], int64(size), flags, mapfile.WithLogger(a.logger.Logger))
			if err != nil {
				return err
			}

			mode := "read-write"
			if f.ReadOnly() {
				mode = "read-only"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s mapped %s\n", f.Name(), humanize.IBytes(uint64(f.Size())), mode)

			return f.Close()
		},
	}

	cmd.Flags().Var(&size, "size", "file size; 0 keeps the size of an existing file")
	cmd.Flags().BoolVar(&readonly, "readonly", false, "map without write access; the file must exist")
	cmd.Flags().BoolVar(&allowShrink, "allow-shrink", false, "allow truncating a longer existing file")
	cmd.Flags().BoolVar(&mustExist, "must-exist", false, "fail unless the file exists")
	cmd.Flags().BoolVar(&mustNotExist, "must-not-exist", false, "fail if the file exists")
	return cmd
}
