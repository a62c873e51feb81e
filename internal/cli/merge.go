package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidvella/kmerge"
	"github.com/davidvella/kmerge/compactor"
	"github.com/davidvella/kmerge/internal/config"
	"github.com/davidvella/kmerge/list"
	"github.com/davidvella/kmerge/merge"
)

func newMergeCommand(a *app) *cobra.Command {
	var (
		path   string
		unique bool
	)
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge every sequence of a fixture into one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategy, err := merge.Lookup(a.cfg.Strategy)
			if err != nil {
				return err
			}
			f, err := a.load(path)
			if err != nil {
				return err
			}
			heads := f.Heads()

			var merged *list.Node[int]
			if unique {
				if a.cfg.Check {
					if err := validate(heads); err != nil {
						return err
					}
				}
				merged = compactor.Compact(heads...)
			} else {
				merged, err = kmerge.Merge(heads,
					kmerge.WithStrategy(strategy),
					kmerge.WithValidation(a.cfg.Check),
					kmerge.WithLogger(a.logger),
				)
				if err != nil {
					return err
				}
			}
			return printLine(cmd.OutOrStdout(), formatValues(list.Values(merged)))
		},
	}
	addFileFlag(cmd, &path)
	cmd.Flags().String(config.KeyStrategy, "heap", "merge strategy: heap, divide, or tournament")
	cmd.Flags().Bool(config.KeyCheck, true, "reject unsorted or cyclic input before merging")
	cmd.Flags().BoolVar(&unique, "unique", false, "collapse equal values, keeping the first")
	return cmd
}

func validate(heads []*list.Node[int]) error {
	for i, h := range heads {
		if err := list.Validate(h); err != nil {
			return fmt.Errorf("sequence %d: %w", i, err)
		}
	}
	return nil
}

func newStrategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available merge strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range merge.Strategies() {
				if err := printLine(cmd.OutOrStdout(), s.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
