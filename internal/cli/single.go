package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/davidvella/kmerge/list"
)

func newReverseCommand(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "Reverse each sequence of a fixture in place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.load(path)
			if err != nil {
				return err
			}
			for _, h := range f.Heads() {
				if err := printLine(cmd.OutOrStdout(), formatValues(list.Values(list.Reverse(h)))); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addFileFlag(cmd, &path)
	return cmd
}

func newMiddleCommand(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "middle",
		Short: "Print the middle value of each sequence of a fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.load(path)
			if err != nil {
				return err
			}
			for _, h := range f.Heads() {
				line := "none"
				if mid := list.Middle(h); mid != nil {
					line = strconv.Itoa(mid.Value)
				}
				if err := printLine(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addFileFlag(cmd, &path)
	return cmd
}
