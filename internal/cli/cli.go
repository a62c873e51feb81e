// Package cli wires the kmerge command tree.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidvella/kmerge/internal/config"
	"github.com/davidvella/kmerge/internal/fixture"
	"github.com/davidvella/kmerge/internal/logging"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	cfg        config.Config
	logger     *zap.Logger
}

// NewRootCommand returns the kmerge command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "kmerge",
		Short:         "Merge sorted integer sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $KMERGE_CONFIG or ./kmerge.yaml)")
	cmd.PersistentFlags().String(config.KeyLogLevel, "info", "log level: debug, info, warn, or error")

	cmd.AddCommand(
		newMergeCommand(a),
		newReverseCommand(a),
		newMiddleCommand(a),
		newStrategiesCommand(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.NewLoader(a.configPath).Load(cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) load(path string) (*fixture.Fixture, error) {
	f, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded fixture",
		zap.String("path", path),
		zap.Int("sequences", len(f.Sequences)),
	)
	return f, nil
}

func addFileFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "file", "f", "", `fixture file, or "-" for stdin`)
	_ = cmd.MarkFlagRequired("file")
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func printLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
