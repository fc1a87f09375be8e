// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ljbind/config"
	"github.com/katalvlaran/ljbind/pipeline"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd wires flags, logger and the pipeline. Each call returns an
// independent command tree.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		format     string
		verbose    bool
		logger     *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "ljbind [distances-file]",
		Short: "Total Lennard-Jones binding energy from a list of pair distances",
		Long: `ljbind reads pairwise separation distances (metres, one per line),
checks that their number corresponds to a whole number of objects
(N·(N−1)/2 pairings), sums the Lennard-Jones pair energies and verifies
the potential against a known reference point.

Without an argument the input file from the configuration is used
(distances.txt by default).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l.With(zap.String("run_id", uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			logger.Debug("starting run",
				zap.String("config", configPath),
				zap.Float64("sigma_m", cfg.Potential.Sigma),
				zap.Float64("epsilon_j", cfg.Potential.Epsilon))

			_, err = pipeline.Run(cfg, path, pipeline.Format(format), cmd.OutOrStdout(), logger)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding sigma, epsilon, self-check reference and input path")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr, including per-pair energies")
	cmd.Flags().StringVar(&format, "format", string(pipeline.FormatText), "output format: text or yaml")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newVersionCmd prints the build version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ljbind version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ljbind %s\n", version)
		},
	}
}
