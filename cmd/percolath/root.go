package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolath/config"
	"github.com/katalvlaran/percolath/percolation"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	seed     int64
	logLevel string

	cfg *config.Config
	log zerolog.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree so tests can execute commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "percolath",
		Short:         "Bond percolation on simple undirected graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Path to a config file (yaml, toml or json)")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newRunCmd(a),
		newSweepCmd(a),
		newInspectCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup resolves configuration: defaults, then file, then environment, then flags.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.NewConfig()
	if a.cfgFile != "" {
		if err := a.cfg.LoadFromFile(a.cfgFile); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("seed") {
		a.cfg.Set("engine.seed", a.seed)
	}
	if cmd.Flags().Changed("log-level") {
		a.cfg.Set("logging.level", a.logLevel)
	}
	a.log = a.cfg.CreateLogger(cmd.ErrOrStderr())

	return nil
}

// engineOptions translates the configuration into engine options.
func (a *app) engineOptions() []percolation.Option {
	opts := []percolation.Option{percolation.WithLogger(a.log)}
	if seed := a.cfg.Seed(); seed != 0 {
		opts = append(opts, percolation.WithSeed(seed))
	}

	return opts
}
