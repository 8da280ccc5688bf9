package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolath/percolation"
	"github.com/katalvlaran/percolath/store"
	"github.com/katalvlaran/percolath/sweep"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		tMin, tMax, step float64
		simulations      int
		outPath          string
		sqlitePath       string
		summary          bool
	)

	cmd := &cobra.Command{
		Use:   "sweep <edgelist>",
		Short: "Percolate a graph over a grid of retention probabilities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags override the config file only when given explicitly.
			for _, o := range []struct {
				flag, key string
				val       interface{}
			}{
				{"t-min", "sweep.t_min", tMin},
				{"t-max", "sweep.t_max", tMax},
				{"step", "sweep.step", step},
				{"simulations", "sweep.simulations", simulations},
				{"out", "output.path", outPath},
				{"sqlite", "output.sqlite", sqlitePath},
			} {
				if cmd.Flags().Changed(o.flag) {
					a.cfg.Set(o.key, o.val)
				}
			}
			cfg := a.cfg.Sweep()
			if err := cfg.Validate(); err != nil {
				return err
			}

			e, err := percolation.Open(args[0], a.engineOptions()...)
			if err != nil {
				return err
			}

			out, err := openOutput(a.cfg.OutputPath(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer out.Close()

			var sinks []sweep.Sink
			mem := &sweep.MemorySink{}
			if summary {
				sinks = append(sinks, mem)
			} else {
				sinks = append(sinks, sweep.NewTableSink(out))
			}
			if p := a.cfg.SQLitePath(); p != "" {
				db, err := store.OpenDB(p)
				if err != nil {
					return err
				}
				defer db.Close()
				sinks = append(sinks, store.NewSQLiteSink(db, a.cfg.BatchSize()))
			}

			res, err := sweep.Run(cmd.Context(), e, cfg, sinks, sweep.WithLogger(a.log))
			if err != nil {
				return err
			}
			if summary {
				if err := writeSummary(out, sweep.Summarize(mem.Rows)); err != nil {
					return err
				}
			}
			if err := out.Close(); err != nil {
				return err
			}
			a.log.Info().Str("run_id", res.RunID.String()).Int("rows", res.Rows).Msg("sweep finished")

			return nil
		},
	}
	def := sweep.DefaultConfig()
	cmd.Flags().Float64Var(&tMin, "t-min", def.TMin, "Lowest retention probability")
	cmd.Flags().Float64Var(&tMax, "t-max", def.TMax, "Highest retention probability (inclusive)")
	cmd.Flags().Float64Var(&step, "step", def.Step, "Grid step")
	cmd.Flags().IntVar(&simulations, "simulations", def.Simulations, "Passes over the grid")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the table to this file instead of stdout")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "Also store rows in this SQLite database")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print mean and std per T instead of raw rows")

	return cmd
}

// writeSummary prints one line per T with the mean and std of the statistics.
func writeSummary(w io.Writer, sums []sweep.Summary) error {
	if _, err := fmt.Fprintf(w, "#%14s %15s %15s %15s %15s %15s %15s \n",
		"edge_prob", "samples", "mean_1st", "std_1st", "mean_2nd", "std_2nd", "mean_comp"); err != nil {
		return err
	}
	for _, s := range sums {
		if _, err := fmt.Fprintf(w, "%15g %15d %15.6g %15.6g %15.6g %15.6g %15.6g \n",
			s.T, s.Samples, s.Largest.Mean, s.Largest.Std,
			s.SecondLargest.Mean, s.SecondLargest.Std, s.Components.Mean); err != nil {
			return err
		}
	}

	return nil
}
