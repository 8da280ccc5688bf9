package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolath/percolation"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		T        float64
		showDist bool
	)

	cmd := &cobra.Command{
		Use:   "run <edgelist>",
		Short: "Percolate a graph once and print its component statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := percolation.Open(args[0], a.engineOptions()...)
			if err != nil {
				return err
			}

			retained := e.BondPercolate(T)
			v := e.RandomVertex()
			name, _ := e.Graph().Name(v)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices:               %d\n", e.NumVertices())
			fmt.Fprintf(out, "edges:                  %d\n", e.NumEdges())
			fmt.Fprintf(out, "retention probability:  %g\n", T)
			fmt.Fprintf(out, "retained edges:         %d\n", retained)
			fmt.Fprintf(out, "components:             %d\n", e.ComponentCount())
			fmt.Fprintf(out, "largest component:      %d\n", e.LargestComponentSize())
			fmt.Fprintf(out, "second largest:         %d\n", e.SecondLargestComponentSize())
			fmt.Fprintf(out, "random vertex:          %s (component size %d)\n", name, e.ComponentSize(v))
			fmt.Fprintf(out, "random component size:  %d\n", e.RandomComponentSize())

			if showDist {
				dist := e.Distribution()
				sizes := make([]int, 0, len(dist))
				for s := range dist {
					sizes = append(sizes, s)
				}
				sort.Ints(sizes)
				fmt.Fprintln(out, "# size count")
				for _, s := range sizes {
					fmt.Fprintf(out, "%d %d\n", s, dist[s])
				}
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&T, "t", 0.6, "Edge retention probability")
	cmd.Flags().BoolVar(&showDist, "dist", false, "Also print the component size distribution")

	return cmd
}
