package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolath/bfs"
	"github.com/katalvlaran/percolath/converters"
	"github.com/katalvlaran/percolath/core"
	"github.com/katalvlaran/percolath/matrix"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <edgelist>",
		Short: "Describe the unthinned graph: size, degrees, components and threshold estimates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := core.LoadFile(args[0])
			if err != nil {
				return err
			}

			sizes, err := bfs.ComponentSizes(g, bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			ug, err := converters.ToGonum(g)
			if err != nil {
				return err
			}
			gonumCount := len(topo.ConnectedComponents(ug))
			if gonumCount != len(sizes) {
				a.log.Warn().Int("bfs", len(sizes)).Int("gonum", gonumCount).Msg("component counts disagree")
			}

			deg := make([]float64, g.NumVertices())
			for i, nbrs := range g.AdjacencyList() {
				deg[i] = float64(len(nbrs))
			}
			var meanDeg, stdDeg float64
			if len(deg) > 1 {
				meanDeg, stdDeg = stat.MeanStdDev(deg, nil)
			} else if len(deg) == 1 {
				meanDeg = deg[0]
			}

			est, err := matrix.Estimate(g)
			if err != nil {
				return err
			}

			largest := 0
			if len(sizes) > 0 {
				largest = sizes[0]
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices:           %d\n", g.NumVertices())
			fmt.Fprintf(out, "edges:              %d\n", g.NumEdges())
			fmt.Fprintf(out, "mean degree:        %.4f\n", meanDeg)
			fmt.Fprintf(out, "degree std:         %.4f\n", stdDeg)
			fmt.Fprintf(out, "components:         %d\n", len(sizes))
			fmt.Fprintf(out, "largest component:  %d\n", largest)
			fmt.Fprintf(out, "tc molloy-reed:     %.4f\n", est.MolloyReed)
			if est.SpectralDone {
				fmt.Fprintf(out, "tc spectral:        %.4f\n", est.Spectral)
			}

			return nil
		},
	}
}
