// Command percolath loads edge lists, runs bond percolation on them and
// tabulates component statistics.
//
//	percolath run graph.edge --t 0.6
//	percolath sweep graph.edge --simulations 100 --out results.dat
//	percolath inspect graph.edge
//	percolath generate poisson --n 2500 --mean 5 > graph.edge
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
