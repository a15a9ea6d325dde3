// Runnable examples with deterministic output. The instance is the 4-vertex
// "trap" where greedy construction is forced onto the heavy 3-0 edge.
package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tspsolve/tsp"
)

func exampleDistances() *tsp.Distances {
	d, err := tsp.FromRows([][]float64{
		{0, 1, 1.5, 10},
		{1, 0, 1, 1.5},
		{1.5, 1, 0, 1},
		{10, 1.5, 1, 0},
	})
	if err != nil {
		panic(err)
	}

	return d
}

func ExampleBranchAndBound() {
	d := exampleDistances()

	opts := tsp.DefaultOptions()
	res, err := tsp.BranchAndBound(context.Background(), d, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tour:", res.Tour)
	fmt.Println("cost:", res.Cost)
	fmt.Println("status:", res.Status)
	// Output:
	// tour: [0 1 3 2]
	// cost: 5
	// status: optimal
}

func ExampleNearestNeighbor() {
	res, err := tsp.NearestNeighbor(exampleDistances())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Tour, res.Cost)
	// Output:
	// [0 1 2 3] 13
}

func ExampleTwoOpt() {
	d := exampleDistances()
	res, err := tsp.TwoOpt(context.Background(), d, []int{0, 1, 2, 3}, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Tour, res.Cost, res.Moves)
	// Output:
	// [0 1 3 2] 5 1
}

func ExampleSolve() {
	opts := tsp.DefaultGRASPOptions()
	opts.Seed = 7

	res, err := tsp.Solve(context.Background(), exampleDistances(), opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost, res.Status, res.Iterations)
	// Output:
	// 5 heuristic 20
}
