package tsp_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tspsolve/tsp"
)

func BenchmarkBranchAndBound_n11(b *testing.B) {
	d := mustDistances(b, euclidRows(11))
	opts := tsp.DefaultOptions()
	opts.TimeLimit = tsp.NoTimeLimit
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.BranchAndBound(context.Background(), d, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHeldKarp_n12(b *testing.B) {
	d := mustDistances(b, randomRows(12, seedDet))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.HeldKarp(d); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTwoOpt_n200(b *testing.B) {
	d := mustDistances(b, euclidRows(200))
	tour := tsp.RandomTour(d.N(), rand.New(rand.NewSource(seedDet)))
	opts := tsp.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TwoOpt(context.Background(), d, tour, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGRASP_n100(b *testing.B) {
	d := mustDistances(b, randomRows(100, seedDet))
	opts := tsp.DefaultGRASPOptions()
	opts.TimeLimit = tsp.NoTimeLimit
	opts.MaxIterations = 5
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.GRASP(context.Background(), d, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMSTCost_n300(b *testing.B) {
	d := mustDistances(b, randomRows(300, seedDet))
	subset := make([]int, d.N())
	for i := range subset {
		subset[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.MSTCost(d, subset); err != nil {
			b.Fatal(err)
		}
	}
}
