package bench

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the records of one algorithm.
type Summary struct {
	Algorithm  string
	Runs       int
	Successes  int
	Timeouts   int
	Failures   int // StatusError + StatusNoSolution
	MeanTime   float64
	StdTime    float64
	MeanCost   float64 // over records with a cost; NaN if none
	StdCost    float64
	MeanGapPct float64 // mean % above the best cost seen for the same instance; NaN if none
	Wins       int     // instances where this algorithm matched the best cost
}

// BestCosts returns the lowest cost per instance over records with a cost.
func BestCosts(recs []Record) map[string]float64 {
	best := make(map[string]float64)
	for _, r := range recs {
		if !r.HasCost() {
			continue
		}
		if b, ok := best[r.Instance]; !ok || r.Cost < b {
			best[r.Instance] = r.Cost
		}
	}

	return best
}

// Summarize groups recs by algorithm, in order of first appearance.
// Times are in seconds.
func Summarize(recs []Record) []Summary {
	var (
		order  []string
		groups = make(map[string][]Record)
		best   = BestCosts(recs)
	)
	for _, r := range recs {
		if _, ok := groups[r.Algorithm]; !ok {
			order = append(order, r.Algorithm)
		}
		groups[r.Algorithm] = append(groups[r.Algorithm], r)
	}

	out := make([]Summary, 0, len(order))
	for _, algo := range order {
		out = append(out, summarize(algo, groups[algo], best))
	}

	return out
}

func summarize(algo string, recs []Record, best map[string]float64) Summary {
	s := Summary{Algorithm: algo, Runs: len(recs)}
	var times, costs, gaps []float64
	for _, r := range recs {
		switch r.Status {
		case StatusSuccess:
			s.Successes++
		case StatusTimeout:
			s.Timeouts++
		default:
			s.Failures++
		}
		times = append(times, r.Time.Seconds())
		if !r.HasCost() {
			continue
		}
		costs = append(costs, r.Cost)
		b := best[r.Instance]
		if r.Cost <= b {
			s.Wins++
		}
		if b > 0 {
			gaps = append(gaps, 100*(r.Cost-b)/b)
		}
	}
	s.MeanTime, s.StdTime = meanStd(times)
	s.MeanCost, s.StdCost = meanStd(costs)
	s.MeanGapPct, _ = meanStd(gaps)

	return s
}

// meanStd returns the mean and sample standard deviation; NaN, NaN for no
// data and std 0 for a single value.
func meanStd(x []float64) (float64, float64) {
	switch len(x) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return x[0], 0
	}

	return stat.MeanStdDev(x, nil)
}
