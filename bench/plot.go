package bench

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNothingToPlot is returned when no record carries a cost.
var ErrNothingToPlot = errors.New("bench: no records with a cost to plot")

var (
	costColor = color.RGBA{R: 135, G: 206, B: 235, A: 255} // sky blue
	timeColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// SavePlots renders every chart into dir and returns the written paths:
// performance_{algo}.png per algorithm, instance_{name}.png per instance,
// and cost_comparison.png / time_comparison.png across both.
func SavePlots(dir string, recs []Record) ([]string, error) {
	plotted := withCost(recs)
	if len(plotted) == 0 {
		return nil, ErrNothingToPlot
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var (
		paths     []string
		algos     = uniq(plotted, func(r Record) string { return r.Algorithm })
		instances = uniq(plotted, func(r Record) string { return r.Instance })
	)
	save := func(name string, render func(io.Writer) error) error {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err = render(f); err != nil {
			_ = f.Close()
			return err
		}
		paths = append(paths, path)
		return f.Close()
	}

	for _, algo := range algos {
		if err := save("performance_"+fileSafe(algo)+".png", func(w io.Writer) error {
			return PlotAlgorithm(w, algo, plotted)
		}); err != nil {
			return paths, err
		}
	}
	for _, inst := range instances {
		base := strings.TrimSuffix(inst, filepath.Ext(inst))
		if err := save("instance_"+fileSafe(base)+".png", func(w io.Writer) error {
			return PlotInstance(w, inst, plotted)
		}); err != nil {
			return paths, err
		}
	}
	if err := save("cost_comparison.png", func(w io.Writer) error {
		return PlotComparison(w, "Cost Comparison", "Cost", plotted, func(r Record) float64 { return r.Cost })
	}); err != nil {
		return paths, err
	}
	if err := save("time_comparison.png", func(w io.Writer) error {
		return PlotComparison(w, "Time Comparison", "Time (s)", recs, func(r Record) float64 { return r.Time.Seconds() })
	}); err != nil {
		return paths, err
	}

	return paths, nil
}

// PlotAlgorithm charts cost and time per instance for one algorithm.
func PlotAlgorithm(w io.Writer, algo string, recs []Record) error {
	var labels []string
	var costs, times plotter.Values
	for _, r := range sorted(recs, func(r Record) string { return r.Instance }) {
		if r.Algorithm != algo || !r.HasCost() {
			continue
		}
		labels = append(labels, r.Instance)
		costs = append(costs, r.Cost)
		times = append(times, r.Time.Seconds())
	}

	return renderCostTime(w, "Performance Analysis: "+algo, "Instance", labels, costs, times)
}

// PlotInstance charts cost and time per algorithm for one instance.
func PlotInstance(w io.Writer, inst string, recs []Record) error {
	var labels []string
	var costs, times plotter.Values
	for _, r := range sorted(recs, func(r Record) string { return r.Algorithm }) {
		if r.Instance != inst || !r.HasCost() {
			continue
		}
		labels = append(labels, r.Algorithm)
		costs = append(costs, r.Cost)
		times = append(times, r.Time.Seconds())
	}

	return renderCostTime(w, "Performance Analysis: "+inst, "Algorithm", labels, costs, times)
}

// PlotComparison draws grouped bars: one group per instance, one bar per
// algorithm. Missing pairs are drawn as zero.
func PlotComparison(w io.Writer, title, ylabel string, recs []Record, value func(Record) float64) error {
	var (
		algos     = uniq(recs, func(r Record) string { return r.Algorithm })
		instances = uniq(recs, func(r Record) string { return r.Instance })
		index     = make(map[string]int, len(instances))
	)
	if len(algos) == 0 {
		return ErrNothingToPlot
	}
	sort.Strings(instances)
	for i, inst := range instances {
		index[inst] = i
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Instance"
	p.Y.Label.Text = ylabel
	p.Legend.Top = true

	barWidth := vg.Points(math.Max(4, 60/float64(len(algos))))
	for k, algo := range algos {
		vals := make(plotter.Values, len(instances))
		for _, r := range recs {
			if r.Algorithm == algo {
				if v := value(r); !math.IsNaN(v) {
					vals[index[r.Instance]] = v
				}
			}
		}
		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return fmt.Errorf("creating bar chart: %w", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(k)
		bars.Offset = barWidth * vg.Length(float64(k)-float64(len(algos)-1)/2)
		p.Add(bars)
		p.Legend.Add(algo, bars)
	}
	p.NominalX(instances...)
	rotateTicks(p, len(instances))

	return writePNG(p, w, 10*vg.Inch, 5*vg.Inch)
}

// renderCostTime draws cost bars and a time line over the same categories.
// Time is scaled onto the cost axis and labelled with its maximum, since
// gonum/plot has a single Y axis.
func renderCostTime(w io.Writer, title, xlabel string, labels []string, costs, times plotter.Values) error {
	if len(labels) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Cost"
	p.Legend.Top = true

	bars, err := plotter.NewBarChart(costs, vg.Points(20))
	if err != nil {
		return fmt.Errorf("creating bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = costColor
	p.Add(bars)
	p.Legend.Add("Cost", bars)

	maxCost, maxTime := maxOf(costs), maxOf(times)
	if maxTime > 0 && maxCost > 0 {
		pts := make(plotter.XYs, len(times))
		for i, t := range times {
			pts[i].X = float64(i)
			pts[i].Y = t / maxTime * maxCost
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("creating time line: %w", err)
		}
		line.Color = timeColor
		line.Width = vg.Points(2)
		points.Color = timeColor
		p.Add(line, points)
		p.Legend.Add(fmt.Sprintf("Time (max %.3fs)", maxTime), line, points)
	}

	p.NominalX(labels...)
	rotateTicks(p, len(labels))

	return writePNG(p, w, 10*vg.Inch, 5*vg.Inch)
}

func writePNG(p *plot.Plot, w io.Writer, width, height vg.Length) error {
	canvas := vgimg.New(width, height)
	dc := draw.New(canvas)
	p.Draw(dc)
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("writing PNG: %w", err)
	}

	return nil
}

// rotateTicks tilts crowded category labels.
func rotateTicks(p *plot.Plot, n int) {
	if n > 6 {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}
}

func withCost(recs []Record) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if r.HasCost() {
			out = append(out, r)
		}
	}

	return out
}

// uniq returns the distinct keys in order of first appearance.
func uniq(recs []Record, key func(Record) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range recs {
		if k := key(r); !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	return out
}

func sorted(recs []Record, key func(Record) string) []Record {
	out := append([]Record(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })

	return out
}

func maxOf(v plotter.Values) float64 {
	m := 0.0
	for _, x := range v {
		m = math.Max(m, x)
	}

	return m
}

// fileSafe replaces path separators and spaces in a file name component.
func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '_'
		}
		return r
	}, s)
}
