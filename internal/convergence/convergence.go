// Package convergence renders a run's global-best-fitness history as a
// chart, for eyeballing whether a run actually converged.
package convergence

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Point is one (iteration, global-best-fitness) sample collected over a
// run, independent of the progress package so this chart can be built from
// a saved snapshot log as well as a live subscription.
type Point struct {
	Iteration int
	Best      float64
}

// Save renders points as a single line-and-points chart and writes it to
// path. runIndex only affects the chart title.
func Save(points []Point, runIndex int, path string) error {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.Iteration)
		xys[i].Y = p.Best
	}

	pl, err := plot.New()
	if err != nil {
		return fmt.Errorf("convergence: new plot: %w", err)
	}
	pl.Add(plotter.NewGrid())

	line, _, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("convergence: new line: %w", err)
	}
	pl.Add(line)

	pl.Title.Text = fmt.Sprintf("global-best fitness: run %d", runIndex)
	pl.X.Label.Text = "iteration"
	pl.Y.Label.Text = "fitness"
	fixLinAxis(&pl.Y)

	if err := pl.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("convergence: save %s: %w", path, err)
	}
	return nil
}

// fixLinAxis widens the Y axis bounds by 5% of the data range on each side
// so values at the extremes aren't drawn on the chart's edge. An axis with
// an empty range is left as it is.
func fixLinAxis(a *plot.Axis) {
	d := a.Max - a.Min
	if d <= 0 {
		return
	}
	pad := d * 0.05
	a.Min -= pad
	a.Max += pad
}
