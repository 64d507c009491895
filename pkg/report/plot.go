// Package report renders training diagnostics.
package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PredictedVsActual saves a calibration scatter of predicted against
// actual calories with the y=x reference line.
func PredictedVsActual(yTrue, yPred []float64, filename string) error {
	if len(yTrue) == 0 {
		return fmt.Errorf("report: no points to plot")
	}
	if len(yTrue) != len(yPred) {
		return fmt.Errorf("report: length mismatch: %d actual vs %d predicted", len(yTrue), len(yPred))
	}

	p := plot.New()
	p.Title.Text = "Predicted vs Actual Calories"
	p.X.Label.Text = "Actual kcal"
	p.Y.Label.Text = "Predicted kcal"

	pts := make(plotter.XYs, len(yTrue))
	lo, hi := yTrue[0], yTrue[0]
	for i := range yTrue {
		pts[i].X = yTrue[i]
		pts[i].Y = yPred[i]
		for _, v := range []float64{yTrue[i], yPred[i]} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("report: scatter: %w", err)
	}
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	// y = x reference line.
	l, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return fmt.Errorf("report: line: %w", err)
	}
	l.Color = color.RGBA{R: 255, A: 255}
	l.LineStyle.Width = vg.Points(1)
	p.Add(l)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("report: save %s: %w", filename, err)
	}
	return nil
}
