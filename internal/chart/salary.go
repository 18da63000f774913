// Package chart renders salary visualizations with gonum/plot.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	defaultWidth  = 6.4 * vg.Inch
	defaultHeight = 4.8 * vg.Inch
)

var barWidth = vg.Points(20)

// Bar is one labelled value of a bar chart
type Bar struct {
	Label string
	Value float64
}

// SalaryBarChart renders one bar per employee salary as a PNG image.
// An empty input still produces a chart with titled, empty axes.
func SalaryBarChart(bars []Bar) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Employee Salaries"
	p.X.Label.Text = "Employee"
	p.Y.Label.Text = "Salary"

	if len(bars) > 0 {
		values := make(plotter.Values, len(bars))
		labels := make([]string, len(bars))
		for i, b := range bars {
			values[i] = b.Value
			labels[i] = b.Label
		}

		chart, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to build bar chart: %w", err)
		}
		chart.LineStyle.Width = vg.Length(0)
		chart.Color = plotutil.Color(0)

		p.Add(chart)
		p.NominalX(labels...)
	}

	w, err := p.WriterTo(defaultWidth, defaultHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create chart canvas: %w", err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64 returns the image as standard base64 for an inline data URI
func EncodeBase64(png []byte) string {
	return base64.StdEncoding.EncodeToString(png)
}
