// Package chart renders the dual-axis performance chart as embeddable SVG.
package chart

import (
	"bytes"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/dataset"
)

// NoDataNotice is returned instead of a chart when a view matched no rows.
// This is an expected outcome for out-of-range filters, not an error.
const NoDataNotice = "<h3>No data available for the selected athlete and date range.</h3>"

const (
	chartWidth  = 1024
	chartHeight = 560
	strokeWidth = 3.0
	dotWidth    = 4.0
	fillAlpha   = 76 // ~30% shading under each line
)

var (
	colorPrimary   = drawing.Color{R: 255, A: 255}
	colorSecondary = drawing.Color{R: 255, G: 255, A: 255}
	colorGrid      = drawing.Color{R: 128, G: 128, B: 128, A: 255}
	colorText      = drawing.ColorWhite
	colorCanvas    = drawing.ColorBlack
)

// Render builds a two-series time chart from the view: metric1 on the
// primary Y axis, metric2 on a secondary Y axis, sharing the date axis.
// An empty view yields NoDataNotice. An unknown metric name fails with a
// dataset.ErrColumnNotFound error for the caller to surface.
func Render(view *dataset.View, metric1, metric2 string) (string, error) {
	if view.Empty() {
		return NoDataNotice, nil
	}

	x1, y1, err := view.Series(metric1)
	if err != nil {
		return "", err
	}
	x2, y2, err := view.Series(metric2)
	if err != nil {
		return "", err
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("Performance Over Time - %s", view.Subject),
		TitleStyle: chart.Style{FontColor: colorText},
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{FillColor: colorCanvas, FontColor: colorText},
		Canvas:     chart.Style{FillColor: colorCanvas},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02"),
			Style:          chart.Style{FontColor: colorText, StrokeColor: colorGrid},
		},
		YAxis: chart.YAxis{
			Name:  metric1,
			Style: chart.Style{FontColor: colorText, StrokeColor: colorGrid},
		},
		YAxisSecondary: chart.YAxis{
			Name:  metric2,
			Style: chart.Style{FontColor: colorText, StrokeColor: colorGrid},
		},
		Series: []chart.Series{
			series(metric1, x1, y1, colorPrimary, chart.YAxisPrimary),
			series(metric2, x2, y2, colorSecondary, chart.YAxisSecondary),
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return buf.String(), nil
}

// series builds one line+markers+area series. go-chart cannot derive an axis
// range from a single point, so one-point series are padded to two X values.
func series(name string, xs []time.Time, ys []float64, color drawing.Color, axis chart.YAxisType) chart.Series {
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}
	return chart.TimeSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		YAxis:   axis,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: strokeWidth,
			DotColor:    color,
			DotWidth:    dotWidth,
			FillColor:   color.WithAlpha(fillAlpha),
		},
	}
}
