// Package render draws chart specs as PNG images with go-chart. Only bar and
// pie specs have a raster form; gauges and the status clock are drawn by the
// browser.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

var (
	ErrUnsupported = errors.New("chart kind has no PNG form")
	ErrNoData      = errors.New("chart has nothing to draw")
)

const (
	defaultWidth  = 900
	defaultHeight = 500
	barSpacing    = 24
)

// PNG writes spec to w as a PNG image.
func PNG(w io.Writer, spec model.ChartSpec) error {
	switch spec.Kind {
	case model.ChartBar:
		if spec.BarMode == model.BarStack {
			return stacked(spec).Render(chart.PNG, w)
		}
		bc, err := bars(spec)
		if err != nil {
			return err
		}
		return bc.Render(chart.PNG, w)
	case model.ChartPie:
		// Shapes mark the status clock, whose needle go-chart cannot draw.
		if spec.Pie == nil || len(spec.Shapes) > 0 {
			return fmt.Errorf("%s: %w", spec.ID, ErrUnsupported)
		}
		return pie(w, spec)
	default:
		return fmt.Errorf("%s: %w", spec.ID, ErrUnsupported)
	}
}

func size(spec model.ChartSpec) (int, int) {
	w, h := spec.Width, spec.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// bars lays grouped series out side by side: one bar per category per
// series, in series order within each category.
func bars(spec model.ChartSpec) (chart.BarChart, error) {
	var values []chart.Value
	top := 0.0
	for i, category := range spec.Categories {
		for n, s := range spec.Series {
			if i >= len(s.Values) {
				continue
			}
			label := category
			if n > 0 {
				label = ""
			}
			v := s.Values[i]
			top = math.Max(top, v)
			values = append(values, chart.Value{
				Label: label,
				Value: v,
				Style: fill(s.Color),
			})
		}
	}
	if len(values) == 0 {
		return chart.BarChart{}, fmt.Errorf("%s: %w", spec.ID, ErrNoData)
	}
	if top <= 0 {
		top = 1
	}

	w, h := size(spec)
	return chart.BarChart{
		Title:      spec.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name:  spec.YTitle,
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		BarSpacing: barSpacing / max(1, len(spec.Series)),
		Bars:       values,
	}, nil
}

// stacked draws one column per category. go-chart scales every column to
// full height, so each column shows the shares of its series. Columns with
// nothing to stack get a single "no data" segment.
func stacked(spec model.ChartSpec) chart.StackedBarChart {
	columns := make([]chart.StackedBar, len(spec.Categories))
	for i, category := range spec.Categories {
		var parts []chart.Value
		total := 0.0
		for _, s := range spec.Series {
			if i >= len(s.Values) {
				continue
			}
			v := math.Max(0, s.Values[i])
			total += v
			parts = append(parts, chart.Value{Label: s.Name, Value: v, Style: fill(s.Color)})
		}
		if total <= 0 {
			parts = []chart.Value{{Label: "N/A", Value: 1, Style: fill(noDataColor)}}
		}
		columns[i] = chart.StackedBar{Name: category, Values: parts}
	}

	w, h := size(spec)
	return chart.StackedBarChart{
		Title:      spec.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		BarSpacing: barSpacing,
		Bars:       columns,
	}
}

// pie draws a pie or, when the chart has a hole, a donut. Negative slices
// from an overrun are drawn as empty.
func pie(w io.Writer, spec model.ChartSpec) error {
	var values []chart.Value
	for _, s := range orderedSlices(*spec.Pie) {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{Label: s.Label, Value: s.Value, Style: fill(s.Color)})
	}
	if len(values) == 0 {
		return fmt.Errorf("%s: %w", spec.ID, ErrNoData)
	}

	width, height := size(spec)
	if spec.Pie.Hole > 0 {
		return chart.DonutChart{
			Title:  spec.Title,
			Width:  width,
			Height: height,
			Values: values,
		}.Render(chart.PNG, w)
	}
	return chart.PieChart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Values: values,
	}.Render(chart.PNG, w)
}

// orderedSlices returns the slices in drawing order, largest first when the
// pie is sorted. Equal slices keep their input order.
func orderedSlices(p model.Pie) []model.Slice {
	out := append([]model.Slice(nil), p.Slices...)
	if p.Sorted {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	}
	return out
}
