package chart

import (
	"fmt"

	"github.com/madhih2000/OEE-Dashboard/internal/metrics"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

const (
	IDMaterialDonut = "material-pie-chart"
	IDRuntimeDonut  = "runtime-pie-chart"
)

const (
	donutHole   = 0.4
	donutWidth  = 400
	donutHeight = 300
)

// MaterialDonut splits material into used and waste. It reports false when
// either amount is missing or exactly zero; the caller shows a placeholder.
func MaterialDonut(r model.ProcessRecord) (model.ChartSpec, bool) {
	m := r.Material()
	if m.State != model.MaterialPresent {
		return model.ChartSpec{}, false
	}

	usedPct, wastePct := metrics.MaterialSplit(m.Used, m.Waste)
	return model.ChartSpec{
		ID:     IDMaterialDonut,
		Kind:   model.ChartPie,
		Title:  "Material Usage Breakdown",
		Width:  donutWidth,
		Height: donutHeight,
		Pie: &model.Pie{
			Hole:      donutHole,
			Direction: model.CounterClockwise,
			Sorted:    true,
			TextInfo:  "value",
			HoverText: true,
			Slices: []model.Slice{
				{
					Label: "Material Used",
					Value: usedPct,
					Color: "#2ca02c",
					Text:  fmt.Sprintf("Material Used: %s KG (%s%%)", metrics.FormatNumber(m.Used), metrics.FormatPercent(usedPct)),
				},
				{
					Label: "Waste Material",
					Value: wastePct,
					Color: "#d62728",
					Text:  fmt.Sprintf("Waste Material: %s KG (%s%%)", metrics.FormatNumber(m.Waste), metrics.FormatPercent(wastePct)),
				},
			},
		},
	}, true
}

// RuntimeDonut shows run time against the remaining expected time. It
// reports false when the record has no complete runtime pair.
func RuntimeDonut(r model.ProcessRecord) (model.ChartSpec, bool) {
	split, ok := metrics.RuntimeSplit(r.RunTime, r.ExpectedTime)
	if !ok {
		return model.ChartSpec{}, false
	}
	run, expected := *r.RunTime, *r.ExpectedTime

	return model.ChartSpec{
		ID:     IDRuntimeDonut,
		Kind:   model.ChartPie,
		Title:  "Progress of Process",
		Width:  donutWidth,
		Height: donutHeight,
		Pie: &model.Pie{
			Hole:      donutHole,
			Direction: model.CounterClockwise,
			Sorted:    true,
			TextInfo:  "none",
			HoverText: true,
			Slices: []model.Slice{
				{
					Label: "Run Time",
					Value: split.Progress,
					Color: "#1f77b4",
					Text:  fmt.Sprintf("Run Time: %s hours (%s%%)", metrics.FormatNumber(run), metrics.FormatPercent(split.Progress)),
				},
				{
					Label: "Remaining Time",
					Value: split.Remaining,
					Color: "#e5e5e5",
					Text: fmt.Sprintf("Remaining Time: %s hours (%s%%)",
						metrics.FormatNumber(metrics.RemainingHours(run, expected)), metrics.FormatPercent(split.Remaining)),
				},
			},
		},
	}, true
}
