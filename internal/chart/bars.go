// Package chart maps process records to renderer-neutral chart specs.
package chart

import (
	"fmt"

	"github.com/madhih2000/OEE-Dashboard/internal/metrics"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

// Chart IDs, stable across renderers and used in URLs.
const (
	IDDowntimeUptime  = "downtime-uptime-chart"
	IDRuntimeProgress = "stacked-bar-chart"
	IDUnitsProduced   = "units-bar-chart"
	IDDowntimeFailure = "downtime-failure-chart"
)

const (
	overviewBarHeight = 500
	notAvailable      = "N/A"
)

func steps(records []model.ProcessRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Step
	}
	return out
}

// DowntimeUptime stacks uptime and downtime per step, in input order.
func DowntimeUptime(records []model.ProcessRecord) model.ChartSpec {
	uptimes := make([]float64, len(records))
	downtimes := make([]float64, len(records))
	hover := make([]string, len(records))
	for i, r := range records {
		downtimes[i] = r.Downtime
		uptimes[i] = metrics.UptimeFromDowntime(r.Downtime)
		hover[i] = fmt.Sprintf("<b>%s</b><br>Uptime: %s%%<br>Downtime: %s%%",
			r.Step, metrics.FormatNumber(uptimes[i]), metrics.FormatNumber(downtimes[i]))
	}

	return model.ChartSpec{
		ID:          IDDowntimeUptime,
		Kind:        model.ChartBar,
		Title:       "Process Uptime and Downtime",
		XTitle:      "Percentage (%)",
		YTitle:      "Process Steps",
		Height:      overviewBarHeight,
		BarMode:     model.BarStack,
		Orientation: model.Horizontal,
		Categories:  steps(records),
		Series: []model.Series{
			{Name: "Uptime", Values: uptimes, Color: "green", Hover: hover},
			{Name: "Downtime", Values: downtimes, Color: "red", Hover: hover},
		},
	}
}

// RuntimeProgress stacks runtime progress against the remaining share.
// Steps without runtime data keep their row with zero bars, "N/A" hover
// and a NoData mark.
func RuntimeProgress(records []model.ProcessRecord) model.ChartSpec {
	progress := make([]float64, len(records))
	remaining := make([]float64, len(records))
	hover := make([]string, len(records))
	noData := make([]bool, len(records))
	for i, r := range records {
		run, expected, ok := r.Runtime()
		if !ok {
			noData[i] = true
			hover[i] = notAvailable
			continue
		}
		s := metrics.ProgressOf(run, expected)
		progress[i], remaining[i] = s.Progress, s.Remaining
		hover[i] = fmt.Sprintf("<b>%s</b><br>Current Run Time: %sh<br>Expected Run Time: %sh<br>Remaining Time: %sh<br>Progress: %s%%",
			r.Step,
			metrics.FormatNumber(run),
			metrics.FormatNumber(expected),
			metrics.FormatNumber(metrics.RemainingHours(run, expected)),
			metrics.FormatPercent(s.Progress),
		)
	}

	return model.ChartSpec{
		ID:          IDRuntimeProgress,
		Kind:        model.ChartBar,
		Title:       "Progress of Operations",
		XTitle:      "Percentage (%)",
		YTitle:      "Process Steps",
		Height:      overviewBarHeight,
		BarMode:     model.BarStack,
		Orientation: model.Horizontal,
		Categories:  steps(records),
		Series: []model.Series{
			{Name: "Current Run Time (%)", Values: progress, Color: "green", Hover: hover},
			{Name: "Remaining Time to Expected (%)", Values: remaining, Color: "lightgrey", Hover: hover},
		},
		NoData: noData,
	}
}

// UnitsProduced plots raw unit counts; a missing count plots as 0.
func UnitsProduced(records []model.ProcessRecord) model.ChartSpec {
	units := make([]float64, len(records))
	for i, r := range records {
		if n, ok := r.UnitCount(); ok {
			units[i] = float64(n)
		}
	}

	return model.ChartSpec{
		ID:          IDUnitsProduced,
		Kind:        model.ChartBar,
		Title:       "Units Produced by Each Step",
		XTitle:      "Process Steps",
		YTitle:      "Units Produced",
		Orientation: model.Vertical,
		Categories:  steps(records),
		Series: []model.Series{
			{Name: "Units Produced", Values: units, Color: "#008080"},
		},
	}
}

// DowntimeFailure groups downtime and failure rate side by side. An
// untracked failure rate plots as 0.
func DowntimeFailure(records []model.ProcessRecord) model.ChartSpec {
	downtimes := make([]float64, len(records))
	failures := make([]float64, len(records))
	for i, r := range records {
		downtimes[i] = r.Downtime
		if f, ok := r.Failure(); ok {
			failures[i] = f
		}
	}

	return model.ChartSpec{
		ID:          IDDowntimeFailure,
		Kind:        model.ChartBar,
		Title:       "Downtime vs Failure Rate",
		XTitle:      "Process Steps",
		YTitle:      "Percentage",
		BarMode:     model.BarGroup,
		Orientation: model.Vertical,
		Categories:  steps(records),
		Series: []model.Series{
			{Name: "Downtime", Values: downtimes, Color: "#008080"},
			{Name: "Failure Rate", Values: failures, Color: "#FF8C00"},
		},
	}
}
