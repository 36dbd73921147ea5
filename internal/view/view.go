// Package view composes chart specs and cards into dashboard pages.
package view

import (
	"fmt"
	"strconv"

	"github.com/madhih2000/OEE-Dashboard/internal/chart"
	"github.com/madhih2000/OEE-Dashboard/internal/metrics"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

// Placeholder texts for data that is missing or not tracked.
const (
	NoRuntime     = "No Information Related to Runtime is Available"
	NoMaterial    = "No Information Related to Material Usage is Available"
	NoFailureRate = "No Information is Available"
	NotAvailable  = "N/A"
)

const OverviewHeading = "Operations Status"

// Info card titles.
const (
	CardUnits    = "Units Produced"
	CardDowntime = "Downtime"
	CardFailure  = "Failure Rate"
)

// BadgeColor is a closed two-way classification: running or not.
func BadgeColor(s model.Status) model.BadgeColor {
	if s.IsRunning() {
		return model.BadgeSuccess
	}
	return model.BadgeDanger
}

// Overview lays out one header card per process, in input order, then the
// four line-wide charts in a 2x2 grid.
func Overview(records []model.ProcessRecord) model.OverviewPage {
	cards := make([]model.HeaderCard, len(records))
	for i, r := range records {
		cards[i] = model.HeaderCard{Step: r.Step, Status: r.Status, Badge: BadgeColor(r.Status)}
	}

	return model.OverviewPage{
		Heading: OverviewHeading,
		Cards:   cards,
		Rows: [][]model.ChartSpec{
			{chart.DowntimeUptime(records), chart.RuntimeProgress(records)},
			{chart.UnitsProduced(records), chart.DowntimeFailure(records)},
		},
	}
}

// Detail lays out the page of a single process.
func Detail(r model.ProcessRecord) model.DetailPage {
	gauges := append([]model.ChartSpec{chart.StatusClock(r)}, chart.MetricGauges(r)...)

	runtime := model.Panel{Placeholder: NoRuntime}
	if spec, ok := chart.RuntimeDonut(r); ok {
		runtime = model.Panel{Chart: &spec}
	}
	material := model.Panel{Placeholder: NoMaterial}
	if spec, ok := chart.MaterialDonut(r); ok {
		material = model.Panel{Chart: &spec}
	}

	return model.DetailPage{
		Step:     r.Step,
		Heading:  fmt.Sprintf("Details on %s", r.Step),
		Status:   r.Status,
		Badge:    BadgeColor(r.Status),
		Lot:      chart.LotLabel(r),
		Gauges:   gauges,
		Runtime:  runtime,
		Material: material,
		Cards:    InfoCards(r),
	}
}

// InfoCards returns the units, downtime and failure rate cards.
func InfoCards(r model.ProcessRecord) []model.InfoCard {
	units := NotAvailable
	if n, ok := r.UnitCount(); ok {
		units = strconv.Itoa(n)
	}
	failure := NoFailureRate
	if f, ok := r.Failure(); ok {
		failure = metrics.FormatNumber(f) + "%"
	}

	return []model.InfoCard{
		{Title: CardUnits, Value: units},
		{Title: CardDowntime, Value: metrics.FormatNumber(r.Downtime) + "%"},
		{Title: CardFailure, Value: failure},
	}
}
