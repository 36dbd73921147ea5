package chart

import (
	"strings"

	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

const (
	gaugeMin  = 0.0
	gaugeMax  = 100.0
	gaugeSize = 240
)

// GaugeBands are the fixed colour zones of every metric gauge, red to green.
var GaugeBands = []model.Band{
	{From: 0, To: 25, Color: "#ff0000"},
	{From: 25, To: 50, Color: "#ff8000"},
	{From: 50, To: 75, Color: "#ffff00"},
	{From: 75, To: 100, Color: "#80ff00"},
}

// Metric names in display order.
const (
	MetricAvailability = "Availability"
	MetricPerformance  = "Performance"
	MetricQuality      = "Quality"
	MetricOEE          = "OEE"
)

// GaugeID returns the chart ID of a metric gauge.
func GaugeID(metric string) string {
	return strings.ToLower(metric) + "-gauge"
}

// BandFor returns the band a value falls in. Bands are half-open except the
// last, which includes 100; values outside the range take the nearest band.
func BandFor(v float64) model.Band {
	for _, b := range GaugeBands {
		if v < b.To {
			return b
		}
	}
	return GaugeBands[len(GaugeBands)-1]
}

// MetricGauge builds a single numeric gauge.
func MetricGauge(metric string, value float64) model.ChartSpec {
	return model.ChartSpec{
		ID:     GaugeID(metric),
		Kind:   model.ChartGauge,
		Title:  metric,
		Width:  gaugeSize,
		Height: gaugeSize,
		Gauge: &model.Gauge{
			Value:    value,
			Min:      gaugeMin,
			Max:      gaugeMax,
			Suffix:   "%",
			BarColor: "darkblue",
			Bands:    append([]model.Band(nil), GaugeBands...),
			Threshold: model.Threshold{
				Value:     gaugeMax,
				Color:     "red",
				Width:     4,
				Thickness: 0.75,
			},
		},
	}
}

// MetricGauges returns Availability, Performance, Quality and OEE gauges.
func MetricGauges(r model.ProcessRecord) []model.ChartSpec {
	return []model.ChartSpec{
		MetricGauge(MetricAvailability, r.Availability),
		MetricGauge(MetricPerformance, r.Performance),
		MetricGauge(MetricQuality, r.Quality),
		MetricGauge(MetricOEE, r.OEE),
	}
}
