package chart

import (
	"math"
	"strconv"

	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

const IDStatusClock = "status-gauge"

// The clock is a half-circle pie laid out counterclockwise from 12 o'clock:
// a blank spacer covering the lower half and three equal zones across the
// top, Stopped on the right and Running on the left. The needle is mapped onto
// [clockMin, clockMax]: running points to the upper left (0.8π), anything
// else to the upper right (0.2π).
const (
	clockMin       = 0.0
	clockMax       = 50.0
	clockRunning   = 10.0
	clockStopped   = 40.0
	clockSpacer    = 0.5
	clockZones     = 3
	clockHole      = 0.5
	clockRotation  = 90
	clockSize      = 240
	clockHubRadius = 0.02
	clockInk       = "#333"
)

// Center of the clock in paper coordinates.
const clockCenter = 0.5

var (
	clockColors = []string{"#ffffff", "#f25829", "#f2a529", "#2bad4e"}
	clockTexts  = []string{"", "<b>Stopped</b>", "", "<b>Running</b>"}
)

// NeedleLength is the hand length in paper units.
var NeedleLength = math.Sqrt2 / 4

// NeedleGeometry places the clock hand.
type NeedleGeometry struct {
	Value float64
	Angle float64 // radians, 0 points right, π points left
	X0    float64
	Y0    float64
	X1    float64
	Y1    float64
}

// NeedleValue maps a status onto the clock domain.
func NeedleValue(s model.Status) float64 {
	if s.IsRunning() {
		return clockRunning
	}
	return clockStopped
}

// NeedleAngle converts a clock value to a hand angle, clamping into range.
func NeedleAngle(v float64) float64 {
	clamped := math.Max(clockMin, math.Min(clockMax, v))
	return math.Pi * (1 - (clamped-clockMin)/(clockMax-clockMin))
}

// Needle computes the hand for a status.
func Needle(s model.Status) NeedleGeometry {
	v := NeedleValue(s)
	angle := NeedleAngle(v)
	return NeedleGeometry{
		Value: v,
		Angle: angle,
		X0:    clockCenter,
		Y0:    clockCenter,
		X1:    clockCenter + NeedleLength*math.Cos(angle),
		Y1:    clockCenter + NeedleLength*math.Sin(angle),
	}
}

// ClockWeights returns the segment weights: the spacer, then the zones.
func ClockWeights() []float64 {
	w := []float64{clockSpacer}
	for i := 0; i < clockZones; i++ {
		w = append(w, clockSpacer/clockZones)
	}
	return w
}

// LotLabel is the lot number of a step, or "N/A".
func LotLabel(r model.ProcessRecord) string {
	if id, ok := r.LotID(); ok {
		return strconv.Itoa(id)
	}
	return notAvailable
}

// StatusClock builds the status gauge of one step.
func StatusClock(r model.ProcessRecord) model.ChartSpec {
	weights := ClockWeights()
	slices := make([]model.Slice, len(weights))
	for i, w := range weights {
		slices[i] = model.Slice{Value: w, Color: clockColors[i], Text: clockTexts[i]}
	}

	n := Needle(r.Status)
	noLegend := false
	return model.ChartSpec{
		ID:         IDStatusClock,
		Kind:       model.ChartPie,
		Title:      "Status",
		Width:      clockSize,
		Height:     clockSize,
		ShowLegend: &noLegend,
		Pie: &model.Pie{
			Slices:    slices,
			Hole:      clockHole,
			Rotation:  clockRotation,
			Direction: model.CounterClockwise,
			Sorted:    true,
			TextInfo:  "text",
		},
		Annotations: []model.Annotation{
			{Text: "<b>Status</b>", X: 0.5, Y: 1.05, FontSize: 18, Color: "black"},
			{Text: "<br><b>Current Lot: " + LotLabel(r) + "</b>", X: 0.5, Y: 0.2},
		},
		Shapes: []model.Shape{
			{
				Kind:      model.ShapeCircle,
				X0:        clockCenter - clockHubRadius,
				Y0:        clockCenter - clockHubRadius,
				X1:        clockCenter + clockHubRadius,
				Y1:        clockCenter + clockHubRadius,
				Color:     clockInk,
				FillColor: clockInk,
			},
			{Kind: model.ShapeLine, X0: n.X0, Y0: n.Y0, X1: n.X1, Y1: n.Y1, Color: clockInk, Width: 4},
		},
	}
}
