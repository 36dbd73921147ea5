package model

// ChartKind selects how a presentation layer draws a ChartSpec.
type ChartKind string

const (
	ChartBar   ChartKind = "bar"
	ChartPie   ChartKind = "pie"
	ChartGauge ChartKind = "gauge"
)

type BarMode string

const (
	BarStack BarMode = "stack"
	BarGroup BarMode = "group"
)

type Orientation string

const (
	Horizontal Orientation = "h"
	Vertical   Orientation = "v"
)

// ChartSpec is a renderer-neutral chart description. Only the fields that
// belong to Kind are set.
type ChartSpec struct {
	ID     string    `json:"id"`
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	XTitle string    `json:"x_title,omitempty"`
	YTitle string    `json:"y_title,omitempty"`
	Width  int       `json:"width,omitempty"`
	Height int       `json:"height,omitempty"`

	// Bar charts
	BarMode     BarMode     `json:"bar_mode,omitempty"`
	Orientation Orientation `json:"orientation,omitempty"`
	Categories  []string    `json:"categories,omitempty"`
	Series      []Series    `json:"series,omitempty"`
	// NoData marks categories drawn as zero because the step has no values.
	NoData      []bool      `json:"no_data,omitempty"`

	// Pie charts
	Pie *Pie `json:"pie,omitempty"`

	// Gauges
	Gauge *Gauge `json:"gauge,omitempty"`

	ShowLegend  *bool        `json:"show_legend,omitempty"`
	Shapes      []Shape      `json:"shapes,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// HasData reports whether category i carries values.
func (c ChartSpec) HasData(i int) bool {
	if i < 0 || i >= len(c.Categories) {
		return false
	}
	return i >= len(c.NoData) || !c.NoData[i]
}

// Series is one bar trace. Values and Hover align with ChartSpec.Categories.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color"`
	Hover  []string  `json:"hover,omitempty"`
}

type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Text  string  `json:"text"`
}

// Direction is the order slices are laid out in, starting at Rotation
// degrees.
type Direction string

const (
	CounterClockwise Direction = "counterclockwise"
	Clockwise        Direction = "clockwise"
)

// TextInfo values follow the common charting vocabulary: "value", "text",
// "none". Sorted slices are drawn largest first.
type Pie struct {
	Slices    []Slice   `json:"slices"`
	Hole      float64   `json:"hole"`
	Rotation  float64   `json:"rotation,omitempty"`
	Direction Direction `json:"direction"`
	Sorted    bool      `json:"sorted"`
	TextInfo  string    `json:"text_info"`
	HoverText bool      `json:"hover_text"`
}

type Band struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

type Threshold struct {
	Value     float64 `json:"value"`
	Color     string  `json:"color"`
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
}

type Gauge struct {
	Value     float64   `json:"value"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Suffix    string    `json:"suffix"`
	BarColor  string    `json:"bar_color"`
	Bands     []Band    `json:"bands"`
	Threshold Threshold `json:"threshold"`
}

type ShapeKind string

const (
	ShapeCircle ShapeKind = "circle"
	ShapeLine   ShapeKind = "line"
)

// Shape coordinates are fractions of the plot area (paper coordinates).
type Shape struct {
	Kind      ShapeKind `json:"kind"`
	X0        float64   `json:"x0"`
	Y0        float64   `json:"y0"`
	X1        float64   `json:"x1"`
	Y1        float64   `json:"y1"`
	Color     string    `json:"color"`
	FillColor string    `json:"fill_color,omitempty"`
	Width     float64   `json:"width,omitempty"`
}

type Annotation struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize int     `json:"font_size,omitempty"`
	Color    string  `json:"color,omitempty"`
}
