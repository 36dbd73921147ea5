package model

type BadgeColor string

const (
	BadgeSuccess BadgeColor = "success"
	BadgeDanger  BadgeColor = "danger"
)

// HeaderCard is the name and status badge of one step on the overview.
type HeaderCard struct {
	Step   string     `json:"step"`
	Status Status     `json:"status"`
	Badge  BadgeColor `json:"badge"`
}

type InfoCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Panel holds either a chart or the placeholder text shown instead of it.
type Panel struct {
	Chart       *ChartSpec `json:"chart,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
}

func (p Panel) HasChart() bool { return p.Chart != nil }

type OverviewPage struct {
	Heading string       `json:"heading"`
	Cards   []HeaderCard `json:"cards"`
	// Rows of the chart grid, two charts per row.
	Rows [][]ChartSpec `json:"rows"`
}

// Charts returns the grid charts in reading order.
func (p OverviewPage) Charts() []ChartSpec {
	var out []ChartSpec
	for _, row := range p.Rows {
		out = append(out, row...)
	}
	return out
}

type DetailPage struct {
	Step    string     `json:"step"`
	Heading string     `json:"heading"`
	Status  Status     `json:"status"`
	Badge   BadgeColor `json:"badge"`
	Lot     string     `json:"lot"`

	// Status clock first, then the metric gauges.
	Gauges   []ChartSpec `json:"gauges"`
	Runtime  Panel       `json:"runtime"`
	Material Panel       `json:"material"`
	Cards    []InfoCard  `json:"cards"`
}

// Charts returns every chart on the page, gauges first.
func (p DetailPage) Charts() []ChartSpec {
	out := append([]ChartSpec(nil), p.Gauges...)
	if p.Runtime.Chart != nil {
		out = append(out, *p.Runtime.Chart)
	}
	if p.Material.Chart != nil {
		out = append(out, *p.Material.Chart)
	}
	return out
}

// Tab carries exactly one of Overview or Detail.
type Tab struct {
	Label    string        `json:"label"`
	Overview *OverviewPage `json:"overview,omitempty"`
	Detail   *DetailPage   `json:"detail,omitempty"`
}

type Dashboard struct {
	Title string `json:"title"`
	Tabs  []Tab  `json:"tabs"`
}

// TabIndex returns the position of the tab with the given label, or -1.
func (d Dashboard) TabIndex(label string) int {
	for i, t := range d.Tabs {
		if t.Label == label {
			return i
		}
	}
	return -1
}

func (d Dashboard) Tab(label string) (Tab, bool) {
	i := d.TabIndex(label)
	if i < 0 {
		return Tab{}, false
	}
	return d.Tabs[i], true
}

// DetailFor finds the detail page of a step. The overview tab never matches.
func (d Dashboard) DetailFor(step string) (*DetailPage, bool) {
	for _, t := range d.Tabs {
		if t.Detail != nil && t.Detail.Step == step {
			return t.Detail, true
		}
	}
	return nil, false
}

// FindChart looks a chart up by ID across a set of charts.
func FindChart(charts []ChartSpec, id string) (ChartSpec, bool) {
	for _, c := range charts {
		if c.ID == id {
			return c, true
		}
	}
	return ChartSpec{}, false
}
