package output

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/madhih2000/OEE-Dashboard/internal/chart"
	"github.com/madhih2000/OEE-Dashboard/internal/metrics"
	"github.com/madhih2000/OEE-Dashboard/internal/view"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

// SummaryRow is one process line of the overview table, already formatted.
type SummaryRow struct {
	Step     string
	Status   string
	Running  bool
	Lot      string
	Units    string
	Uptime   string
	Progress string
	OEE      string
}

// SummaryHeader names the SummaryRow columns in order.
var SummaryHeader = []string{"Step", "Status", "Lot", "Units", "Uptime", "Progress", "OEE"}

func (r SummaryRow) Cells() []string {
	return []string{r.Step, r.Status, r.Lot, r.Units, r.Uptime, r.Progress, r.OEE}
}

// SummaryRows reads the overview table back out of a built dashboard: the
// overview charts give uptime and progress, the detail pages the rest.
func SummaryRows(dash model.Dashboard) []SummaryRow {
	var overview *model.OverviewPage
	for _, t := range dash.Tabs {
		if t.Overview != nil {
			overview = t.Overview
			break
		}
	}
	if overview == nil {
		return nil
	}

	charts := overview.Charts()
	uptime, _ := model.FindChart(charts, chart.IDDowntimeUptime)
	progress, _ := model.FindChart(charts, chart.IDRuntimeProgress)

	rows := make([]SummaryRow, 0, len(overview.Cards))
	for i, card := range overview.Cards {
		row := SummaryRow{
			Step:     card.Step,
			Status:   string(card.Status),
			Running:  card.Badge == model.BadgeSuccess,
			Lot:      view.NotAvailable,
			Units:    view.NotAvailable,
			Uptime:   view.NotAvailable,
			Progress: view.NotAvailable,
			OEE:      view.NotAvailable,
		}
		if v, ok := seriesValue(uptime, 0, i); ok {
			row.Uptime = metrics.FormatNumber(v) + "%"
		}
		if v, ok := seriesValue(progress, 0, i); ok && progress.HasData(i) {
			row.Progress = metrics.FormatPercent(v) + "%"
		}
		if page, ok := dash.DetailFor(card.Step); ok {
			row.Lot = page.Lot
			row.Units = cardValue(page.Cards, view.CardUnits)
			if g, ok := model.FindChart(page.Gauges, chart.GaugeID(chart.MetricOEE)); ok && g.Gauge != nil {
				row.OEE = metrics.FormatNumber(g.Gauge.Value) + "%"
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func seriesValue(spec model.ChartSpec, series, i int) (float64, bool) {
	if series >= len(spec.Series) || i >= len(spec.Series[series].Values) {
		return 0, false
	}
	return spec.Series[series].Values[i], true
}

func cardValue(cards []model.InfoCard, title string) string {
	for _, c := range cards {
		if c.Title == title {
			return c.Value
		}
	}
	return view.NotAvailable
}

// RenderSummary prints the dashboard title and the overview table.
func RenderSummary(w io.Writer, dash model.Dashboard, colorEnabled bool) {
	p := NewPrinter(w, colorEnabled)

	rows := SummaryRows(dash)
	widths := columnWidths(rows)

	p.Printf("%s\n", p.styled(ansiBold, dash.Title))
	p.Printf("%s\n\n", view.OverviewHeading)

	header := make([]string, len(SummaryHeader))
	for i, h := range SummaryHeader {
		header[i] = pad(strings.ToUpper(h), widths[i])
	}
	p.Printf("%s\n", p.styled(ansiDim, strings.TrimRight(strings.Join(header, "  "), " ")))

	for _, r := range rows {
		cells := make([]span, 0, len(widths))
		for i, cell := range r.Cells() {
			cells = append(cells, span(pad(Sanitize(cell), widths[i])))
		}
		badge := model.BadgeDanger
		if r.Running {
			badge = model.BadgeSuccess
		}
		cells[1] = p.status(model.Status(pad(Sanitize(r.Status), widths[1])), badge)
		p.Println(joinRow(cells))
	}
}

// joinRow separates cells by two spaces and drops the trailing padding.
func joinRow(cells []span) span {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(string(c))
	}
	return span(strings.TrimRight(b.String(), " "))
}

func columnWidths(rows []SummaryRow) []int {
	widths := make([]int, len(SummaryHeader))
	for i, h := range SummaryHeader {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range rows {
		for i, cell := range r.Cells() {
			if n := utf8.RuneCountInString(Sanitize(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
