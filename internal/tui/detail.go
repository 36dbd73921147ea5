package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/madhih2000/OEE-Dashboard/internal/chart"
	"github.com/madhih2000/OEE-Dashboard/internal/metrics"
	"github.com/madhih2000/OEE-Dashboard/internal/output"
	"github.com/madhih2000/OEE-Dashboard/internal/view"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

const (
	labelWidth = 16
	minBar     = 10
	maxBar     = 40
)

// Clock zone colours, running to stopped.
var (
	runningZone = lipgloss.Color("#2bad4e")
	middleZone  = lipgloss.Color("#f2a529")
	stoppedZone = lipgloss.Color("#f25829")
)

func barWidth(width int) int {
	w := width - labelWidth - 12
	if w < minBar {
		return minBar
	}
	if w > maxBar {
		return maxBar
	}
	return w
}

func badge(page model.DetailPage) string {
	bg := stoppedZone
	if page.Badge == model.BadgeSuccess {
		bg = runningZone
	}
	return lipgloss.NewStyle().Padding(0, 1).Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(bg).
		Render(string(page.Status))
}

// clock draws the status clock as its three zones, lighting the one the
// needle points at.
func clock(status model.Status) string {
	zone := func(label string, c lipgloss.Color, lit bool) string {
		s := lipgloss.NewStyle().Padding(0, 1)
		if lit {
			return s.Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(c).Render(label)
		}
		return s.Foreground(c).Render(label)
	}
	running := status.IsRunning()
	return zone("Running", runningZone, running) + zone("·", middleZone, false) + zone("Stopped", stoppedZone, !running)
}

func labelled(label, body string) string {
	return fmt.Sprintf("%-*s %s", labelWidth, label, body)
}

func renderDetail(page model.DetailPage, width int) string {
	bw := barWidth(width)
	var b strings.Builder

	b.WriteString(headerStyle.Render(output.Sanitize(page.Heading)) + "  " + badge(page) + "\n\n")
	b.WriteString(labelled("Status", clock(page.Status)) + "\n")
	b.WriteString(labelled("Current Lot", output.Sanitize(page.Lot)) + "\n\n")

	for _, g := range page.Gauges {
		if g.Gauge == nil {
			continue
		}
		band := chart.BandFor(g.Gauge.Value)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(band.Color)).Render(output.Bar(g.Gauge.Value, bw))
		b.WriteString(labelled(g.Title, bar+" "+metrics.FormatNumber(g.Gauge.Value)+g.Gauge.Suffix) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(panel("Runtime", page.Runtime, bw))
	b.WriteString(panel("Material", page.Material, bw))

	for _, c := range page.Cards {
		b.WriteString(labelled(c.Title, c.Value) + "\n")
	}
	return b.String()
}

// panel draws a donut as a proportion bar of its first slice, followed by
// the slice texts.
func panel(label string, p model.Panel, bw int) string {
	if !p.HasChart() || p.Chart.Pie == nil || len(p.Chart.Pie.Slices) == 0 {
		return labelled(label, mutedStyle.Render(p.Placeholder)) + "\n\n"
	}
	slices := p.Chart.Pie.Slices
	first := lipgloss.NewStyle().Foreground(lipgloss.Color(slices[0].Color)).Render(output.Bar(slices[0].Value, bw))

	var b strings.Builder
	b.WriteString(labelled(label, first) + "\n")
	for _, s := range slices {
		b.WriteString(labelled("", output.PlainText(s.Text)) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// overviewBars draws uptime and runtime progress per step, one line each.
func overviewBars(d model.Dashboard, width int) string {
	var page *model.OverviewPage
	for _, t := range d.Tabs {
		if t.Overview != nil {
			page = t.Overview
			break
		}
	}
	if page == nil {
		return ""
	}

	charts := page.Charts()
	uptime, ok := model.FindChart(charts, chart.IDDowntimeUptime)
	if !ok || len(uptime.Series) == 0 {
		return ""
	}
	progress, _ := model.FindChart(charts, chart.IDRuntimeProgress)

	bw := max(5, min(30, (width-50)/2))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("#2bad4e"))
	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-28s %-*s %s", "", bw+8, "Uptime", "Progress")) + "\n")
	for i, step := range uptime.Categories {
		up := uptime.Series[0].Values[i]
		line := fmt.Sprintf("%-28s %s %6s", output.Sanitize(step), green.Render(output.Bar(up, bw)), metrics.FormatNumber(up)+"%")
		if len(progress.Series) > 0 && i < len(progress.Series[0].Values) {
			if !progress.HasData(i) {
				line += "  " + mutedStyle.Render(strings.Repeat("·", bw)+"    "+view.NotAvailable)
			} else {
				pct := progress.Series[0].Values[i]
				line += "  " + green.Render(output.Bar(pct, bw)) + fmt.Sprintf(" %7s", metrics.FormatPercent(pct)+"%")
			}
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
