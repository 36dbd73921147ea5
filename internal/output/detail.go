package output

import (
	"io"

	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

const detailBarWidth = 30

// RenderDetail prints one process page: status, gauges as bars, the two
// breakdowns and the info cards.
func RenderDetail(w io.Writer, page model.DetailPage, colorEnabled bool) {
	p := NewPrinter(w, colorEnabled)

	p.Printf("%s  [%s]\n", p.styled(ansiBold, page.Heading), p.status(page.Status, page.Badge))
	p.Printf("Current Lot: %s\n\n", page.Lot)

	for _, g := range page.Gauges {
		if g.Gauge == nil {
			continue
		}
		p.Printf("%-14s %s %s%s\n", g.Title, p.bar(ansiBlue, g.Gauge.Value, detailBarWidth), g.Gauge.Value, g.Gauge.Suffix)
	}
	p.Println()

	renderPanel(p, "Runtime", page.Runtime)
	renderPanel(p, "Material", page.Material)

	for _, card := range page.Cards {
		p.Printf("%s: %s\n", p.styled(ansiCyan, pad(card.Title, 15)), card.Value)
	}
}

func renderPanel(p Printer, label string, panel model.Panel) {
	p.Printf("%s\n", p.styled(ansiBold, label))
	if !panel.HasChart() || panel.Chart.Pie == nil || len(panel.Chart.Pie.Slices) == 0 {
		p.Printf("  %s\n\n", panel.Placeholder)
		return
	}
	slices := panel.Chart.Pie.Slices
	p.Printf("  %s\n", span(Bar(slices[0].Value, detailBarWidth)))
	for _, s := range slices {
		p.Printf("  %s\n", PlainText(s.Text))
	}
	p.Println()
}
