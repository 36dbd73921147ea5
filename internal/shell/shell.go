// Package shell builds the tab set of the dashboard: the overview first,
// then one detail tab per process.
package shell

import (
	"github.com/madhih2000/OEE-Dashboard/internal/store"
	"github.com/madhih2000/OEE-Dashboard/internal/view"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

const (
	DefaultTitle  = "Process Monitoring Dashboard"
	OverviewLabel = "Overall Dashboard"
)

// Build renders every tab once. The result is immutable and safe to share.
func Build(s *store.Store, title string) model.Dashboard {
	if title == "" {
		title = DefaultTitle
	}
	records := s.Records()

	overview := view.Overview(records)
	tabs := make([]model.Tab, 0, len(records)+1)
	tabs = append(tabs, model.Tab{Label: OverviewLabel, Overview: &overview})
	for _, r := range records {
		page := view.Detail(r)
		tabs = append(tabs, model.Tab{Label: r.Step, Detail: &page})
	}
	return model.Dashboard{Title: title, Tabs: tabs}
}
