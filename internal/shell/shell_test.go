package shell

import (
	"testing"

	"github.com/madhih2000/OEE-Dashboard/internal/store"
)

func TestBuildTabs(t *testing.T) {
	s := store.Sample()
	dash := Build(s, "")

	if dash.Title != DefaultTitle {
		t.Fatalf("title = %q", dash.Title)
	}
	if len(dash.Tabs) != s.Len()+1 {
		t.Fatalf("%d tabs, want %d", len(dash.Tabs), s.Len()+1)
	}
	first := dash.Tabs[0]
	if first.Label != OverviewLabel || first.Overview == nil || first.Detail != nil {
		t.Fatalf("tab 0 = %+v", first)
	}
	for n, r := range s.Records() {
		tab := dash.Tabs[n+1]
		if tab.Label != r.Step || tab.Detail == nil || tab.Detail.Step != r.Step {
			t.Fatalf("tab %d = %q, want detail of %q", n+1, tab.Label, r.Step)
		}
	}
}

func TestLookups(t *testing.T) {
	dash := Build(store.Sample(), "Line 4")
	if dash.Title != "Line 4" {
		t.Fatalf("title = %q", dash.Title)
	}
	if i := dash.TabIndex("Furnace"); i != 5 {
		t.Fatalf("TabIndex(Furnace) = %d, want 5", i)
	}
	if _, ok := dash.Tab("Nope"); ok {
		t.Fatal("Tab(Nope) found")
	}
	page, ok := dash.DetailFor("Machine 2")
	if !ok || page.Heading != "Details on Machine 2" {
		t.Fatalf("DetailFor(Machine 2) = %+v, %t", page, ok)
	}
	if _, ok := dash.DetailFor(OverviewLabel); ok {
		t.Fatal("overview matched as a detail page")
	}
}
