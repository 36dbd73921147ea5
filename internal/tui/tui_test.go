package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/madhih2000/OEE-Dashboard/internal/shell"
	"github.com/madhih2000/OEE-Dashboard/internal/store"
	"github.com/madhih2000/OEE-Dashboard/internal/view"
)

func sampleModel() tuiModel {
	return newModel(shell.Build(store.Sample(), ""))
}

func press(m tuiModel, msgs ...tea.Msg) (tuiModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(tuiModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabNavigation(t *testing.T) {
	tests := map[string]struct {
		keys   []tea.Msg
		active int
	}{
		"right":         {keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}}, active: 1},
		"tab twice":     {keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}}, active: 2},
		"left wraps":    {keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}}, active: 11},
		"shift+tab":     {keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyShiftTab}}, active: 11},
		"jump":          {keys: []tea.Msg{runes("6")}, active: 5},
		"jump then one": {keys: []tea.Msg{runes("9"), runes("1")}, active: 0},
		"right wraps":   {keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyRight}}, active: 0},
	}

	for name, tc := range tests {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m, _ := press(sampleModel(), tc.keys...)
			if m.active != tc.active {
				t.Fatalf("active = %d, want %d", m.active, tc.active)
			}
		})
	}
}

func TestEnterOpensSelectedProcess(t *testing.T) {
	m, _ := press(sampleModel(), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.active != 2 || m.dash.Tabs[m.active].Label != "Machine 1" {
		t.Fatalf("active = %d (%s), want Machine 1", m.active, m.dash.Tabs[m.active].Label)
	}
	if !strings.Contains(m.View(), "Details on Machine 1") {
		t.Fatal("detail page not shown")
	}

	// enter is a no-op on detail tabs
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.active != 2 {
		t.Fatalf("enter on detail moved to tab %d", m.active)
	}
}

func TestQuitAndHelp(t *testing.T) {
	m, cmd := press(sampleModel(), runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}

	m, _ = press(m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("? did not expand help")
	}
	if !strings.Contains(m.View(), "jump to tab") {
		t.Fatal("full help missing jump binding")
	}
}

func TestOverviewView(t *testing.T) {
	m, _ := press(sampleModel(), tea.WindowSizeMsg{Width: 120, Height: 40})
	out := m.View()
	for _, want := range []string{shell.DefaultTitle, view.OverviewHeading, "Paste Grinding", "Uptime", "86.67%"} {
		if !strings.Contains(out, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestDetailViewPlaceholders(t *testing.T) {
	m, _ := press(sampleModel(), tea.WindowSizeMsg{Width: 120, Height: 60}, runes("5"))
	out := m.View()
	for _, want := range []string{"Details on Machine 3", "Current Lot", view.NoRuntime, view.NoMaterial, "Failure Rate"} {
		if !strings.Contains(out, want) {
			t.Errorf("Machine 3 page missing %q", want)
		}
	}
}
