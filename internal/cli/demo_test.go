package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func newTestModel(t *testing.T) *demoModel {
	t.Helper()
	cfg := DefaultConfig()
	cfg.GapWidth = 0
	cfg.LayoutFile = filepath.Join(t.TempDir(), "layout.toml")
	logger := newLogger(&bytes.Buffer{}, log.ErrorLevel)
	m := newDemoModel(cfg, logger)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return m
}

func countPanes(m *demoModel) int {
	n := 0
	for _, tile := range m.tree.Tiles().All() {
		if tile.IsPane() {
			n++
		}
	}
	return n
}

func TestDemoModel_RendersPanes(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "┌") {
		t.Error("View() should contain pane borders")
	}
	if !strings.Contains(view, "[one]") {
		t.Errorf("View() should show the first pane's tab, got:\n%s", view)
	}
}

func TestDemoModel_AddPane(t *testing.T) {
	m := newTestModel(t)
	before := countPanes(m)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	if got := countPanes(m); got != before+1 {
		t.Errorf("pane count after n = %d, want %d", got, before+1)
	}
}

func TestDemoModel_SaveLoadRoundTrip(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	want := countPanes(m)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if !strings.Contains(m.status, "saved") {
		t.Fatalf("status after save = %q, want save confirmation", m.status)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if !strings.Contains(m.status, "loaded") {
		t.Fatalf("status after load = %q, want load confirmation", m.status)
	}

	if got := countPanes(m); got != want {
		t.Errorf("pane count after load = %d, want %d", got, want)
	}
}

func TestDemoModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		m := newTestModel(t)
		var msg tea.Msg
		if key == "q" {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("Update(%q) should return tea.Quit", key)
		}
	}
}

func TestDemoModel_MouseTracksPrimaryDown(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.MouseMsg{X: 2, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.primaryDown {
		t.Error("primaryDown should be true after a left press")
	}

	m.Update(tea.MouseMsg{X: 2, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.primaryDown {
		t.Error("primaryDown should be false after release")
	}
}

func TestEncodeDecodeDemoPane(t *testing.T) {
	payload, err := encodeDemoPane(demoPane{Title: "t", Body: "b"})
	if err != nil {
		t.Fatalf("encodeDemoPane() error = %v", err)
	}

	got, err := decodeDemoPane(payload)
	if err != nil {
		t.Fatalf("decodeDemoPane() error = %v", err)
	}
	if got != (demoPane{Title: "t", Body: "b"}) {
		t.Errorf("round trip = %+v", got)
	}

	if _, err := encodeDemoPane(42); err == nil {
		t.Error("encodeDemoPane() with a non-pane payload should fail")
	}
}
