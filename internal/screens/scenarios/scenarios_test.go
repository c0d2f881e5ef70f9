package scenarios

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/router"
)

func TestCatalogScreen_HealthyFirst(t *testing.T) {
	s := New(catalog.Default())
	if s.rows[0].kind != rowGroupHeader || s.rows[0].group != "Baseline healthy" {
		t.Fatalf("first row = %+v, want healthy header", s.rows[0])
	}
	if got := s.rows[s.cursor].scenario.ID; got != "fit-for-labour" {
		t.Errorf("cursor on %q, want fit-for-labour", got)
	}

	scenarios := 0
	for _, r := range s.rows {
		if r.kind == rowScenario {
			scenarios++
		}
	}
	if scenarios != len(catalog.Default().Scenarios()) {
		t.Errorf("listed %d scenarios, want %d", scenarios, len(catalog.Default().Scenarios()))
	}
}

func TestCatalogScreen_CursorSkipsHeaders(t *testing.T) {
	s := New(catalog.Default())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.rows[s.cursor].kind != rowScenario {
		t.Fatal("cursor landed on a header")
	}
	if s.rows[s.cursor].scenario.Healthy {
		t.Error("expected the cursor to cross into the pathological group")
	}

	for range 20 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	if s.rows[s.cursor].kind != rowScenario {
		t.Error("cursor moved onto the first header")
	}
}

func TestCatalogScreen_ScrollKeepsCursorVisible(t *testing.T) {
	s := New(catalog.Default())
	for range 20 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := s.View(100, 5)
	if !strings.Contains(view, "▸") {
		t.Error("expected the cursor row to be visible")
	}
}

func TestCatalogScreen_EnterPushesDetail(t *testing.T) {
	s := New(catalog.Default())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	view := push.Screen.View(100, 60)
	for _, want := range []string{"Accepted answers", "Management", "Excluded when", "Variability is REDUCED"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestScenarioDetail_NotScored(t *testing.T) {
	cat := catalog.Default()
	var partial catalog.Scenario
	for _, sc := range cat.Scenarios() {
		if len(sc.Accepted) < cat.Total() {
			partial = sc
			break
		}
	}
	if partial.ID == "" {
		t.Skip("catalog has no partially declared scenario")
	}
	view := newScenarioDetail(cat, partial).View(100, 60)
	if !strings.Contains(view, "not scored") {
		t.Error("expected undeclared questions marked as not scored")
	}
}

func TestCatalogScreen_KeyHints(t *testing.T) {
	if n := len(New(catalog.Default()).KeyHints()); n != 3 {
		t.Errorf("KeyHints length = %d, want 3", n)
	}
}
