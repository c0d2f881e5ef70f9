package scenarios

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/router"
	"github.com/abhisek/ctgdx/internal/screen"
	"github.com/abhisek/ctgdx/internal/ui/layout"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

type rowKind int

const (
	rowGroupHeader rowKind = iota
	rowScenario
)

type row struct {
	kind     rowKind
	group    string
	scenario *catalog.Scenario
}

// CatalogScreen lists every scenario, healthy outcomes first.
type CatalogScreen struct {
	cat          *catalog.Catalog
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)

// New creates a new CatalogScreen.
func New(cat *catalog.Catalog) *CatalogScreen {
	var healthy, pathological []catalog.Scenario
	for _, s := range cat.Scenarios() {
		if s.Healthy {
			healthy = append(healthy, s)
		} else {
			pathological = append(pathological, s)
		}
	}

	var rows []row
	for _, g := range []struct {
		name  string
		items []catalog.Scenario
	}{
		{"Baseline healthy", healthy},
		{"Pathological", pathological},
	} {
		if len(g.items) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowGroupHeader, group: g.name})
		for i := range g.items {
			rows = append(rows, row{kind: rowScenario, group: g.name, scenario: &g.items[i]})
		}
	}

	s := &CatalogScreen{cat: cat, rows: rows}
	for i, r := range s.rows {
		if r.kind == rowScenario {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *CatalogScreen) Init() tea.Cmd {
	return nil
}

func (s *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.selectScenario()
		case "q":
			return s, router.Pop()
		}
	}
	return s, nil
}

func (s *CatalogScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowGroupHeader:
			lines = append(lines, renderGroupHeader(r.group, width))
		case rowScenario:
			lines = append(lines, renderScenarioRow(*r.scenario, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *CatalogScreen) Title() string {
	return "Scenario Catalog"
}

func (s *CatalogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping group headers.
func (s *CatalogScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowScenario {
			s.cursor = next
			return
		}
		next += delta
	}
}

// adjustScroll keeps the cursor, and the header above it, on screen.
func (s *CatalogScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowGroupHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *CatalogScreen) selectScenario() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowScenario || r.scenario == nil {
		return nil
	}
	return router.Push(newScenarioDetail(s.cat, *r.scenario))
}

func renderGroupHeader(name string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(name))
}

func renderScenarioRow(sc catalog.Scenario, selected bool, width int) string {
	criteria := fmt.Sprintf("%d criteria", len(sc.Accepted))

	nameWidth := max(width-4-3-12-4, 10)
	name := sc.Title()
	if lipgloss.Width(name) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := theme.Tint(sc.Color, theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	cursor := "  "
	if selected {
		cursor = "▸ "
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	icon := sc.Icon
	if icon == "" {
		icon = "·"
	}

	return fmt.Sprintf("  %s%s %s  %s",
		cursor,
		icon,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		dim.Render(fmt.Sprintf("%12s", criteria)),
	)
}
