package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
	"github.com/abhisek/ctgdx/internal/reference"
	"github.com/abhisek/ctgdx/internal/router"
	"github.com/abhisek/ctgdx/internal/screen"
	assessmentscreen "github.com/abhisek/ctgdx/internal/screens/assessment"
	"github.com/abhisek/ctgdx/internal/screens/scenarios"
	"github.com/abhisek/ctgdx/internal/ui/components"
	"github.com/abhisek/ctgdx/internal/ui/layout"
)

// HomeScreen introduces the assessment and offers the main menu.
type HomeScreen struct {
	menu  components.Menu
	intro reference.Intro
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, m *matcher.Matcher) *HomeScreen {
	items := []components.MenuItem{
		{Label: "BEGIN ASSESSMENT", Key: "a", Action: func() tea.Cmd {
			return router.Push(assessmentscreen.New(cat, m))
		}},
		{Label: "SCENARIO CATALOG", Key: "c", Action: func() tea.Cmd {
			return router.Push(scenarios.New(cat))
		}},
		{Label: "EXIT", Key: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		intro: reference.Overview(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var content string
	for detail := detailFull; detail >= detailMenu; detail-- {
		content = h.render(cw, detail)
		if lipgloss.Height(content) <= height {
			break
		}
	}
	return components.Centered(content, width, height)
}

// detail controls how much of the introduction the home screen shows.
type detail int

const (
	detailMenu detail = iota
	detailOverview
	detailFull
)

// render lays out the home sections, dropping the intro text first and
// the overview table next so the menu always fits.
func (h *HomeScreen) render(cw int, d detail) string {
	sections := []string{renderTitle(h.intro, cw)}
	if d >= detailFull {
		sections = append(sections, renderIntro(h.intro, cw))
	}
	if d >= detailOverview {
		sections = append(sections, renderOverview(h.intro.Overview, cw))
	}
	sections = append(sections, renderMenu(h.menu, cw))
	if d >= detailFull {
		sections = append(sections, renderCitation(h.intro.Citation, cw))
	}
	return strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "A/C/Q", Description: "Shortcut"},
	}
}
