package assessment

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	asmt "github.com/abhisek/ctgdx/internal/assessment"
	"github.com/abhisek/ctgdx/internal/matcher"
	"github.com/abhisek/ctgdx/internal/report"
	"github.com/abhisek/ctgdx/internal/router"
	"github.com/abhisek/ctgdx/internal/screen"
	"github.com/abhisek/ctgdx/internal/ui/components"
	"github.com/abhisek/ctgdx/internal/ui/layout"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

// ResultScreen shows the diagnosis for a finished assessment.
type ResultScreen struct {
	state  *asmt.Assessment
	result matcher.Result
	err    error

	viewport viewport.Model
	width    int
	height   int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

func newResultScreen(state *asmt.Assessment, result matcher.Result, err error) *ResultScreen {
	return &ResultScreen{state: state, result: result, err: err}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	if s.err != nil {
		return "No Diagnosis"
	}
	if s.result.Tied {
		return "Diagnoses"
	}
	return "Diagnosis"
}

func (s *ResultScreen) Status() string {
	if s.err != nil {
		return ""
	}
	return fmt.Sprintf("%d/%d matched", s.result.Score, s.result.Total)
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "New assessment"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "r":
			s.state.Restart()
			return s, router.Replace(newQuestionScreen(s.state))
		case "enter", "esc":
			return s, router.Home()
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	if width != s.width || height != s.height {
		s.resize(width, height)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.viewport.View())
}

// resize rebuilds the viewport for a new content area.
func (s *ResultScreen) resize(width, height int) {
	s.width, s.height = width, height
	cw := components.ContentWidth(width)
	s.viewport = viewport.New(viewport.WithWidth(cw), viewport.WithHeight(height))
	s.viewport.SetContent(s.content(cw))
}

func (s *ResultScreen) content(cw int) string {
	if s.err != nil {
		return renderError(s.err, cw)
	}

	var b strings.Builder
	b.WriteString(components.ScoreBar(s.result.Score, s.result.Total, cw).View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Render(report.Text(s.state.Catalog(), s.result)))
	return b.String()
}

// renderError explains why no diagnosis can be shown. A catalog whose
// exclusions rule out everything is reported as a defect, never as a
// diagnosis.
func renderError(err error, cw int) string {
	title := "The answers could not be matched"
	if errors.Is(err, matcher.ErrNoEligibleScenario) {
		title = "Catalog defect: every scenario was excluded"
	}
	return theme.Failure.Render(title) + "\n\n" +
		lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(err.Error())
}
