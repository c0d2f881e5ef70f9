package assessment

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/ui/components"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

// renderQuestion renders the active question with its options.
func (s *QuestionScreen) renderQuestion(width, height int) string {
	q := s.state.Current()
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(components.StepBar(s.state.Step(), s.state.Total(), cw).View())
	b.WriteString("\n\n")

	b.WriteString(questionColor(*q).Bold(true).Render(strings.ToUpper(q.Organ)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(s.options.View(cw - 2))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Failure.Render(s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Press ? for the physiology behind this question"))

	return components.Centered(b.String(), width, height)
}

// questionColor returns the accent color declared for q, falling back to
// the theme's secondary color.
func questionColor(q catalog.Question) lipgloss.Style {
	return theme.Tint(q.Color, theme.Secondary)
}
