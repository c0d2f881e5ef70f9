package reference

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ctgdx/internal/catalog"
	ref "github.com/abhisek/ctgdx/internal/reference"
	"github.com/abhisek/ctgdx/internal/router"
	"github.com/abhisek/ctgdx/internal/screen"
	"github.com/abhisek/ctgdx/internal/ui/components"
	"github.com/abhisek/ctgdx/internal/ui/layout"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

// ReferenceScreen shows the clinical background for one question.
type ReferenceScreen struct {
	question catalog.Question
	entry    ref.Entry
	found    bool

	viewport viewport.Model
	width    int
	height   int
}

var _ screen.Screen = (*ReferenceScreen)(nil)
var _ screen.KeyHintProvider = (*ReferenceScreen)(nil)

// New creates a reference screen for q.
func New(q catalog.Question) *ReferenceScreen {
	entry, found := ref.For(q.ID)
	return &ReferenceScreen{question: q, entry: entry, found: found}
}

func (r *ReferenceScreen) Init() tea.Cmd { return nil }

func (r *ReferenceScreen) Title() string { return "Reference · " + r.question.Label }

func (r *ReferenceScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "?/Esc", Description: "Back to question"},
	}
}

func (r *ReferenceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "?", "q", "esc":
			return r, router.Pop()
		}
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

func (r *ReferenceScreen) View(width, height int) string {
	if width != r.width || height != r.height {
		r.width, r.height = width, height
		cw := components.ContentWidth(width)
		r.viewport = viewport.New(viewport.WithWidth(cw), viewport.WithHeight(height))
		r.viewport.SetContent(r.render(cw))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, r.viewport.View())
}

func (r *ReferenceScreen) render(cw int) string {
	if !r.found {
		return theme.Hint.Render(fmt.Sprintf("No reference material for %s.", r.question.Label))
	}

	e := r.entry
	text := lipgloss.NewStyle().Width(cw).Foreground(theme.Text)
	dim := lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.Title.Render(e.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(
		fmt.Sprintf("%s %s · %s", e.Physiology.Icon, e.Physiology.Organ, e.Physiology.Sign)))
	b.WriteString("\n\n")

	for _, sec := range e.Sections {
		if sec.Heading != "" {
			b.WriteString(theme.Heading.Render(strings.ToUpper(sec.Heading)))
			b.WriteString("\n")
		}
		if sec.Text != "" {
			b.WriteString(text.Render(sec.Text))
			b.WriteString("\n")
		}
		for _, bullet := range sec.Bullets {
			b.WriteString(text.Render("  • " + bullet))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(e.Figures) > 0 {
		b.WriteString(theme.Heading.Render("FIGURES"))
		b.WriteString("\n")
		for _, f := range e.Figures {
			b.WriteString(dim.Render("  " + f))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(e.References) > 0 {
		b.WriteString(theme.Heading.Render("REFERENCES"))
		b.WriteString("\n")
		for i, c := range e.References {
			b.WriteString(dim.Render(fmt.Sprintf("  %d. %s", i+1, c)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
