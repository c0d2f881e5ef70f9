package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

// OptionList lets the user pick one answer to a question. Options can be
// chosen with the arrow keys and Enter, or directly by number.
type OptionList struct {
	Options  []catalog.Option
	Selected int
	chosen   catalog.Code
}

// NewOptionList creates a list over opts, pre-selecting current when it is
// one of them.
func NewOptionList(opts []catalog.Option, current catalog.Code) OptionList {
	l := OptionList{Options: opts}
	for i, o := range opts {
		if o.Code == current {
			l.Selected = i
		}
	}
	return l
}

// Update handles navigation. Chosen reports a pick made by this update.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	l.chosen = ""
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(l.Options) == 0 {
		return l, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Options)-1 {
			l.Selected++
		}
	case "enter":
		l.chosen = l.Options[l.Selected].Code
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(l.Options) {
			l.Selected = n - 1
			l.chosen = l.Options[l.Selected].Code
		}
	}
	return l, nil
}

// Chosen returns the code picked by the last Update, if any.
func (l OptionList) Chosen() (catalog.Code, bool) {
	return l.chosen, l.chosen != ""
}

// View renders the options, numbered from 1.
func (l OptionList) View(width int) string {
	var b strings.Builder
	for i, o := range l.Options {
		line := fmt.Sprintf("%d  %s", i+1, strings.ToUpper(o.Label))
		style := lipgloss.NewStyle().
			Width(width).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())
		if i == l.Selected {
			style = style.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
			line = "▸ " + line
		} else {
			style = style.BorderForeground(theme.Border).Foreground(theme.Text)
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
