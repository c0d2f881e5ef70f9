package home

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/ctgdx/internal/reference"
	"github.com/abhisek/ctgdx/internal/ui/components"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderTitle returns the title and headline centred at content width.
func renderTitle(in reference.Intro, cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.ToUpper(in.Title))
	headline := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(in.Headline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + headline)
}

func renderIntro(in reference.Intro, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Render(strings.Join(in.Lines, "\n\n"))
}

// renderOverview lays out which sign shows that each organ is coping.
func renderOverview(rows []reference.OverviewRow, cw int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("", "Organ", "Sign of wellbeing").
		Width(cw).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Bold(true).Foreground(theme.TextDim)
			case col == 1:
				return base.Foreground(theme.Secondary).Bold(true)
			default:
				return base.Foreground(theme.Text)
			}
		})
	for _, r := range rows {
		t.Row(r.Icon, r.Organ, r.Sign)
	}

	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, t.String())
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(m components.Menu, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		if i == m.Selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+item.Label))
		} else {
			buttons = append(buttons, normalBtn.Render(item.Label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

func renderCitation(citation string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(citation)
}
