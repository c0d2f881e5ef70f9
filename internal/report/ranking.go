package report

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/ctgdx/internal/matcher"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

// WriteRanking writes every eligible scenario with its score, best first.
// Leaders are highlighted.
func WriteRanking(w io.Writer, ranked []matcher.Ranked, total int) error {
	_, err := lipgloss.Fprint(w, Ranking(ranked, total))
	return err
}

// Ranking renders ranked as a table.
func Ranking(ranked []matcher.Ranked, total int) string {
	best := -1
	if len(ranked) > 0 {
		best = ranked[0].Score
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("#", "Scenario", "Score")

	for i, r := range ranked {
		t.Row(fmt.Sprint(i+1), r.Scenario.Title(), fmt.Sprintf("%d/%d", r.Score, total))
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		if row == table.HeaderRow {
			return base.Bold(true).Foreground(theme.TextDim)
		}
		if row >= 0 && row < len(ranked) && ranked[row].Score == best {
			return base.Bold(true).Foreground(theme.Secondary)
		}
		return base
	})

	return headingStyle.Render("RANKING") + "\n" + t.String() + "\n"
}
