package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.TextDim)
	detailStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
	contextStyle = lipgloss.NewStyle().Italic(true).Foreground(theme.Primary)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)
	warnBody     = lipgloss.NewStyle().Foreground(theme.Warning)
	matchedStyle = lipgloss.NewStyle().Foreground(theme.Success)
	missStyle    = lipgloss.NewStyle().Foreground(theme.Error)
)

// WriteText writes a human-readable report of r to w. Colors are
// downsampled to what w supports, so plain files get plain text.
func WriteText(w io.Writer, cat *catalog.Catalog, r matcher.Result) error {
	_, err := lipgloss.Fprint(w, Text(cat, r))
	return err
}

// Text renders r as styled text.
func Text(cat *catalog.Catalog, r matcher.Result) string {
	var b strings.Builder
	if r.Tied {
		writeTied(&b, cat, r)
	} else {
		writeSingle(&b, cat, r)
	}
	return b.String()
}

func writeSingle(b *strings.Builder, cat *catalog.Catalog, r matcher.Result) {
	s := r.Winner()

	banner := "Closest Matching Diagnosis"
	if r.Perfect() {
		banner = "Most Probable Diagnosis"
	}
	fmt.Fprintf(b, "%s\n\n", bannerStyle.Render(strings.ToUpper(banner)))
	writeScenarioTitle(b, s)

	if divs := Divergences(cat, r, s); len(divs) > 0 {
		noun := "criteria differ"
		if len(divs) == 1 {
			noun = "criterion differs"
		}
		fmt.Fprintf(b, "%s\n", warnStyle.Render(fmt.Sprintf("⚠ Imperfect match: %d %s", len(divs), noun)))
		for _, d := range divs {
			fmt.Fprintf(b, "  %s\n", warnBody.Render(fmt.Sprintf("%s: you answered %s, expected %s",
				d.Label, strings.ToUpper(string(d.Given)), joinCodes(d.Accepted))))
		}
		fmt.Fprintf(b, "  %s\n\n", detailStyle.Render("This is the closest match. Consider the diverging criteria in your clinical assessment."))
	}

	writeManagement(b, s)
	fmt.Fprintf(b, "%s %d/%d criteria matched\n\n", headingStyle.Render("MATCH SCORE"), r.Score, r.Total)

	fmt.Fprintf(b, "%s\n", headingStyle.Render("YOUR ANSWERS"))
	b.WriteString(summaryTable(Summary(cat, r, &s)))
	b.WriteString("\n")
}

func writeTied(b *strings.Builder, cat *catalog.Catalog, r matcher.Result) {
	fmt.Fprintf(b, "%s\n", bannerStyle.Render(fmt.Sprintf("%d DIAGNOSES IN COMPETITION · %d/%d CRITERIA MATCHED",
		len(r.Winners), r.Score, r.Total)))
	fmt.Fprintf(b, "%s\n\n", detailStyle.Render("The CTG alone cannot distinguish these diagnoses. Use the clinical context to decide."))

	for _, s := range r.Winners {
		writeScenarioTitle(b, s)
		writeManagement(b, s)
	}

	fmt.Fprintf(b, "%s\n", headingStyle.Render("YOUR ANSWERS"))
	b.WriteString(summaryTable(Summary(cat, r, nil)))
	b.WriteString("\n")
}

func writeScenarioTitle(b *strings.Builder, s catalog.Scenario) {
	title := theme.Tint(s.Color, theme.Text).Bold(true)
	icon := s.Icon
	if icon == "" {
		icon = "•"
	}
	fmt.Fprintf(b, "%s %s\n", icon, title.Render(s.Diagnosis))
	if s.Detail != "" {
		fmt.Fprintf(b, "  %s\n", detailStyle.Render(s.Detail))
	}
	if s.Context != "" {
		fmt.Fprintf(b, "  %s\n", contextStyle.Render("Clinical context: "+s.Context))
	}
	b.WriteString("\n")
}

func writeManagement(b *strings.Builder, s catalog.Scenario) {
	fmt.Fprintf(b, "%s\n", headingStyle.Render("MANAGEMENT"))
	for _, m := range s.Management {
		fmt.Fprintf(b, "  › %s\n", m)
	}
	b.WriteString("\n")
}

func summaryTable(rows []Row) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Question", "Answer", "")

	for _, row := range rows {
		mark := ""
		if row.Checked {
			mark = "◈"
			if row.Matched {
				mark = "✓"
			}
		}
		t.Row(row.Label, row.Answer, mark)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		if row == table.HeaderRow {
			return base.Bold(true).Foreground(theme.TextDim)
		}
		if col == 2 && row >= 0 && row < len(rows) && rows[row].Checked {
			if rows[row].Matched {
				return base.Inherit(matchedStyle)
			}
			return base.Inherit(missStyle)
		}
		return base
	})
	return t.String()
}

// joinCodes renders accepted codes as "A or B".
func joinCodes(codes []catalog.Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strings.ToUpper(string(c))
	}
	return strings.Join(parts, " or ")
}
