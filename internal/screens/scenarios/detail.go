package scenarios

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/screen"
	"github.com/abhisek/ctgdx/internal/ui/components"
	"github.com/abhisek/ctgdx/internal/ui/layout"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

// ScenarioDetailScreen shows one scenario's accepted answers and
// management plan.
type ScenarioDetailScreen struct {
	cat      *catalog.Catalog
	scenario catalog.Scenario
}

var _ screen.Screen = (*ScenarioDetailScreen)(nil)
var _ screen.KeyHintProvider = (*ScenarioDetailScreen)(nil)

func newScenarioDetail(cat *catalog.Catalog, s catalog.Scenario) *ScenarioDetailScreen {
	return &ScenarioDetailScreen{cat: cat, scenario: s}
}

func (d *ScenarioDetailScreen) Init() tea.Cmd { return nil }
func (d *ScenarioDetailScreen) Title() string { return d.scenario.Diagnosis }

func (d *ScenarioDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *ScenarioDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *ScenarioDetailScreen) View(width, height int) string {
	sc := d.scenario
	contentWidth := min(width-8, 70)

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	headingStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", sc.Icon, sc.Diagnosis)))
	b.WriteString("\n")
	if sc.Detail != "" {
		b.WriteString(dimStyle.Render("  " + sc.Detail))
		b.WriteString("\n")
	}
	if sc.Healthy {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  Baseline healthy outcome"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if sc.Context != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			Italic(true).
			PaddingLeft(2).
			Render("Clinical context: " + sc.Context))
		b.WriteString("\n\n")
	}

	b.WriteString(headingStyle.Render("  Accepted answers"))
	b.WriteString("\n")
	b.WriteString(indent(d.criteriaTable(), "  "))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("  Management"))
	b.WriteString("\n")
	steps := make([]string, len(sc.Management))
	for i, m := range sc.Management {
		steps[i] = "› " + m
	}
	b.WriteString(indent(components.Card(strings.Join(steps, "\n"), contentWidth-4, sc.Healthy), "  "))
	b.WriteString("\n")

	if rules := d.exclusions(); len(rules) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("  Excluded when"))
		b.WriteString("\n")
		for _, line := range rules {
			b.WriteString(dimStyle.Render("  ✕ " + line))
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}

// criteriaTable lists each question with the codes the scenario accepts.
// Questions the scenario does not declare are shown as not scored.
func (d *ScenarioDetailScreen) criteriaTable() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Question", "Accepted").
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Bold(true).Foreground(theme.TextDim)
			}
			return base.Foreground(theme.Text)
		})

	for _, q := range d.cat.Questions() {
		codes, ok := d.scenario.Accepted[q.ID]
		if !ok {
			t.Row(q.Label, "not scored")
			continue
		}
		labels := make([]string, len(codes))
		for i, c := range codes {
			labels[i] = strings.ToUpper(q.OptionLabel(c))
		}
		t.Row(q.Label, strings.Join(labels, " or "))
	}
	return t.String()
}

func (d *ScenarioDetailScreen) exclusions() []string {
	var out []string
	for _, r := range d.cat.Exclusions() {
		if r.Scenario != d.scenario.ID {
			continue
		}
		q, err := d.cat.Question(r.Question)
		if err != nil {
			continue
		}
		codes := make([]string, len(r.Codes))
		for i, c := range r.Codes {
			codes[i] = strings.ToUpper(string(c))
		}
		out = append(out, fmt.Sprintf("%s is %s", q.Label, strings.Join(codes, " or ")))
	}
	return out
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
