package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ctgdx/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for screen sections so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for the outer border (2) and padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int, accent bool) string {
	border := theme.Border
	if accent {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw).
		Padding(0, 1).
		Render(content)
}
