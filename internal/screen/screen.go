// Package screen defines what the router stacks: home, the question and
// result pages of an assessment, the scenario catalog and reference pages.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ctgdx/internal/ui/layout"
)

// Screen is one page of the application. The app draws the header and
// footer; a screen only renders the area between them.
type Screen interface {
	Init() tea.Cmd

	// Update returns the screen to keep on the stack, usually the
	// receiver itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders into a width x height content area.
	View(width, height int) string

	// Title names the screen in the header trail.
	Title() string
}

// KeyHintProvider is implemented by screens whose keys differ from the
// footer defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a short status, such
// as assessment progress, on the right of the header.
type StatusProvider interface {
	Status() string
}
