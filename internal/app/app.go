package app

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
	"github.com/abhisek/ctgdx/internal/router"
	"github.com/abhisek/ctgdx/internal/screen"
	"github.com/abhisek/ctgdx/internal/screens/home"
	"github.com/abhisek/ctgdx/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Catalog *catalog.Catalog
	Matcher *matcher.Matcher
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// New creates a new AppModel with the home screen. A missing catalog
// falls back to the built-in one and a missing matcher uses the
// catalog's exclusion rules.
func New(opts Options) AppModel {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Matcher == nil {
		opts.Matcher = matcher.ForCatalog(opts.Catalog)
	}
	return AppModel{
		router: router.New(home.New(opts.Catalog, opts.Matcher)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.frame(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// frame renders the whole screen, or nothing before the first resize.
func (m AppModel) frame() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	status := ""
	if p, ok := active.(screen.StatusProvider); ok {
		status = p.Status()
	}
	header := layout.RenderHeader(m.headerTitle(), status, m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// headerTitle joins the navigation trail, or shows just the active title
// when the trail would crowd the header.
func (m AppModel) headerTitle() string {
	trail := strings.Join(m.router.Trail(), " › ")
	if lipgloss.Width(trail) > m.width/2 {
		return m.router.Active().Title()
	}
	return trail
}

// hints returns the active screen's own key hints, or generic ones.
func (m AppModel) hints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
