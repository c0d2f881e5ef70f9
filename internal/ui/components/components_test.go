package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var threeWay = []catalog.Option{
	{Code: "higher", Label: "Higher"},
	{Code: "lower", Label: "Lower"},
	{Code: "yes", Label: "Yes"},
}

func TestOptionList_ArrowsAndEnter(t *testing.T) {
	l := NewOptionList(threeWay, "")
	assert.Equal(t, 0, l.Selected)

	l, _ = l.Update(specialKey(tea.KeyDown))
	l, _ = l.Update(specialKey(tea.KeyDown))
	l, _ = l.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, l.Selected, "selection stops at the last option")
	_, ok := l.Chosen()
	assert.False(t, ok)

	l, _ = l.Update(specialKey(tea.KeyUp))
	l, _ = l.Update(specialKey(tea.KeyEnter))
	code, ok := l.Chosen()
	assert.True(t, ok)
	assert.Equal(t, catalog.Code("lower"), code)

	// A pick only lasts for the update that made it.
	l, _ = l.Update(specialKey(tea.KeyUp))
	_, ok = l.Chosen()
	assert.False(t, ok)
}

func TestOptionList_NumberKeys(t *testing.T) {
	l := NewOptionList(threeWay, "")
	l, _ = l.Update(keyPress('3'))
	code, ok := l.Chosen()
	assert.True(t, ok)
	assert.Equal(t, catalog.Code("yes"), code)

	l, _ = l.Update(keyPress('9'))
	_, ok = l.Chosen()
	assert.False(t, ok)
	assert.Equal(t, 2, l.Selected)
}

func TestOptionList_PreselectsCurrent(t *testing.T) {
	l := NewOptionList(threeWay, "lower")
	assert.Equal(t, 1, l.Selected)
	assert.Contains(t, l.View(30), "2  LOWER")
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One", Action: func() tea.Cmd { picked = "one"; return nil }},
		{Label: "Two", Action: func() tea.Cmd { picked = "two"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	m, _ = m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "two", picked)
	assert.Contains(t, m.View(), "▸ Two")
}

func TestMenu_Wraps(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One"},
		{Label: "Two"},
	})

	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 2, m.Selected, "up from the first enabled item wraps past the disabled one")

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_Shortcuts(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "Begin", Key: "a", Action: func() tea.Cmd { picked = "begin"; return nil }},
		{Label: "Hidden", Key: "h", Disabled: true, Action: func() tea.Cmd { picked = "hidden"; return nil }},
		{Label: "Quit", Key: "q", Action: func() tea.Cmd { picked = "quit"; return nil }},
	})

	m, _ = m.Update(keyPress('q'))
	assert.Equal(t, "quit", picked)
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(keyPress('h'))
	assert.Equal(t, "quit", picked, "disabled items ignore their shortcut")
	assert.Equal(t, 2, m.Selected)

	view := m.View()
	assert.Contains(t, view, theme.Hint.Render("  A"))
	assert.NotContains(t, view, theme.Hint.Render("  H"))
}

func TestMenu_AllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Off", Disabled: true}})
	assert.Equal(t, 0, m.Selected)

	m, cmd := m.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 0, m.Selected)
}

func TestProgressBars(t *testing.T) {
	step := StepBar(2, 5, 40).View()
	assert.Contains(t, step, "Question 3 of 5")

	score := ScoreBar(4, 5, 40).View()
	assert.True(t, strings.HasSuffix(strings.TrimSpace(score), "4/5"))

	assert.Equal(t, 0.0, ratio(1, 0))
}

func TestCard(t *testing.T) {
	card := Card("› Induce labour", 30, true)
	lines := strings.Split(card, "\n")
	assert.Len(t, lines, 3, "one content line between the borders")
	assert.Contains(t, card, "Induce labour")
	assert.Contains(t, lines[0], "╭")
}
