package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ctgdx/internal/router"
	"github.com/abhisek/ctgdx/internal/screen"
)

type stubScreen string

func (s stubScreen) Init() tea.Cmd                           { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s stubScreen) View(int, int) string                    { return string(s) }
func (s stubScreen) Title() string                           { return string(s) }

func sized(t *testing.T, w, h int) AppModel {
	t.Helper()
	model, _ := New(Options{}).Update(tea.WindowSizeMsg{Width: w, Height: h})
	m, ok := model.(AppModel)
	require.True(t, ok)
	return m
}

func TestAppModel_HomeOnStart(t *testing.T) {
	m := sized(t, 100, 40)
	assert.Equal(t, "Home", m.router.Active().Title())
	assert.Contains(t, m.frame(), "BEGIN ASSESSMENT")
}

func TestAppModel_TooSmall(t *testing.T) {
	m := sized(t, 40, 10)
	assert.Contains(t, m.frame(), "Terminal too small")
}

func TestAppModel_NoFrameBeforeResize(t *testing.T) {
	assert.Empty(t, New(Options{}).frame())
}

func TestAppModel_EscAtRootDoesNothing(t *testing.T) {
	m := sized(t, 100, 40)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestAppModel_EscPopsPushedScreen(t *testing.T) {
	m := sized(t, 100, 40)

	// Enter on the first menu item starts an assessment.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	m.Update(push)
	assert.Equal(t, "Assessment", m.router.Active().Title())
	assert.Contains(t, m.frame(), "Reference")
	assert.Contains(t, m.frame(), "Home › Assessment")

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok = cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := sized(t, 100, 40)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppModel_HeaderFallsBackToActiveTitle(t *testing.T) {
	m := sized(t, 80, 24)
	m.router.Update(router.PushScreenMsg{Screen: stubScreen("A rather long screen title for the header")})

	assert.Equal(t, "A rather long screen title for the header", m.headerTitle())
}

func TestAppModel_HeaderShowsAssessmentProgress(t *testing.T) {
	m := sized(t, 100, 40)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Contains(t, m.frame(), "0/5 answered")
}
