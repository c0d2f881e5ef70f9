package assessment

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	asmt "github.com/abhisek/ctgdx/internal/assessment"
	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
	"github.com/abhisek/ctgdx/internal/router"
	"github.com/abhisek/ctgdx/internal/screen"
	referencescreen "github.com/abhisek/ctgdx/internal/screens/reference"
	"github.com/abhisek/ctgdx/internal/ui/components"
	"github.com/abhisek/ctgdx/internal/ui/layout"
)

// QuestionScreen asks the questions one at a time and shows the result
// once the last one is answered.
type QuestionScreen struct {
	state   *asmt.Assessment
	options components.OptionList
	errMsg  string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)

// New starts a fresh assessment over cat.
func New(cat *catalog.Catalog, m *matcher.Matcher) *QuestionScreen {
	return newQuestionScreen(asmt.New(cat, m))
}

func newQuestionScreen(state *asmt.Assessment) *QuestionScreen {
	s := &QuestionScreen{state: state}
	s.resetOptions()
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return "Assessment"
}

func (s *QuestionScreen) Status() string {
	return fmt.Sprintf("%d/%d answered", s.state.Step(), s.state.Total())
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter/1-9", Description: "Answer"},
		{Key: "?", Description: "Reference"},
	}
	if s.state.Step() > 0 {
		hints = append(hints, layout.KeyHint{Key: "B", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "?":
		q := s.state.Current()
		if q == nil {
			return s, nil
		}
		return s, router.Push(referencescreen.New(*q))
	case "b", "backspace":
		s.errMsg = ""
		if s.state.Step() == 0 {
			return s, nil
		}
		prev := s.state.Answers()[s.state.Catalog().QuestionAt(s.state.Step()-1).ID]
		s.state.Back()
		s.resetOptions()
		s.options = components.NewOptionList(s.options.Options, prev)
		return s, nil
	}

	s.options, _ = s.options.Update(msg)
	code, ok := s.options.Chosen()
	if !ok {
		return s, nil
	}
	if err := s.state.Answer(code); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""

	if !s.state.Complete() {
		s.resetOptions()
		return s, nil
	}

	result, err := s.state.Finish()
	return s, router.Replace(newResultScreen(s.state, result, err))
}

func (s *QuestionScreen) View(width, height int) string {
	if s.state.Current() == nil {
		return ""
	}
	return s.renderQuestion(width, height)
}

// resetOptions shows the current question's options.
func (s *QuestionScreen) resetOptions() {
	q := s.state.Current()
	if q == nil {
		s.options = components.OptionList{}
		return
	}
	s.options = components.NewOptionList(q.Options, "")
}
