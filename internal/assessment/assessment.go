// Package assessment walks a clinician through the questions one at a
// time and hands the completed answer vector to the matcher.
package assessment

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/logging"
	"github.com/abhisek/ctgdx/internal/matcher"
)

// ErrIncomplete is returned by Finish before every question is answered.
var ErrIncomplete = errors.New("assessment incomplete")

// Assessment is the state of one pass through the questions. It is not
// safe for concurrent use; the TUI drives it from a single goroutine.
type Assessment struct {
	ID        string
	StartTime time.Time

	cat     *catalog.Catalog
	matcher *matcher.Matcher
	answers catalog.Answers
	step    int
	logger  *slog.Logger
}

// New starts an assessment over cat.
func New(cat *catalog.Catalog, m *matcher.Matcher) *Assessment {
	a := &Assessment{
		cat:     cat,
		matcher: m,
		logger:  logging.New("assessment"),
	}
	a.reset()
	return a
}

func (a *Assessment) reset() {
	a.ID = uuid.NewString()
	a.StartTime = time.Now()
	a.answers = make(catalog.Answers, a.cat.Total())
	a.step = 0
}

// Current returns the question to answer next, or nil once complete.
func (a *Assessment) Current() *catalog.Question {
	if a.Complete() {
		return nil
	}
	q := a.cat.QuestionAt(a.step)
	return &q
}

// Answer records code for the current question and advances.
func (a *Assessment) Answer(code catalog.Code) error {
	q := a.Current()
	if q == nil {
		return fmt.Errorf("no question left to answer")
	}
	if !q.Has(code) {
		return &matcher.AnswerError{QuestionID: q.ID, Code: code, Err: matcher.ErrIllegalCode}
	}
	a.answers[q.ID] = code
	a.step++
	a.logger.Debug("answer recorded", "assessment", a.ID, "question", q.ID, "code", code, "step", a.step)
	return nil
}

// Back steps back one question and forgets its answer. It does nothing
// on the first question.
func (a *Assessment) Back() {
	if a.step == 0 {
		return
	}
	a.step--
	delete(a.answers, a.cat.QuestionAt(a.step).ID)
}

// Restart clears every answer and starts a fresh assessment.
func (a *Assessment) Restart() {
	a.reset()
	a.logger.Debug("assessment restarted", "assessment", a.ID)
}

// Step is the zero-based index of the current question.
func (a *Assessment) Step() int { return a.step }

// Total is the number of questions.
func (a *Assessment) Total() int { return a.cat.Total() }

// Complete reports whether every question has been answered.
func (a *Assessment) Complete() bool { return a.step >= a.cat.Total() }

// Answers returns a copy of the answers recorded so far.
func (a *Assessment) Answers() catalog.Answers { return a.answers.Clone() }

// Catalog returns the catalog the questions come from.
func (a *Assessment) Catalog() *catalog.Catalog { return a.cat }

// Finish matches the completed answers.
func (a *Assessment) Finish() (matcher.Result, error) {
	if !a.Complete() {
		return matcher.Result{}, fmt.Errorf("%w: %d of %d questions answered", ErrIncomplete, a.step, a.Total())
	}

	res, err := a.matcher.Match(a.answers)
	if err != nil {
		a.logger.Error("match failed", "assessment", a.ID, "error", err)
		return matcher.Result{}, err
	}

	ids := make([]string, len(res.Winners))
	for i, s := range res.Winners {
		ids[i] = s.ID
	}
	a.logger.Info("assessment finished",
		"assessment", a.ID,
		"winners", ids,
		"score", res.Score,
		"total", res.Total,
		"tied", res.Tied,
		"duration", time.Since(a.StartTime).Round(time.Millisecond),
	)
	return res, nil
}
