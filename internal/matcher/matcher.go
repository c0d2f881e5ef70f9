// Package matcher turns a completed answer vector into the most plausible
// diagnoses.
//
// Match is a pure function of the catalog, the eligibility filter and the
// answers. It never mutates its inputs, performs no I/O and returns the
// same winners in the same order for the same answers, so a Matcher can be
// shared freely between goroutines.
package matcher

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/eligibility"
)

// Matcher scores scenarios against answer vectors.
type Matcher struct {
	cat       *catalog.Catalog
	filter    *eligibility.Filter
	questions []catalog.Question
	scenarios []catalog.Scenario
}

// New creates a Matcher over cat. A nil filter treats every scenario as
// eligible.
func New(cat *catalog.Catalog, filter *eligibility.Filter) *Matcher {
	return &Matcher{
		cat:       cat,
		filter:    filter,
		questions: cat.Questions(),
		scenarios: cat.Scenarios(),
	}
}

// ForCatalog creates a Matcher using the exclusion rules declared in cat.
func ForCatalog(cat *catalog.Catalog) *Matcher {
	return New(cat, eligibility.ForCatalog(cat))
}

// Catalog returns the catalog the matcher was built from.
func (m *Matcher) Catalog() *catalog.Catalog {
	return m.cat
}

// Validate checks that answers holds exactly one legal code for every
// question and nothing else. Problems are reported in question order.
func (m *Matcher) Validate(answers catalog.Answers) error {
	for _, q := range m.questions {
		code, ok := answers[q.ID]
		if !ok {
			return &AnswerError{QuestionID: q.ID, Err: ErrIncompleteAnswerVector}
		}
		if !q.Has(code) {
			return &AnswerError{QuestionID: q.ID, Code: code, Err: ErrIllegalCode}
		}
	}
	if len(answers) != len(m.questions) {
		for _, id := range slices.Sorted(maps.Keys(answers)) {
			if _, err := m.cat.Question(id); err != nil {
				return &AnswerError{QuestionID: id, Code: answers[id], Err: err}
			}
		}
	}
	return nil
}

// Score counts the questions s declares whose answer is in s's accepted
// set. Undeclared questions neither add nor subtract. The count is not
// normalised: a scenario declaring k questions scores at most k.
func (m *Matcher) Score(s catalog.Scenario, answers catalog.Answers) int {
	score := 0
	for id, accepted := range s.Accepted {
		code, ok := answers[id]
		if ok && slices.Contains(accepted, code) {
			score++
		}
	}
	return score
}

// Match returns every eligible scenario achieving the best score, in
// catalog order.
func (m *Matcher) Match(answers catalog.Answers) (Result, error) {
	if err := m.Validate(answers); err != nil {
		return Result{}, err
	}

	ranked := m.rank(answers)
	if len(ranked) == 0 {
		return Result{}, fmt.Errorf("%w: all %d scenarios were excluded", ErrNoEligibleScenario, len(m.scenarios))
	}

	best := ranked[0].Score
	for _, r := range ranked[1:] {
		if r.Score > best {
			best = r.Score
		}
	}

	var winners []catalog.Scenario
	for _, r := range ranked {
		if r.Score == best {
			winners = append(winners, r.Scenario.Clone())
		}
	}

	return Result{
		Winners: winners,
		Score:   best,
		Total:   len(m.questions),
		Tied:    len(winners) > 1,
		Answers: answers.Clone(),
	}, nil
}

// Ranked is an eligible scenario with its score.
type Ranked struct {
	Scenario catalog.Scenario
	Score    int
}

// Rank scores every eligible scenario and orders them by score, highest
// first, keeping catalog order among equal scores.
func (m *Matcher) Rank(answers catalog.Answers) ([]Ranked, error) {
	if err := m.Validate(answers); err != nil {
		return nil, err
	}
	ranked := m.rank(answers)
	for i := range ranked {
		ranked[i].Scenario = ranked[i].Scenario.Clone()
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

// rank scores eligible scenarios in catalog order.
func (m *Matcher) rank(answers catalog.Answers) []Ranked {
	ranked := make([]Ranked, 0, len(m.scenarios))
	for _, s := range m.scenarios {
		if !m.filter.IsEligible(s, answers) {
			continue
		}
		ranked = append(ranked, Ranked{Scenario: s, Score: m.Score(s, answers)})
	}
	return ranked
}
