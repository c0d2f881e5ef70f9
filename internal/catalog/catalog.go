package catalog

import (
	"fmt"
	"slices"
)

// Catalog holds the question and scenario tables with precomputed indices.
// A Catalog is immutable once built; accessors hand out copies.
type Catalog struct {
	questions  []Question
	scenarios  []Scenario
	exclusions []ExclusionRule
	byQuestion map[QuestionID]int
	byScenario map[string]int
}

// New validates the tables and builds a Catalog from them. Questions are
// ordered by position; scenarios keep their declaration order.
func New(questions []Question, scenarios []Scenario, exclusions []ExclusionRule) (*Catalog, error) {
	if err := validate(questions, scenarios, exclusions); err != nil {
		return nil, err
	}

	c := &Catalog{
		questions:  make([]Question, len(questions)),
		scenarios:  make([]Scenario, len(scenarios)),
		exclusions: make([]ExclusionRule, len(exclusions)),
		byQuestion: make(map[QuestionID]int, len(questions)),
		byScenario: make(map[string]int, len(scenarios)),
	}
	for i, q := range questions {
		c.questions[i] = q.Clone()
	}
	slices.SortStableFunc(c.questions, func(a, b Question) int {
		return a.Position - b.Position
	})
	for i, q := range c.questions {
		c.byQuestion[q.ID] = i
	}
	for i, s := range scenarios {
		c.scenarios[i] = s.Clone()
		c.byScenario[s.ID] = i
	}
	for i, r := range exclusions {
		r.Codes = slices.Clone(r.Codes)
		c.exclusions[i] = r
	}
	return c, nil
}

// Total returns the number of questions, N.
func (c *Catalog) Total() int {
	return len(c.questions)
}

// Questions returns every question in position order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.Clone()
	}
	return out
}

// Question returns the question with the given identifier.
func (c *Catalog) Question(id QuestionID) (Question, error) {
	i, ok := c.byQuestion[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	return c.questions[i].Clone(), nil
}

// QuestionAt returns the question at zero-based index i in position order.
func (c *Catalog) QuestionAt(i int) Question {
	return c.questions[i].Clone()
}

// LegalCodes returns the legal answer codes for question id.
func (c *Catalog) LegalCodes(id QuestionID) ([]Code, error) {
	i, ok := c.byQuestion[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	return c.questions[i].Codes(), nil
}

// IsLegal reports whether code is a legal answer to question id. Unknown
// questions yield ErrUnknownQuestion.
func (c *Catalog) IsLegal(id QuestionID, code Code) (bool, error) {
	i, ok := c.byQuestion[id]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	return c.questions[i].Has(code), nil
}

// Scenarios returns every scenario in declaration order.
func (c *Catalog) Scenarios() []Scenario {
	out := make([]Scenario, len(c.scenarios))
	for i, s := range c.scenarios {
		out[i] = s.Clone()
	}
	return out
}

// Scenario returns the scenario with the given identifier.
func (c *Catalog) Scenario(id string) (Scenario, error) {
	i, ok := c.byScenario[id]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}
	return c.scenarios[i].Clone(), nil
}

// Exclusions returns the hard-exclusion rules in declaration order.
func (c *Catalog) Exclusions() []ExclusionRule {
	out := make([]ExclusionRule, len(c.exclusions))
	for i, r := range c.exclusions {
		r.Codes = slices.Clone(r.Codes)
		out[i] = r
	}
	return out
}
