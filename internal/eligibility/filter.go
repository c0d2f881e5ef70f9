// Package eligibility holds the hard exclusion rules that take a scenario
// out of consideration regardless of how well it scores.
package eligibility

import "github.com/abhisek/ctgdx/internal/catalog"

// Exclusion reports whether the answers rule a scenario out. It must be a
// pure function of answers.
type Exclusion func(answers catalog.Answers) bool

// Filter maps scenario identifiers to their exclusions. A scenario without
// exclusions is always eligible. A Filter is immutable once built.
type Filter struct {
	exclusions map[string][]Exclusion
}

// New creates a Filter from a scenario-ID to exclusions mapping.
func New(exclusions map[string][]Exclusion) *Filter {
	f := &Filter{exclusions: make(map[string][]Exclusion, len(exclusions))}
	for id, list := range exclusions {
		f.exclusions[id] = append([]Exclusion(nil), list...)
	}
	return f
}

// FromRules builds a Filter from declarative exclusion rules.
func FromRules(rules []catalog.ExclusionRule) *Filter {
	m := make(map[string][]Exclusion)
	for _, r := range rules {
		m[r.Scenario] = append(m[r.Scenario], AnswerIn(r.Question, r.Codes...))
	}
	return New(m)
}

// ForCatalog builds a Filter from the catalog's exclusion rules.
func ForCatalog(c *catalog.Catalog) *Filter {
	return FromRules(c.Exclusions())
}

// AnswerIn returns an Exclusion that fires when the answer to question is
// one of codes. An unanswered question never fires.
func AnswerIn(question catalog.QuestionID, codes ...catalog.Code) Exclusion {
	set := make(map[catalog.Code]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return func(answers catalog.Answers) bool {
		code, ok := answers[question]
		if !ok {
			return false
		}
		_, hit := set[code]
		return hit
	}
}

// IsEligible reports whether scenario s may win given answers.
func (f *Filter) IsEligible(s catalog.Scenario, answers catalog.Answers) bool {
	if f == nil {
		return true
	}
	for _, excluded := range f.exclusions[s.ID] {
		if excluded(answers) {
			return false
		}
	}
	return true
}

// Guarded reports whether any exclusion is registered for scenario id.
func (f *Filter) Guarded(id string) bool {
	return f != nil && len(f.exclusions[id]) > 0
}
