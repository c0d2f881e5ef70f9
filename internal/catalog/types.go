package catalog

import (
	"maps"
	"slices"
)

// QuestionID identifies a question, e.g. "q1".
type QuestionID string

// Code is a legal answer code for a question, e.g. "reduced".
type Code string

// Option is one legal answer to a question.
type Option struct {
	Code  Code   `yaml:"code" json:"code"`
	Label string `yaml:"label" json:"label"`
}

// Question is a fixed categorical observation about the trace.
type Question struct {
	ID       QuestionID `yaml:"id" json:"id"`
	Position int        `yaml:"position" json:"position"`
	Prompt   string     `yaml:"prompt" json:"prompt"`
	Label    string     `yaml:"label" json:"label"`
	Organ    string     `yaml:"organ" json:"organ"`
	Color    string     `yaml:"color" json:"color,omitempty"`
	Options  []Option   `yaml:"options" json:"options"`
}

// Codes returns the legal answer codes in display order.
func (q Question) Codes() []Code {
	codes := make([]Code, len(q.Options))
	for i, o := range q.Options {
		codes[i] = o.Code
	}
	return codes
}

// Has reports whether code is a legal answer to q.
func (q Question) Has(code Code) bool {
	for _, o := range q.Options {
		if o.Code == code {
			return true
		}
	}
	return false
}

// OptionLabel returns the display label for code, or the code itself
// when q does not offer it.
func (q Question) OptionLabel(code Code) string {
	for _, o := range q.Options {
		if o.Code == code {
			return o.Label
		}
	}
	return string(code)
}

// Clone returns a deep copy of q.
func (q Question) Clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// Scenario is a named diagnosis together with the answers that support it.
type Scenario struct {
	ID         string                `yaml:"id" json:"id"`
	Diagnosis  string                `yaml:"diagnosis" json:"diagnosis"`
	Detail     string                `yaml:"detail" json:"detail,omitempty"`
	Context    string                `yaml:"context" json:"context,omitempty"`
	Management []string              `yaml:"management" json:"management"`
	Healthy    bool                  `yaml:"healthy" json:"healthy,omitempty"`
	Color      string                `yaml:"color" json:"color,omitempty"`
	Icon       string                `yaml:"icon" json:"icon,omitempty"`
	Accepted   map[QuestionID][]Code `yaml:"accepted" json:"accepted"`
}

// Title joins the diagnosis and its optional detail.
func (s Scenario) Title() string {
	if s.Detail == "" {
		return s.Diagnosis
	}
	return s.Diagnosis + " " + s.Detail
}

// Declares reports whether s has accepted codes for question id.
func (s Scenario) Declares(id QuestionID) bool {
	_, ok := s.Accepted[id]
	return ok
}

// Accepts reports whether code is in s's accepted set for question id.
// Undeclared questions accept nothing.
func (s Scenario) Accepts(id QuestionID, code Code) bool {
	return slices.Contains(s.Accepted[id], code)
}

// Clone returns a deep copy of s.
func (s Scenario) Clone() Scenario {
	s.Management = slices.Clone(s.Management)
	accepted := make(map[QuestionID][]Code, len(s.Accepted))
	for id, codes := range s.Accepted {
		accepted[id] = slices.Clone(codes)
	}
	s.Accepted = accepted
	return s
}

// ExclusionRule makes Scenario ineligible whenever the answer to Question
// is one of Codes.
type ExclusionRule struct {
	Scenario string     `yaml:"scenario" json:"scenario"`
	Question QuestionID `yaml:"question" json:"question"`
	Codes    []Code     `yaml:"codes" json:"codes"`
}

// Excludes reports whether answer triggers the rule.
func (r ExclusionRule) Excludes(answer Code) bool {
	return slices.Contains(r.Codes, answer)
}

// Answers maps each question to the single code chosen for it.
type Answers map[QuestionID]Code

// Clone returns an independent copy of a.
func (a Answers) Clone() Answers {
	return maps.Clone(a)
}
