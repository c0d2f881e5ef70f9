// Package report renders match results for people and for programs.
package report

import (
	"slices"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
)

// Divergence is a question whose answer falls outside a scenario's
// accepted set.
type Divergence struct {
	QuestionID catalog.QuestionID `json:"question"`
	Label      string             `json:"label"`
	Given      catalog.Code       `json:"given"`
	Accepted   []catalog.Code     `json:"accepted"`
}

// Divergences lists, in question order, every question s declares whose
// answer in r is not accepted by s. A perfect match has none.
func Divergences(cat *catalog.Catalog, r matcher.Result, s catalog.Scenario) []Divergence {
	var out []Divergence
	for _, q := range cat.Questions() {
		accepted, ok := s.Accepted[q.ID]
		if !ok {
			continue
		}
		given := r.Answers[q.ID]
		if s.Accepts(q.ID, given) {
			continue
		}
		out = append(out, Divergence{
			QuestionID: q.ID,
			Label:      q.Label,
			Given:      given,
			Accepted:   slices.Clone(accepted),
		})
	}
	return out
}
