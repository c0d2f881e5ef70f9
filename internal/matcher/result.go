package matcher

import "github.com/abhisek/ctgdx/internal/catalog"

// Result is the outcome of one Match call. It is built once and never
// modified afterwards; Answers is a private copy of the matched vector so
// collaborators can work out where the answers diverged from a winner.
type Result struct {
	Winners []catalog.Scenario `json:"winners"`
	Score   int                `json:"score"`
	Total   int                `json:"total"`
	Tied    bool               `json:"tied"`
	Answers catalog.Answers    `json:"answers"`
}

// Perfect reports whether the winners matched every question.
func (r Result) Perfect() bool {
	return r.Score == r.Total
}

// Winner returns the first winner. It is the only winner unless Tied.
func (r Result) Winner() catalog.Scenario {
	if len(r.Winners) == 0 {
		return catalog.Scenario{}
	}
	return r.Winners[0]
}

// Healthy reports whether the result is a single baseline-healthy outcome.
func (r Result) Healthy() bool {
	return !r.Tied && r.Winner().Healthy
}
