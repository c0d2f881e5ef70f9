package report

import (
	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
)

// Row is one line of the answer summary.
type Row struct {
	QuestionID catalog.QuestionID
	Prompt     string
	Label      string
	Code       catalog.Code
	Answer     string // display label of Code
	Checked    bool   // a scenario was given and declares this question
	Matched    bool
}

// Summary returns one row per question in position order. When s is nil,
// as for tied results, rows are not checked against any scenario.
func Summary(cat *catalog.Catalog, r matcher.Result, s *catalog.Scenario) []Row {
	qs := cat.Questions()
	rows := make([]Row, 0, len(qs))
	for _, q := range qs {
		code := r.Answers[q.ID]
		row := Row{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Label:      q.Label,
			Code:       code,
			Answer:     q.OptionLabel(code),
		}
		if s != nil && s.Declares(q.ID) {
			row.Checked = true
			row.Matched = s.Accepts(q.ID, code)
		}
		rows = append(rows, row)
	}
	return rows
}
