package report

import (
	"encoding/json"
	"io"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
)

// Document is the machine-readable form of a match result.
type Document struct {
	Winners []Winner        `json:"winners"`
	Score   int             `json:"score"`
	Total   int             `json:"total"`
	Tied    bool            `json:"tied"`
	Perfect bool            `json:"perfect"`
	Answers catalog.Answers `json:"answers"`
}

// Winner is one winning scenario with the answers that diverged from it.
type Winner struct {
	ID          string       `json:"id"`
	Diagnosis   string       `json:"diagnosis"`
	Detail      string       `json:"detail,omitempty"`
	Context     string       `json:"context,omitempty"`
	Management  []string     `json:"management"`
	Healthy     bool         `json:"healthy"`
	Divergences []Divergence `json:"divergences"`
}

// NewDocument builds the document for r.
func NewDocument(cat *catalog.Catalog, r matcher.Result) Document {
	doc := Document{
		Winners: make([]Winner, 0, len(r.Winners)),
		Score:   r.Score,
		Total:   r.Total,
		Tied:    r.Tied,
		Perfect: r.Perfect(),
		Answers: r.Answers.Clone(),
	}
	for _, s := range r.Winners {
		divs := Divergences(cat, r, s)
		if divs == nil {
			divs = []Divergence{}
		}
		doc.Winners = append(doc.Winners, Winner{
			ID:          s.ID,
			Diagnosis:   s.Diagnosis,
			Detail:      s.Detail,
			Context:     s.Context,
			Management:  s.Management,
			Healthy:     s.Healthy,
			Divergences: divs,
		})
	}
	return doc
}

// WriteJSON writes r to w as indented JSON. Map keys are sorted by
// encoding/json, so output is stable for a given result.
func WriteJSON(w io.Writer, cat *catalog.Catalog, r matcher.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(cat, r))
}
