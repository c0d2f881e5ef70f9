// Package answers reads answer vectors from command-line pairs and JSON
// documents.
package answers

import (
	"fmt"
	"strings"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
)

// ParsePairs parses "q1=yes" style pairs into an answer vector. Whitespace
// around the identifier and the code is ignored. The result may be
// incomplete; completeness is checked when matching.
func ParsePairs(cat *catalog.Catalog, pairs []string) (catalog.Answers, error) {
	out := make(catalog.Answers, len(pairs))
	for _, pair := range pairs {
		rawID, rawCode, ok := strings.Cut(pair, "=")
		id := catalog.QuestionID(strings.TrimSpace(rawID))
		code := catalog.Code(strings.TrimSpace(rawCode))
		if !ok || id == "" || code == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPair, pair)
		}
		if _, dup := out[id]; dup {
			return nil, &matcher.AnswerError{QuestionID: id, Err: ErrDuplicateAnswer}
		}
		legal, err := cat.IsLegal(id, code)
		if err != nil {
			return nil, &matcher.AnswerError{QuestionID: id, Code: code, Err: err}
		}
		if !legal {
			return nil, &matcher.AnswerError{QuestionID: id, Code: code, Err: matcher.ErrIllegalCode}
		}
		out[id] = code
	}
	return out, nil
}
