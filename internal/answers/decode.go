package answers

import (
	"bytes"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/ctgdx/internal/catalog"
)

// Decode reads a JSON answer document such as {"q1":"yes","q2":"reduced"}
// from r and validates it against Schema(cat). Documents that are not
// complete, name unknown questions or use illegal codes fail with
// ErrInvalidDocument.
func Decode(cat *catalog.Catalog, r io.Reader) (catalog.Answers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrInvalidDocument, err)
	}

	sch, err := compiled(cat)
	if err != nil {
		return nil, fmt.Errorf("answer schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	// The schema guarantees an object of strings.
	obj := parsed.(map[string]any)
	out := make(catalog.Answers, len(obj))
	for k, v := range obj {
		out[catalog.QuestionID(k)] = catalog.Code(v.(string))
	}
	return out, nil
}
