package answers

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
)

func TestSchema_Shape(t *testing.T) {
	cat := catalog.Default()
	s := Schema(cat)

	assert.Equal(t, draft, s["$schema"])
	assert.Equal(t, false, s["additionalProperties"])
	assert.Equal(t, []any{"q1", "q2", "q3", "q4", "q5"}, s["required"])

	props := s["properties"].(map[string]any)
	require.Len(t, props, 5)
	q2 := props["q2"].(map[string]any)
	want := []any{"yes", "reduced", "zigzag", "typical sinusoidal", "atypical sinusoidal"}
	if diff := cmp.Diff(want, q2["enum"]); diff != "" {
		t.Errorf("q2 enum mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaJSON_IsValidJSON(t *testing.T) {
	raw, err := SchemaJSON(catalog.Default())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "object", doc["type"])
}

func TestDecode_Valid(t *testing.T) {
	cat := catalog.Default()
	doc := `{"q1":"lower","q2":"typical sinusoidal","q3":"yes","q4":"no","q5":"no"}`

	got, err := Decode(cat, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, catalog.Code("typical sinusoidal"), got["q2"])

	// A decoded document is always matchable.
	res, err := matcher.ForCatalog(cat).Match(got)
	require.NoError(t, err)
	assert.Equal(t, "chronic-anemia-late", res.Winner().ID)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ``},
		{"not json", `q1=yes`},
		{"array", `["yes"]`},
		{"missing question", `{"q1":"yes","q2":"yes","q3":"yes","q4":"yes"}`},
		{"illegal code", `{"q1":"no","q2":"yes","q3":"yes","q4":"yes","q5":"no"}`},
		{"unknown question", `{"q1":"yes","q2":"yes","q3":"yes","q4":"yes","q5":"no","q6":"yes"}`},
		{"non-string code", `{"q1":1,"q2":"yes","q3":"yes","q4":"yes","q5":"no"}`},
	}

	cat := catalog.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(cat, strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("Decode(%q) error = %v, want ErrInvalidDocument", tt.doc, err)
			}
		})
	}
}

func TestDecode_CustomCatalog(t *testing.T) {
	qs := []catalog.Question{
		{ID: "a", Position: 1, Prompt: "A?", Options: []catalog.Option{{Code: "x"}, {Code: "y"}}},
	}
	ss := []catalog.Scenario{
		{ID: "s", Diagnosis: "S", Management: []string{"m"}, Accepted: map[catalog.QuestionID][]catalog.Code{"a": {"x"}}},
	}
	cat, err := catalog.New(qs, ss, nil)
	require.NoError(t, err)

	got, err := Decode(cat, strings.NewReader(`{"a":"y"}`))
	require.NoError(t, err)
	assert.Equal(t, catalog.Answers{"a": "y"}, got)

	// The default catalog's schema is not reused for another catalog.
	_, err = Decode(cat, strings.NewReader(`{"q1":"yes"}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}
