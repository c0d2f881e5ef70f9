package eligibility

import (
	"testing"

	"github.com/abhisek/ctgdx/internal/catalog"
)

func answers(q2 catalog.Code) catalog.Answers {
	return catalog.Answers{"q1": "yes", "q2": q2, "q3": "yes", "q4": "yes", "q5": "no"}
}

func TestForCatalog_HealthyBaselineExclusion(t *testing.T) {
	c := catalog.Default()
	f := ForCatalog(c)

	tests := []struct {
		q2   catalog.Code
		want bool
	}{
		{"yes", true},
		{"reduced", false},
		{"zigzag", false},
		{"typical sinusoidal", false},
		{"atypical sinusoidal", false},
	}

	for _, id := range []string{"fit-for-labour", "fit-for-labour-glottic"} {
		s, err := c.Scenario(id)
		if err != nil {
			t.Fatalf("Scenario(%q): %v", id, err)
		}
		for _, tt := range tests {
			if got := f.IsEligible(s, answers(tt.q2)); got != tt.want {
				t.Errorf("%s with q2=%q: eligible = %v, want %v", id, tt.q2, got, tt.want)
			}
		}
	}
}

func TestForCatalog_UnguardedAlwaysEligible(t *testing.T) {
	c := catalog.Default()
	f := ForCatalog(c)
	for _, s := range c.Scenarios() {
		if s.Healthy {
			continue
		}
		if f.Guarded(s.ID) {
			t.Errorf("scenario %q unexpectedly has exclusions", s.ID)
		}
		for _, q2 := range []catalog.Code{"yes", "reduced", "zigzag"} {
			if !f.IsEligible(s, answers(q2)) {
				t.Errorf("scenario %q should always be eligible (q2=%q)", s.ID, q2)
			}
		}
	}
}

func TestNew_ComposesExclusions(t *testing.T) {
	f := New(map[string][]Exclusion{
		"x": {
			AnswerIn("q1", "lower"),
			AnswerIn("q3", "no"),
		},
	})
	s := catalog.Scenario{ID: "x"}

	if !f.IsEligible(s, catalog.Answers{"q1": "yes", "q3": "yes"}) {
		t.Error("no exclusion fired, expected eligible")
	}
	if f.IsEligible(s, catalog.Answers{"q1": "lower", "q3": "yes"}) {
		t.Error("first exclusion fired, expected ineligible")
	}
	if f.IsEligible(s, catalog.Answers{"q1": "yes", "q3": "no"}) {
		t.Error("second exclusion fired, expected ineligible")
	}
}

func TestAnswerIn_Unanswered(t *testing.T) {
	ex := AnswerIn("q2", "reduced")
	if ex(catalog.Answers{"q1": "yes"}) {
		t.Error("exclusion fired for an unanswered question")
	}
}

func TestNilFilter(t *testing.T) {
	var f *Filter
	if !f.IsEligible(catalog.Scenario{ID: "any"}, nil) {
		t.Error("nil filter should treat everything as eligible")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	m := map[string][]Exclusion{"x": {AnswerIn("q1", "no")}}
	f := New(m)
	m["x"] = append(m["x"], func(catalog.Answers) bool { return true })
	delete(m, "x")

	if !f.IsEligible(catalog.Scenario{ID: "x"}, catalog.Answers{"q1": "yes"}) {
		t.Error("filter changed after the source map was mutated")
	}
}
