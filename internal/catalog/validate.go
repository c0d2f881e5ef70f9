package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	minOptions = 2
	maxOptions = 5
)

// validate performs all integrity checks on the given tables.
// Returns a combined error describing all problems found, or nil if valid.
func validate(questions []Question, scenarios []Scenario, exclusions []ExclusionRule) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "no questions defined")
	}
	if len(scenarios) == 0 {
		errs = append(errs, "no scenarios defined")
	}

	// Questions: unique IDs, positions 1..N, option sets.
	byID := make(map[QuestionID]Question, len(questions))
	positions := make(map[int]QuestionID, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question at position %d has an empty ID", q.Position))
			continue
		}
		if _, dup := byID[q.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		byID[q.ID] = q

		if q.Position < 1 || q.Position > len(questions) {
			errs = append(errs, fmt.Sprintf("question %q position %d outside 1..%d", q.ID, q.Position, len(questions)))
		} else if other, taken := positions[q.Position]; taken {
			errs = append(errs, fmt.Sprintf("questions %q and %q share position %d", other, q.ID, q.Position))
		} else {
			positions[q.Position] = q.ID
		}

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("question %q has an empty prompt", q.ID))
		}
		if n := len(q.Options); n < minOptions || n > maxOptions {
			errs = append(errs, fmt.Sprintf("question %q must offer %d-%d answers, got %d", q.ID, minOptions, maxOptions, n))
		}
		seen := make(map[Code]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Code == "" {
				errs = append(errs, fmt.Sprintf("question %q has an empty answer code", q.ID))
				continue
			}
			if seen[o.Code] {
				errs = append(errs, fmt.Sprintf("question %q repeats answer code %q", q.ID, o.Code))
			}
			seen[o.Code] = true
		}
	}

	// Scenarios: unique IDs, display fields, accepted codes must be legal.
	scenarioIDs := make(map[string]bool, len(scenarios))
	for i, s := range scenarios {
		name := s.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
			errs = append(errs, fmt.Sprintf("scenario %s has an empty ID", name))
		} else if scenarioIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate scenario ID: %q", s.ID))
		}
		scenarioIDs[s.ID] = true

		if strings.TrimSpace(s.Diagnosis) == "" {
			errs = append(errs, fmt.Sprintf("scenario %q has an empty diagnosis", name))
		}
		if len(s.Management) == 0 {
			errs = append(errs, fmt.Sprintf("scenario %q has no management actions", name))
		}
		if len(s.Accepted) == 0 {
			errs = append(errs, fmt.Sprintf("scenario %q declares no accepted answers", name))
		}
		for _, qid := range sortedQuestionIDs(s.Accepted) {
			codes := s.Accepted[qid]
			q, ok := byID[qid]
			if !ok {
				errs = append(errs, fmt.Sprintf("scenario %q references nonexistent question %q", name, qid))
				continue
			}
			if len(codes) == 0 {
				errs = append(errs, fmt.Sprintf("scenario %q has an empty accepted set for %q", name, qid))
			}
			for _, code := range codes {
				if !q.Has(code) {
					errs = append(errs, fmt.Sprintf("scenario %q accepts illegal code %q for %q", name, code, qid))
				}
			}
		}
	}

	// Exclusion rules must point at real scenarios, questions and codes.
	for i, r := range exclusions {
		prefix := fmt.Sprintf("exclusion #%d", i+1)
		if !scenarioIDs[r.Scenario] {
			errs = append(errs, fmt.Sprintf("%s references nonexistent scenario %q", prefix, r.Scenario))
		}
		q, ok := byID[r.Question]
		if !ok {
			errs = append(errs, fmt.Sprintf("%s references nonexistent question %q", prefix, r.Question))
			continue
		}
		if len(r.Codes) == 0 {
			errs = append(errs, fmt.Sprintf("%s excludes no codes", prefix))
		}
		for _, code := range r.Codes {
			if !q.Has(code) {
				errs = append(errs, fmt.Sprintf("%s names illegal code %q for %q", prefix, code, r.Question))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// sortedQuestionIDs returns the keys of accepted in lexical order so
// validation messages are stable.
func sortedQuestionIDs(accepted map[QuestionID][]Code) []QuestionID {
	return slices.Sorted(maps.Keys(accepted))
}
