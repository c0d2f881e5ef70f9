package matcher

import (
	"errors"
	"fmt"

	"github.com/abhisek/ctgdx/internal/catalog"
)

var (
	// ErrIncompleteAnswerVector is returned when Match is called before
	// every question has been answered. Callers recover by re-prompting.
	ErrIncompleteAnswerVector = errors.New("incomplete answer vector")

	// ErrIllegalCode is returned when an answer is not one of the legal
	// codes for its question.
	ErrIllegalCode = errors.New("illegal answer code")

	// ErrNoEligibleScenario means the exclusion rules ruled out every
	// scenario. This is a catalog defect and must not be shown as a
	// diagnosis.
	ErrNoEligibleScenario = errors.New("no eligible scenario")
)

// AnswerError reports a problem with the answer to one question.
type AnswerError struct {
	QuestionID catalog.QuestionID
	Code       catalog.Code
	Err        error
}

func (e *AnswerError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %v", e.QuestionID, e.Err)
	}
	return fmt.Sprintf("%s=%q: %v", e.QuestionID, e.Code, e.Err)
}

func (e *AnswerError) Unwrap() error { return e.Err }
