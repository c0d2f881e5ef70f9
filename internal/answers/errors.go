package answers

import "errors"

var (
	// ErrMalformedPair is returned for a pair not of the form "q1=code".
	ErrMalformedPair = errors.New("malformed answer pair")

	// ErrDuplicateAnswer is returned when a question is answered twice.
	ErrDuplicateAnswer = errors.New("question answered more than once")

	// ErrInvalidDocument is returned when an answer document does not
	// satisfy the answer schema.
	ErrInvalidDocument = errors.New("invalid answer document")
)
