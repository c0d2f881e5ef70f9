package catalog

import "errors"

var (
	// ErrUnknownQuestion is returned for a question identifier the catalog
	// does not define.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrUnknownScenario is returned for a scenario identifier the catalog
	// does not define.
	ErrUnknownScenario = errors.New("unknown scenario")
)
