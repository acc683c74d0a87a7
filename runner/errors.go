package runner

import "errors"

// Sentinel errors for the runner package.
var (
	// ErrMaxFailures is returned when the max failure limit is reached.
	ErrMaxFailures = errors.New("runner: max failures reached")

	// ErrTranslatorPanic wraps a panic recovered while translating a scenario.
	ErrTranslatorPanic = errors.New("runner: translator panicked")
)
