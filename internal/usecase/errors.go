package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrInconsistentData marks joined rows that contradict each other,
	// e.g. a model output naming a player that does not exist.
	ErrInconsistentData = errors.New("inconsistent data")
)
