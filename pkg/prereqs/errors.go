package prereqs

import "errors"

var (
	// ErrInvalidPhase is returned when a phase is neither in the fixed list
	// nor x_/X_ prefixed.
	ErrInvalidPhase = errors.New("prereqs: invalid phase")

	// ErrInvalidRelation is returned when a relationship type is neither in
	// the fixed list nor x_/X_ prefixed.
	ErrInvalidRelation = errors.New("prereqs: invalid relation type")

	// ErrFinalized is returned on any mutation attempt after Finalize.
	ErrFinalized = errors.New("prereqs: prerequisites are finalized")

	// ErrInvalidVersionRequirement is returned when a dependency's version
	// range cannot be parsed.
	ErrInvalidVersionRequirement = errors.New("prereqs: invalid version requirement")
)
