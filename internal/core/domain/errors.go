package domain

import "errors"

// Domain errors represent conversion and storage failures.
// Host errors from the tree or the stores are wrapped, never replaced.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDetached indicates a node is not attached to a parent.
	ErrDetached = errors.New("node detached")

	// ErrUnsupportedType indicates an unknown node kind or backend.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrRuleConflict indicates a rule set where two rules claim export
	// ownership of one node kind, or two text-match rules share a trigger.
	ErrRuleConflict = errors.New("rule conflict")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
