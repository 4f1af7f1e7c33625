package alethe

import "errors"

// Sentinel errors distinguishing why a step was rejected. Rule
// implementations wrap one of these with fmt.Errorf's %w so callers
// can tell "rejected for shape reasons" apart from "rejected because
// the semantic check failed."
var (
	// ErrMalformedStep means the clause/premises/args had the wrong
	// arity or shape for the named rule, before any semantic check ran.
	ErrMalformedStep = errors.New("rule rejected step: malformed")

	// ErrRuleFailed means the shape was fine but the rule's semantic
	// condition did not hold.
	ErrRuleFailed = errors.New("rule rejected step: refuted")

	// ErrUnknownRule means the rule registry has no entry for the
	// requested name.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrPremiseOutOfRange means a step referenced a premise index
	// that is not strictly less than its own index, or is negative.
	ErrPremiseOutOfRange = errors.New("premise index out of range")
)
