package alethe

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Verdict is the overall outcome of checking a Proof: Valid iff every
// step succeeded. A proof is either entirely valid or not — there is
// no partial success. On failure, FailedStep/FailedRule/Reason
// identify the first (lowest-indexed) offending step; Errors
// additionally carries every failure observed when the walker ran in
// lenient or concurrent mode.
type Verdict struct {
	Valid      bool
	FailedStep string
	FailedRule string
	Reason     string
	Errors     *multierror.Error
}

// String renders the verdict the way the CLI's stdout contract
// expects ("true" or "false"), with detail appended for diagnostics.
func (v Verdict) String() string {
	if v.Valid {
		return "true"
	}
	if v.FailedStep == "" {
		return "false"
	}
	return fmt.Sprintf("false (step %s, rule %s: %s)", v.FailedStep, v.FailedRule, v.Reason)
}
