package alethe

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Config controls the proof walker's handling of the two places a
// checker's behavior is left open: whether an unknown rule name is
// fatal (strict) or skipped (lenient), and whether checking
// stops at the first failing step or continues to collect every
// failure.
type Config struct {
	// StrictUnknownRules makes an unrecognized rule name abort the
	// walk; when false, steps naming an unknown rule are skipped.
	StrictUnknownRules bool

	// CollectAllErrors makes the walker keep checking after a step
	// fails, aggregating every failure instead of stopping at the
	// first. The reported Verdict.FailedStep is always the
	// lowest-indexed failure regardless of this setting.
	CollectAllErrors bool

	// Logger receives per-step diagnostics. A nil Logger defaults to
	// hclog's discard logger.
	Logger hclog.Logger
}

// Check performs the linear pass over proof: Assume commands
// contribute no obligation; each Step's premises are
// resolved by index (bounds-checked against the step's own position,
// since references are forward-only), dispatched to its named rule,
// and the rule's verdict folded into the overall result.
func Check(pool *Pool, proof Proof, cfg Config) Verdict {
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var aggregate *multierror.Error
	var first *Verdict

	for i, cmd := range proof {
		step, ok := cmd.(*Step)
		if !ok {
			continue
		}

		premises, err := resolvePremises(proof, i, step.Premises)
		if err != nil {
			v := Verdict{FailedStep: step.ID, FailedRule: step.Rule, Reason: err.Error()}
			if first == nil {
				first = &v
			}
			aggregate = multierror.Append(aggregate, fmt.Errorf("step %s: %w", step.ID, err))
			if !cfg.CollectAllErrors {
				break
			}
			continue
		}

		rule, known := LookupRule(step.Rule)
		if !known {
			if cfg.StrictUnknownRules {
				err := fmt.Errorf("step %s: %w: %s", step.ID, ErrUnknownRule, step.Rule)
				v := Verdict{FailedStep: step.ID, FailedRule: step.Rule, Reason: err.Error()}
				if first == nil {
					first = &v
				}
				aggregate = multierror.Append(aggregate, err)
				if !cfg.CollectAllErrors {
					break
				}
			} else {
				logger.Warn("skipping step with unknown rule", "id", step.ID, "rule", step.Rule)
			}
			continue
		}

		if err := rule(pool, step.Clause, premises, step.Args); err != nil {
			logger.Warn("step rejected", "id", step.ID, "rule", step.Rule, "error", err)
			v := Verdict{FailedStep: step.ID, FailedRule: step.Rule, Reason: err.Error()}
			if first == nil {
				first = &v
			}
			aggregate = multierror.Append(aggregate, fmt.Errorf("step %s: %w", step.ID, err))
			if !cfg.CollectAllErrors {
				break
			}
			continue
		}
		logger.Debug("step accepted", "id", step.ID, "rule", step.Rule)
	}

	if first == nil {
		return Verdict{Valid: true}
	}
	result := *first
	result.Errors = aggregate
	return result
}

func resolvePremises(proof Proof, stepIndex int, refs []int) ([]ProofCommand, error) {
	out := make([]ProofCommand, len(refs))
	for i, idx := range refs {
		if idx < 0 || idx >= stepIndex {
			return nil, fmt.Errorf("%w: %d", ErrPremiseOutOfRange, idx)
		}
		out[i] = proof[idx]
	}
	return out, nil
}
