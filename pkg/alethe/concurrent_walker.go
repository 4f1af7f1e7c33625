package alethe

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/gitrdm/alethecheck/internal/parallel"
)

// CheckConcurrent verifies every Step in proof across a bounded
// worker pool instead of walking sequentially. This is sound because
// premise validity does not gate rule application — a rule only
// dereferences its premises' already-built clauses, never re-verifies
// them — so steps have no runtime dependency on one another and can
// be dispatched in any order or concurrently. Rules may intern new
// terms into pool, which has no internal locking, so each step's
// verification holds a shared mutex for its duration.
//
// jobs controls the worker pool size (see internal/parallel); a
// non-positive value defaults to runtime.NumCPU(). The returned Verdict's
// FailedStep is always the lowest-indexed failing step, for the same
// deterministic "first offending step" semantics the sequential
// walker (Check) provides — dispatch order is concurrent, but the
// reported failure is not.
func CheckConcurrent(ctx context.Context, pool *Pool, proof Proof, jobs int, cfg Config) Verdict {
	pw := parallel.NewStaticWorkerPool(jobs)
	defer pw.Shutdown()

	type outcome struct {
		index int
		err   error
	}

	results := make([]outcome, len(proof))
	var wg sync.WaitGroup
	var poolMu sync.Mutex

	for i, cmd := range proof {
		step, ok := cmd.(*Step)
		if !ok {
			continue
		}
		i, step := i, step
		wg.Add(1)
		submitErr := pw.Submit(ctx, func() {
			defer wg.Done()
			poolMu.Lock()
			err := verifyStep(pool, proof, i, step, cfg)
			poolMu.Unlock()
			results[i] = outcome{index: i, err: err}
		})
		if submitErr != nil {
			wg.Done()
			results[i] = outcome{index: i, err: fmt.Errorf("step %s: %w", step.ID, submitErr)}
		}
	}
	wg.Wait()

	var aggregate *multierror.Error
	var first *outcome
	for i := range results {
		o := results[i]
		if o.err == nil {
			continue
		}
		if first == nil || o.index < first.index {
			firstCopy := o
			first = &firstCopy
		}
		aggregate = multierror.Append(aggregate, o.err)
	}

	if first == nil {
		return Verdict{Valid: true}
	}
	step := proof[first.index].(*Step)
	return Verdict{
		FailedStep: step.ID,
		FailedRule: step.Rule,
		Reason:     first.err.Error(),
		Errors:     aggregate,
	}
}

func verifyStep(pool *Pool, proof Proof, index int, step *Step, cfg Config) error {
	premises, err := resolvePremises(proof, index, step.Premises)
	if err != nil {
		return fmt.Errorf("step %s: %w", step.ID, err)
	}

	rule, known := LookupRule(step.Rule)
	if !known {
		if cfg.StrictUnknownRules {
			return fmt.Errorf("step %s: %w: %s", step.ID, ErrUnknownRule, step.Rule)
		}
		return nil
	}

	if err := rule(pool, step.Clause, premises, step.Args); err != nil {
		return fmt.Errorf("step %s: %w", step.ID, err)
	}
	return nil
}
