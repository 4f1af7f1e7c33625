package alethe

// Contraction implements the contraction rule: one
// premise (a Step), whose clause collapses to the conclusion once
// every literal but its first occurrence is dropped, order preserved.
// Arbitrary reordering is not accepted — only first-occurrence
// deduplication.
func Contraction(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(premises) != 1 {
		return malformed("contraction", "expected exactly one premise")
	}
	premiseStep, ok := premises[0].(*Step)
	if !ok {
		return malformed("contraction", "premise must be a step")
	}

	var deduped Clause
	for _, lit := range premiseStep.Clause {
		dup := false
		for _, seen := range deduped {
			if seen.Equal(lit) {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, lit)
		}
	}

	if len(deduped) != len(conclusion) {
		return refuted("contraction", "conclusion length does not match the deduplicated premise")
	}
	for i := range deduped {
		if !deduped[i].Equal(conclusion[i]) {
			return refuted("contraction", "conclusion does not match the deduplicated premise in order")
		}
	}
	return nil
}
