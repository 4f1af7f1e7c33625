package alethe

// EqReflexive implements eq_reflexive: the clause is
// [(= a b)], accepted iff a and b are structurally equal.
func EqReflexive(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 1 {
		return malformed("eq_reflexive", "expected a unit clause")
	}
	a, b, ok := IsEq(conclusion[0])
	if !ok {
		return malformed("eq_reflexive", "conclusion literal is not an equality")
	}
	if !a.Equal(b) {
		return refuted("eq_reflexive", "sides are not structurally equal")
	}
	return nil
}

// EqTransitive implements eq_transitive: the last
// literal is the equality to prove, each earlier literal is a negated
// equality, and together they chain from the conclusion's left side to
// its right side. The chain is trivially valid as soon as the current
// term reaches the right side, even with unconsumed pairs left over —
// not every negated-equality literal needs to contribute a hop.
func EqTransitive(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) < 3 {
		return malformed("eq_transitive", "expected at least 3 literals")
	}
	last := conclusion[len(conclusion)-1]
	t, u, ok := IsEq(last)
	if !ok {
		return malformed("eq_transitive", "final literal is not an equality")
	}

	type pair struct{ l, r Handle }
	var pairs []pair
	for _, lit := range conclusion[:len(conclusion)-1] {
		inner, ok := MatchUnary(Not, lit)
		if !ok {
			return malformed("eq_transitive", "non-final literal is not a negation")
		}
		l, r, ok := IsEq(inner)
		if !ok {
			return malformed("eq_transitive", "non-final literal is not a negated equality")
		}
		pairs = append(pairs, pair{l, r})
	}

	cur := t
	for {
		if cur.Equal(u) {
			return nil
		}
		found := -1
		var next Handle
		for i, p := range pairs {
			if cur.Equal(p.l) {
				next = p.r
				found = i
				break
			}
			if cur.Equal(p.r) {
				next = p.l
				found = i
				break
			}
		}
		if found < 0 {
			return refuted("eq_transitive", "no chain link continues from the current term")
		}
		cur = next
		pairs = append(pairs[:found], pairs[found+1:]...)
	}
}

// eqCongruentImpl backs both eq_congruent and its eq_congruent_pred
// alias: all but the last literal are negated equalities pairing the
// two applications' arguments positionally; the last literal equates
// two applications sharing a structurally identical functor.
func eqCongruentImpl(name string) Rule {
	return func(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
		if len(conclusion) < 2 {
			return malformed(name, "expected at least 2 literals")
		}
		n := len(conclusion) - 1
		last := conclusion[n]
		lhs, rhs, ok := IsEq(last)
		if !ok {
			return malformed(name, "final literal is not an equality")
		}
		lApp, ok1 := splitApp(lhs)
		rApp, ok2 := splitApp(rhs)
		if !ok1 || !ok2 {
			return malformed(name, "final literal does not equate two applications")
		}
		if !lApp.sameFunctorAs(rApp) {
			return refuted(name, "applications do not share a functor")
		}
		if len(lApp.args) != n || len(rApp.args) != n {
			return malformed(name, "argument count does not match premise count")
		}
		for i := 0; i < n; i++ {
			inner, ok := MatchUnary(Not, conclusion[i])
			if !ok {
				return malformed(name, "non-final literal is not a negation")
			}
			a, b, ok := IsEq(inner)
			if !ok {
				return malformed(name, "non-final literal is not a negated equality")
			}
			if (a.Equal(lApp.args[i]) && b.Equal(rApp.args[i])) ||
				(a.Equal(rApp.args[i]) && b.Equal(lApp.args[i])) {
				continue
			}
			return refuted(name, "argument pair does not match the corresponding functor positions")
		}
		return nil
	}
}

// EqCongruent is eq_congruent.
var EqCongruent = eqCongruentImpl("eq_congruent")

// EqCongruentPred is the eq_congruent_pred alias for EqCongruent.
var EqCongruentPred = eqCongruentImpl("eq_congruent_pred")

// NotNot implements not_not: clause
// [(not (not (not p))), q], accepted iff p equals q.
func NotNot(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 2 {
		return malformed("not_not", "expected 2 literals")
	}
	n1, ok := MatchUnary(Not, conclusion[0])
	if !ok {
		return malformed("not_not", "first literal is not a negation")
	}
	n2, ok := MatchUnary(Not, n1)
	if !ok {
		return malformed("not_not", "first literal is not doubly negated")
	}
	p, ok := MatchUnary(Not, n2)
	if !ok {
		return malformed("not_not", "first literal is not triply negated")
	}
	if !p.Equal(conclusion[1]) {
		return refuted("not_not", "unwrapped term does not match second literal")
	}
	return nil
}

// EquivPos1 implements equiv_pos1: clause
// [(not (= φ1 φ2)), φ1, (not φ2)].
func EquivPos1(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 3 {
		return malformed("equiv_pos1", "expected 3 literals")
	}
	inner, ok := MatchUnary(Not, conclusion[0])
	if !ok {
		return malformed("equiv_pos1", "first literal is not a negation")
	}
	phi1, phi2, ok := IsEq(inner)
	if !ok {
		return malformed("equiv_pos1", "first literal does not negate an equality")
	}
	if !phi1.Equal(conclusion[1]) {
		return refuted("equiv_pos1", "second literal does not match left side")
	}
	negPhi2, ok := MatchUnary(Not, conclusion[2])
	if !ok {
		return malformed("equiv_pos1", "third literal is not a negation")
	}
	if !negPhi2.Equal(phi2) {
		return refuted("equiv_pos1", "third literal does not negate right side")
	}
	return nil
}

// EquivPos2 implements equiv_pos2: clause
// [(not (= φ1 φ2)), (not φ1), φ2].
func EquivPos2(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 3 {
		return malformed("equiv_pos2", "expected 3 literals")
	}
	inner, ok := MatchUnary(Not, conclusion[0])
	if !ok {
		return malformed("equiv_pos2", "first literal is not a negation")
	}
	phi1, phi2, ok := IsEq(inner)
	if !ok {
		return malformed("equiv_pos2", "first literal does not negate an equality")
	}
	negPhi1, ok := MatchUnary(Not, conclusion[1])
	if !ok {
		return malformed("equiv_pos2", "second literal is not a negation")
	}
	if !negPhi1.Equal(phi1) {
		return refuted("equiv_pos2", "second literal does not negate left side")
	}
	if !phi2.Equal(conclusion[2]) {
		return refuted("equiv_pos2", "third literal does not match right side")
	}
	return nil
}
