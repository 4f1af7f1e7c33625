package alethe

// And implements the and rule: one premise whose single
// term is (and c1 ... cn); the conclusion is a unit clause [ci] for
// some i.
func And(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(premises) != 1 {
		return malformed("and", "expected exactly one premise")
	}
	if len(conclusion) != 1 {
		return malformed("and", "expected a unit clause")
	}
	term, ok := SingleTermOf(premises[0])
	if !ok {
		return malformed("and", "premise does not denote a single term")
	}
	conjuncts, ok := MatchVariadic(And, term)
	if !ok {
		return malformed("and", "premise is not an And application")
	}
	for _, c := range conjuncts {
		if c.Equal(conclusion[0]) {
			return nil
		}
	}
	return refuted("and", "conclusion is not one of the premise's conjuncts")
}

// Or implements the or rule: one premise whose single
// term is (or c1 ... cn); the conclusion clause equals [c1, ..., cn]
// in order.
func Or(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(premises) != 1 {
		return malformed("or", "expected exactly one premise")
	}
	term, ok := SingleTermOf(premises[0])
	if !ok {
		return malformed("or", "premise does not denote a single term")
	}
	disjuncts, ok := MatchVariadic(Or, term)
	if !ok {
		return malformed("or", "premise is not an Or application")
	}
	if len(disjuncts) != len(conclusion) {
		return malformed("or", "conclusion arity does not match the premise's disjunct count")
	}
	for i := range disjuncts {
		if !disjuncts[i].Equal(conclusion[i]) {
			return refuted("or", "conclusion literal does not match premise disjunct in order")
		}
	}
	return nil
}

// Implies implements the implies rule: one premise
// (=> φ1 φ2); the conclusion is [(not φ1), φ2].
func Implies(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(premises) != 1 {
		return malformed("implies", "expected exactly one premise")
	}
	if len(conclusion) != 2 {
		return malformed("implies", "expected 2 literals")
	}
	term, ok := SingleTermOf(premises[0])
	if !ok {
		return malformed("implies", "premise does not denote a single term")
	}
	phi1, phi2, ok := MatchBinary(Implies, term)
	if !ok {
		return malformed("implies", "premise is not an Implies application")
	}
	negPhi1, ok := MatchUnary(Not, conclusion[0])
	if !ok {
		return malformed("implies", "first literal is not a negation")
	}
	if !negPhi1.Equal(phi1) {
		return refuted("implies", "first literal does not negate the antecedent")
	}
	if !conclusion[1].Equal(phi2) {
		return refuted("implies", "second literal does not match the consequent")
	}
	return nil
}

func iteParts(term Handle) (cond, then, alt Handle, ok bool) {
	th := *term
	if th.kind != kindOp || th.op != Ite || len(th.args) != 3 {
		return nil, nil, nil, false
	}
	return th.args[0], th.args[1], th.args[2], true
}

// Ite1 implements ite1: one premise (ite ψ1 ψ2 ψ3);
// the conclusion is [ψ1, ψ3].
func Ite1(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(premises) != 1 {
		return malformed("ite1", "expected exactly one premise")
	}
	if len(conclusion) != 2 {
		return malformed("ite1", "expected 2 literals")
	}
	term, ok := SingleTermOf(premises[0])
	if !ok {
		return malformed("ite1", "premise does not denote a single term")
	}
	cond, _, alt, ok := iteParts(term)
	if !ok {
		return malformed("ite1", "premise is not an Ite application")
	}
	if !conclusion[0].Equal(cond) || !conclusion[1].Equal(alt) {
		return refuted("ite1", "conclusion does not match (cond, else)")
	}
	return nil
}

// Ite2 implements ite2: one premise (ite ψ1 ψ2 ψ3);
// the conclusion is [(not ψ1), ψ2].
func Ite2(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(premises) != 1 {
		return malformed("ite2", "expected exactly one premise")
	}
	if len(conclusion) != 2 {
		return malformed("ite2", "expected 2 literals")
	}
	term, ok := SingleTermOf(premises[0])
	if !ok {
		return malformed("ite2", "premise does not denote a single term")
	}
	cond, then, _, ok := iteParts(term)
	if !ok {
		return malformed("ite2", "premise is not an Ite application")
	}
	negCond, ok := MatchUnary(Not, conclusion[0])
	if !ok {
		return malformed("ite2", "first literal is not a negation")
	}
	if !negCond.Equal(cond) || !conclusion[1].Equal(then) {
		return refuted("ite2", "conclusion does not match (not cond, then)")
	}
	return nil
}

// IteIntro implements ite_intro: a unit-clause
// conclusion (= t (and t u1 ... uk)) where each ui corresponds, in
// pre-order, to the i-th (ite c a b) subterm of t and takes the form
// (ite c (= (ite c a b) a) (= (ite c a b) b)).
func IteIntro(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 1 {
		return malformed("ite_intro", "expected a unit clause")
	}
	t, rhs, ok := IsEq(conclusion[0])
	if !ok {
		return malformed("ite_intro", "conclusion literal is not an equality")
	}
	andArgs, ok := MatchVariadic(And, rhs)
	if !ok || len(andArgs) == 0 {
		return malformed("ite_intro", "right side is not a non-empty And application")
	}
	if !andArgs[0].Equal(t) {
		return refuted("ite_intro", "first conjunct does not match the left side")
	}
	us := andArgs[1:]

	var iteSubterms []Handle
	for _, sub := range Subterms(t) {
		sth := *sub
		if sth.kind == kindOp && sth.op == Ite {
			iteSubterms = append(iteSubterms, sub)
		}
	}
	if len(iteSubterms) != len(us) {
		return refuted("ite_intro", "conjunct count does not match the number of ite subterms")
	}
	for i, iteTerm := range iteSubterms {
		cond, then, alt, _ := iteParts(iteTerm)
		expected := pool.BuildTerm(Ite, cond, pool.BuildEq(iteTerm, then), pool.BuildEq(iteTerm, alt))
		if !us[i].Equal(expected) {
			return refuted("ite_intro", "conjunct does not match the expected ite-introduction shape")
		}
	}
	return nil
}
