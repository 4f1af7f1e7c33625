package alethe

// NaryElim implements nary_elim: a unit-clause
// conclusion (= original result) where original = (op a1 ... an); the
// expected result depends on op's associativity class. Any operator
// outside {=, +, -, *, =>} is rejected as malformed — nary_elim simply
// doesn't apply to it.
func NaryElim(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 1 {
		return malformed("nary_elim", "expected a unit clause")
	}
	lhs, rhs, ok := IsEq(conclusion[0])
	if !ok {
		return malformed("nary_elim", "conclusion literal is not an equality")
	}
	lth := *lhs
	if lth.kind != kindOp {
		return malformed("nary_elim", "left side is not an operator application")
	}
	opv := lth.op
	elems := lth.args
	if len(elems) < 2 {
		return malformed("nary_elim", "operator application needs at least 2 arguments")
	}

	var expected Handle
	switch opv {
	case Eq:
		conj := make([]Handle, 0, len(elems)-1)
		for i := 0; i < len(elems)-1; i++ {
			conj = append(conj, pool.BuildEq(elems[i], elems[i+1]))
		}
		expected = pool.BuildTerm(And, conj...)
	case Add, Sub, Mult:
		acc := elems[0]
		for i := 1; i < len(elems); i++ {
			acc = pool.BuildTerm(opv, acc, elems[i])
		}
		expected = acc
	case Implies:
		acc := elems[len(elems)-1]
		for i := len(elems) - 2; i >= 0; i-- {
			acc = pool.BuildTerm(opv, elems[i], acc)
		}
		expected = acc
	default:
		return malformed("nary_elim", "operator has no n-ary elimination form")
	}

	if !rhs.Equal(expected) {
		return refuted("nary_elim", "result does not match the expected elimination form")
	}
	return nil
}
