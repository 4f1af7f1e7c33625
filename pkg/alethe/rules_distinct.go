package alethe

// DistinctElim implements distinct_elim. The
// conclusion is a unit clause (= (distinct x1 ... xn) rhs); rhs takes
// one of three shapes depending on n and the arguments' sort:
//   - n == 2: rhs is (not (= x1 x2)) up to argument order.
//   - n >= 3, all Bool: rhs is the boolean literal false (at n == 2
//     the negated-equality form above applies regardless of sort).
//   - n >= 3, non-Bool: rhs is a conjunction enumerating every
//     unordered pair (i < j) in lexicographic order, each possibly
//     flipped.
func DistinctElim(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 1 {
		return malformed("distinct_elim", "expected a unit clause")
	}
	lhs, rhs, ok := IsEq(conclusion[0])
	if !ok {
		return malformed("distinct_elim", "conclusion literal is not an equality")
	}
	xs, ok := MatchVariadic(Distinct, lhs)
	if !ok {
		return malformed("distinct_elim", "left side is not a Distinct application")
	}
	n := len(xs)
	if n < 2 {
		return malformed("distinct_elim", "Distinct needs at least 2 arguments")
	}

	if n == 2 {
		inner, ok := MatchUnary(Not, rhs)
		if !ok {
			return refuted("distinct_elim", "expected a negated equality for n=2")
		}
		a, b, ok := IsEq(inner)
		if !ok {
			return refuted("distinct_elim", "expected a negated equality for n=2")
		}
		if (a.Equal(xs[0]) && b.Equal(xs[1])) || (a.Equal(xs[1]) && b.Equal(xs[0])) {
			return nil
		}
		return refuted("distinct_elim", "inequality does not pair the two arguments")
	}

	allBool := true
	for _, x := range xs {
		if _, isBool := x.Sort().(BoolSort); !isBool {
			allBool = false
			break
		}
	}
	if allBool {
		if IsBoolFalse(rhs) {
			return nil
		}
		return refuted("distinct_elim", "expected the boolean literal false")
	}

	type pr struct{ i, j int }
	var expected []pr
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			expected = append(expected, pr{i, j})
		}
	}
	conjuncts, ok := MatchVariadic(And, rhs)
	if !ok || len(conjuncts) != len(expected) {
		return refuted("distinct_elim", "expected a conjunction of all pairwise inequalities")
	}
	for k, p := range expected {
		inner, ok := MatchUnary(Not, conjuncts[k])
		if !ok {
			return refuted("distinct_elim", "conjunct is not a negated equality")
		}
		a, b, ok := IsEq(inner)
		if !ok {
			return refuted("distinct_elim", "conjunct is not a negated equality")
		}
		xi, xj := xs[p.i], xs[p.j]
		if (a.Equal(xi) && b.Equal(xj)) || (a.Equal(xj) && b.Equal(xi)) {
			continue
		}
		return refuted("distinct_elim", "conjunct does not pair the expected arguments")
	}
	return nil
}
