package alethe

// ForallInst implements forall_inst: a unit-clause
// conclusion (or (not (forall ((x1 S1) ... (xn Sn)) φ)) φ'). Args must
// be exactly n Assign entries in binding order, each naming the
// corresponding bound variable and carrying a value of its sort; after
// substituting each xi with its value, the result must equal φ'
// modulo equality-side reordering (EqModuloReordering), since solvers
// may flip (= a b) to (= b a) during instantiation. A zero-binding
// forall matched with zero Assign args is allowed too; that degenerate
// case falls out of this implementation for free since the loop below
// is empty.
func ForallInst(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 1 {
		return malformed("forall_inst", "expected a unit clause")
	}
	orArgs, ok := MatchVariadic(Or, conclusion[0])
	if !ok || len(orArgs) != 2 {
		return malformed("forall_inst", "conclusion is not a 2-literal Or application")
	}
	forallTerm, ok := MatchUnary(Not, orArgs[0])
	if !ok {
		return malformed("forall_inst", "first disjunct is not a negation")
	}
	phiPrime := orArgs[1]

	ft := *forallTerm
	if ft.kind != kindQuant || ft.quantKind != Forall {
		return malformed("forall_inst", "negated term is not a forall")
	}
	bindings := ft.bindings
	phi := ft.body

	if len(args) != len(bindings) {
		return malformed("forall_inst", "argument count does not match binding count")
	}

	sigma := make(Substitution, len(bindings))
	for i, a := range args {
		assign, ok := a.(AssignArg)
		if !ok {
			return malformed("forall_inst", "argument is not an assignment")
		}
		if assign.Name != bindings[i].Name {
			return malformed("forall_inst", "assignment name does not match binding order")
		}
		if !sortsEqual(assign.Value.Sort(), bindings[i].Sort) {
			return malformed("forall_inst", "assigned value's sort does not match the binding's sort")
		}
		key := pool.Intern(NewVar(bindings[i].Name, bindings[i].Sort))
		sigma[key] = assign.Value
	}

	instantiated := pool.ApplySubstitutions(phi, sigma)
	if !EqModuloReordering(instantiated, phiPrime) {
		return refuted("forall_inst", "instantiated body does not match the second disjunct")
	}
	return nil
}

// QntJoin implements qnt_join: a unit-clause
// conclusion (= (Q b1 (Q b2 body)) (Q (dedup(b1++b2)) body)), where Q
// is the same quantifier kind on both sides and dedup keeps the first
// occurrence of each bound name.
func QntJoin(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 1 {
		return malformed("qnt_join", "expected a unit clause")
	}
	lhs, rhs, ok := IsEq(conclusion[0])
	if !ok {
		return malformed("qnt_join", "conclusion literal is not an equality")
	}
	lt := *lhs
	if lt.kind != kindQuant {
		return malformed("qnt_join", "left side is not a quantified formula")
	}
	outerBindings := lt.bindings
	it := *lt.body
	if it.kind != kindQuant || it.quantKind != lt.quantKind {
		return refuted("qnt_join", "left side's body is not a matching nested quantifier")
	}
	innerBindings := it.bindings
	body := it.body

	merged := dedupBindings(append(append([]Binding(nil), outerBindings...), innerBindings...))

	rt := *rhs
	if rt.kind != kindQuant || rt.quantKind != lt.quantKind {
		return refuted("qnt_join", "right side is not the same quantifier kind")
	}
	if !bindingsEqual(rt.bindings, merged) {
		return refuted("qnt_join", "right side's bindings are not the deduplicated union")
	}
	if !rt.body.Equal(body) {
		return refuted("qnt_join", "right side's body does not match the nested body")
	}
	return nil
}

// QntRmUnused implements qnt_rm_unused: a unit-clause
// conclusion (= (Q b body) (Q b' body)), where b' is the subsequence of
// b containing exactly the bindings whose variable occurs free in
// body, original order preserved.
func QntRmUnused(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(conclusion) != 1 {
		return malformed("qnt_rm_unused", "expected a unit clause")
	}
	lhs, rhs, ok := IsEq(conclusion[0])
	if !ok {
		return malformed("qnt_rm_unused", "conclusion literal is not an equality")
	}
	lt := *lhs
	if lt.kind != kindQuant {
		return malformed("qnt_rm_unused", "left side is not a quantified formula")
	}
	rt := *rhs
	if rt.kind != kindQuant || rt.quantKind != lt.quantKind {
		return refuted("qnt_rm_unused", "right side is not the same quantifier kind")
	}
	if !rt.body.Equal(lt.body) {
		return refuted("qnt_rm_unused", "bodies do not match")
	}

	free := FreeVars(lt.body)
	var expected []Binding
	for _, b := range lt.bindings {
		occurs := false
		for h := range free {
			hv := *h
			if hv.varName == b.Name && sortsEqual(hv.varSort, b.Sort) {
				occurs = true
				break
			}
		}
		if occurs {
			expected = append(expected, b)
		}
	}
	if !bindingsEqual(rt.bindings, expected) {
		return refuted("qnt_rm_unused", "right side's bindings do not match the free-variable subsequence")
	}
	return nil
}
