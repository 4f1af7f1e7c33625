package alethe

import (
	"errors"
	"testing"
)

func TestDistinctElimPairN2(t *testing.T) {
	pool := NewPool()
	a := pool.Intern(NewVar("a", Int))
	b := pool.Intern(NewVar("b", Int))
	distinct := pool.Intern(NewApp(Distinct, a, b))

	clause := Clause{pool.BuildEq(distinct, pool.BuildNot(pool.BuildEq(a, b)))}
	if err := DistinctElim(pool, clause, nil, nil); err != nil {
		t.Fatalf("expected n=2 distinct_elim to accept, got %v", err)
	}
}

func TestDistinctElimPairN2BoolSortedStillUsesNegatedEquality(t *testing.T) {
	pool := NewPool()
	a := pool.Intern(NewVar("a", Bool))
	b := pool.Intern(NewVar("b", Bool))
	distinct := pool.Intern(NewApp(Distinct, a, b))

	// n == 2 takes the negated-equality form regardless of sort; the
	// all-Bool collapse-to-false form only applies at n >= 2 when the
	// n == 2 special case does not otherwise apply first.
	clause := Clause{pool.BuildEq(distinct, pool.BuildNot(pool.BuildEq(a, b)))}
	if err := DistinctElim(pool, clause, nil, nil); err != nil {
		t.Fatalf("expected n=2 Bool-sorted distinct_elim to accept the negated-equality form, got %v", err)
	}

	falseClause := Clause{pool.BuildEq(distinct, pool.Intern(NewVar(falseIdent, Bool)))}
	err := DistinctElim(pool, falseClause, nil, nil)
	if !errors.Is(err, ErrRuleFailed) {
		t.Fatalf("expected the n=2 case to reject the collapse-to-false form, got %v", err)
	}
}

func TestDistinctElimAllBoolCollapsesToFalse(t *testing.T) {
	pool := NewPool()
	a := pool.Intern(NewVar("a", Bool))
	b := pool.Intern(NewVar("b", Bool))
	c := pool.Intern(NewVar("c", Bool))
	distinct := pool.Intern(NewApp(Distinct, a, b, c))

	clause := Clause{pool.BuildEq(distinct, pool.Intern(NewVar(falseIdent, Bool)))}
	if err := DistinctElim(pool, clause, nil, nil); err != nil {
		t.Fatalf("expected all-Bool distinct_elim (n>=3) to collapse to false, got %v", err)
	}
}

func TestDistinctElimNonBoolPairwiseConjunction(t *testing.T) {
	pool := NewPool()
	a := pool.Intern(NewVar("a", Int))
	b := pool.Intern(NewVar("b", Int))
	c := pool.Intern(NewVar("c", Int))
	distinct := pool.Intern(NewApp(Distinct, a, b, c))

	conj := pool.BuildTerm(And,
		pool.BuildNot(pool.BuildEq(a, b)),
		pool.BuildNot(pool.BuildEq(a, c)),
		pool.BuildNot(pool.BuildEq(b, c)),
	)
	clause := Clause{pool.BuildEq(distinct, conj)}
	if err := DistinctElim(pool, clause, nil, nil); err != nil {
		t.Fatalf("expected the n=3 non-bool pairwise form to accept, got %v", err)
	}
}

func TestDistinctElimRejectsWrongArgumentCount(t *testing.T) {
	pool := NewPool()
	a := pool.Intern(NewVar("a", Int))
	distinct := pool.Intern(NewApp(Distinct, a))
	clause := Clause{pool.BuildEq(distinct, pool.Intern(NewVar(falseIdent, Bool)))}
	err := DistinctElim(pool, clause, nil, nil)
	if !errors.Is(err, ErrMalformedStep) {
		t.Fatalf("expected a single-argument Distinct to be malformed, got %v", err)
	}
}
