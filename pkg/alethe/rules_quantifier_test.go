package alethe

import (
	"errors"
	"math/big"
	"testing"
)

func TestForallInstSubstitutesAndMatchesModuloReordering(t *testing.T) {
	pool := NewPool()
	x := pool.Intern(NewVar("x", Int))
	y := pool.Intern(NewVar("y", Int))
	body := pool.Intern(NewApp(Eq, x, y))
	forall := pool.Intern(NewQuant(Forall, []Binding{{Name: "x", Sort: Int}}, body))

	five := pool.Intern(NewInt(big.NewInt(5)))
	// phi' flips the equality sides, which solvers are allowed to do.
	phiPrime := pool.Intern(NewApp(Eq, y, five))

	clause := Clause{pool.BuildTerm(Or, pool.BuildNot(forall), phiPrime)}
	args := []ProofArg{AssignArg{Name: "x", Value: five}}

	if err := ForallInst(pool, clause, nil, args); err != nil {
		t.Fatalf("expected forall_inst to accept modulo equality reordering, got %v", err)
	}
}

func TestForallInstRejectsWrongBindingName(t *testing.T) {
	pool := NewPool()
	x := pool.Intern(NewVar("x", Int))
	body := pool.Intern(NewApp(Eq, x, x))
	forall := pool.Intern(NewQuant(Forall, []Binding{{Name: "x", Sort: Int}}, body))
	five := pool.Intern(NewInt(big.NewInt(5)))
	phiPrime := pool.Intern(NewApp(Eq, five, five))

	clause := Clause{pool.BuildTerm(Or, pool.BuildNot(forall), phiPrime)}
	args := []ProofArg{AssignArg{Name: "y", Value: five}}

	err := ForallInst(pool, clause, nil, args)
	if !errors.Is(err, ErrMalformedStep) {
		t.Fatalf("expected a mismatched assignment name to be malformed, got %v", err)
	}
}

func TestForallInstAllowsZeroBindingDegenerateCase(t *testing.T) {
	pool := NewPool()
	p := pool.Intern(NewVar("p", Bool))
	forall := pool.Intern(NewQuant(Forall, nil, p))
	clause := Clause{pool.BuildTerm(Or, pool.BuildNot(forall), p)}

	if err := ForallInst(pool, clause, nil, nil); err != nil {
		t.Fatalf("expected a zero-binding forall with zero args to be accepted, got %v", err)
	}
}

func TestQntJoinMergesNestedQuantifiersDeduplicatingNames(t *testing.T) {
	pool := NewPool()
	x := pool.Intern(NewVar("x", Int))
	y := pool.Intern(NewVar("y", Int))
	body := pool.Intern(NewApp(Eq, x, y))
	inner := pool.Intern(NewQuant(Forall, []Binding{{Name: "y", Sort: Int}}, body))
	outer := pool.Intern(NewQuant(Forall, []Binding{{Name: "x", Sort: Int}}, inner))

	merged := pool.Intern(NewQuant(Forall, []Binding{{Name: "x", Sort: Int}, {Name: "y", Sort: Int}}, body))
	clause := Clause{pool.BuildEq(outer, merged)}

	if err := QntJoin(pool, clause, nil, nil); err != nil {
		t.Fatalf("expected qnt_join to merge nested bindings, got %v", err)
	}
}

func TestQntRmUnusedDropsBindingsNotFreeInBody(t *testing.T) {
	pool := NewPool()
	x := pool.Intern(NewVar("x", Int))
	y := pool.Intern(NewVar("y", Int))
	body := pool.Intern(NewApp(Eq, x, x))
	full := pool.Intern(NewQuant(Forall, []Binding{{Name: "x", Sort: Int}, {Name: "y", Sort: Int}}, body))
	trimmed := pool.Intern(NewQuant(Forall, []Binding{{Name: "x", Sort: Int}}, body))
	_ = y

	clause := Clause{pool.BuildEq(full, trimmed)}
	if err := QntRmUnused(pool, clause, nil, nil); err != nil {
		t.Fatalf("expected qnt_rm_unused to drop the unused y binding, got %v", err)
	}
}
