package alethe

import (
	"math/big"
	"testing"
)

func TestTermEqualStructural(t *testing.T) {
	a1 := NewVar("a", Bool)
	a2 := NewVar("a", Bool)
	b := NewVar("b", Bool)

	if !a1.Equal(a2) {
		t.Fatalf("expected structurally identical vars to be Equal")
	}
	if a1.Equal(b) {
		t.Fatalf("expected differently named vars to be unequal")
	}

	app1 := NewApp(And, a1, b)
	app2 := NewApp(And, a2, b)
	if !app1.Equal(app2) {
		t.Fatalf("expected structurally identical applications to be Equal")
	}

	app3 := NewApp(Or, a1, b)
	if app1.Equal(app3) {
		t.Fatalf("expected applications with different ops to be unequal")
	}
}

func TestTermEqualHandlesNilAndIntReal(t *testing.T) {
	i1 := NewInt(big.NewInt(5))
	i2 := NewInt(big.NewInt(5))
	i3 := NewInt(big.NewInt(6))
	if !i1.Equal(i2) {
		t.Fatalf("expected equal big.Int terminals to compare equal")
	}
	if i1.Equal(i3) {
		t.Fatalf("expected different big.Int terminals to compare unequal")
	}

	r1 := NewReal(big.NewRat(1, 2))
	r2 := NewReal(big.NewRat(2, 4))
	if !r1.Equal(r2) {
		t.Fatalf("expected equivalent rationals to compare equal")
	}

	var nilHandle Handle
	if !nilHandle.Equal(nil) {
		t.Fatalf("expected two nil handles to compare equal")
	}
	if i1.Equal(nil) {
		t.Fatalf("expected a non-nil handle to be unequal to nil")
	}
}

func TestIsBoolTrueFalseAcceptsBothRepresentations(t *testing.T) {
	varFalse := NewVar(falseIdent, Bool)
	varTrue := NewVar(trueIdent, Bool)
	litFalse := NewBool(false)
	litTrue := NewBool(true)

	if !IsBoolFalse(varFalse) || !IsBoolFalse(litFalse) {
		t.Fatalf("expected both the terminal-variable and literal representations of false to report IsBoolFalse")
	}
	if !IsBoolTrue(varTrue) || !IsBoolTrue(litTrue) {
		t.Fatalf("expected both the terminal-variable and literal representations of true to report IsBoolTrue")
	}
	if IsBoolFalse(varTrue) || IsBoolTrue(varFalse) {
		t.Fatalf("did not expect cross-contamination between true and false checks")
	}
}

func TestRemoveNegationAndStripLeadingNegations(t *testing.T) {
	p := NewVar("p", Bool)
	n1 := NewApp(Not, p)
	n2 := NewApp(Not, n1)
	n3 := NewApp(Not, n2)

	inner, ok := RemoveNegation(n1)
	if !ok || !inner.Equal(p) {
		t.Fatalf("expected RemoveNegation to unwrap a single Not")
	}
	if _, ok := RemoveNegation(p); ok {
		t.Fatalf("did not expect RemoveNegation to succeed on a non-negation")
	}

	count, residual := StripLeadingNegations(n3)
	if count != 3 || !residual.Equal(p) {
		t.Fatalf("expected 3 negations peeled down to p, got count=%d residual=%s", count, residual.String())
	}
}

func TestIsEq(t *testing.T) {
	a := NewVar("a", Int)
	b := NewVar("b", Int)
	eq := NewApp(Eq, a, b)
	l, r, ok := IsEq(eq)
	if !ok || !l.Equal(a) || !r.Equal(b) {
		t.Fatalf("expected IsEq to split the equality's two sides")
	}
	if _, _, ok := IsEq(a); ok {
		t.Fatalf("did not expect IsEq to succeed on a non-equality")
	}
}

func TestEqModuloReorderingFlipsEqualitySides(t *testing.T) {
	a := NewVar("a", Int)
	b := NewVar("b", Int)
	eqAB := NewApp(Eq, a, b)
	eqBA := NewApp(Eq, b, a)
	if !EqModuloReordering(eqAB, eqBA) {
		t.Fatalf("expected (= a b) and (= b a) to be equal modulo reordering")
	}

	nested := NewApp(And, eqAB, a)
	nestedFlipped := NewApp(And, eqBA, a)
	if !EqModuloReordering(nested, nestedFlipped) {
		t.Fatalf("expected reordering to apply to nested equality subterms")
	}

	notEq := NewApp(And, eqAB, b)
	if EqModuloReordering(nested, notEq) {
		t.Fatalf("did not expect unrelated terms to compare equal")
	}
}

func TestSubtermsVisitsSharedNodesEachOccurrence(t *testing.T) {
	a := NewVar("a", Bool)
	shared := NewApp(Not, a)
	top := NewApp(And, shared, shared)

	subs := Subterms(top)
	count := 0
	for _, s := range subs {
		if s == shared {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected the shared subterm to be visited twice (once per occurrence), got %d", count)
	}
}

func TestSortOfArithmeticInheritsFirstArgument(t *testing.T) {
	x := NewVar("x", Int)
	y := NewVar("y", Int)
	sum := NewApp(Add, x, y)
	if sum.Sort() != Int {
		t.Fatalf("expected + to inherit its first argument's sort")
	}

	cmp := NewApp(LT, x, y)
	if cmp.Sort() != Bool {
		t.Fatalf("expected comparison operators to be Bool-sorted")
	}
}
