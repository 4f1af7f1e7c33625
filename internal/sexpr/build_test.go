package sexpr

import (
	"strings"
	"testing"

	"github.com/gitrdm/alethecheck/pkg/alethe"
)

func TestParseBuildsAResolutionProofFromDeclarationsAndSteps(t *testing.T) {
	problem := strings.NewReader(`
		(declare-fun p () Bool)
	`)
	proof := strings.NewReader(`
		(assume a1 p)
		(assume a2 (not p))
		(step t1 (cl) :rule resolution :premises (a1 a2))
	`)

	pr, pool, err := Parse(problem, proof)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if pool == nil {
		t.Fatalf("expected a populated pool")
	}
	if len(pr) != 3 {
		t.Fatalf("expected 3 proof commands, got %d", len(pr))
	}

	step, ok := pr[2].(*alethe.Step)
	if !ok {
		t.Fatalf("expected the third command to be a Step, got %T", pr[2])
	}
	if step.Rule != "resolution" {
		t.Fatalf("expected rule resolution, got %q", step.Rule)
	}
	if len(step.Premises) != 2 || step.Premises[0] != 0 || step.Premises[1] != 1 {
		t.Fatalf("expected premises to resolve to indices [0 1], got %v", step.Premises)
	}
	if len(step.Clause) != 0 {
		t.Fatalf("expected an empty conclusion clause, got %v", step.Clause)
	}
}

func TestParseResolvesQuantifierBindingsAndArgs(t *testing.T) {
	problem := strings.NewReader(`
		(declare-fun p (Int Int) Bool)
	`)
	proof := strings.NewReader(`
		(assume a1 (forall ((x Int) (y Int)) (p x y)))
		(step t1 (cl (p 1 2)) :rule forall_inst :premises (a1) :args ((:= x 1) (:= y 2)))
	`)

	pr, _, err := Parse(problem, proof)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	assume, ok := pr[0].(*alethe.Assume)
	if !ok {
		t.Fatalf("expected the first command to be an Assume, got %T", pr[0])
	}
	if !assume.Term.IsQuant() {
		t.Fatalf("expected a quantified assumption term")
	}
	if len(assume.Term.Bindings()) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(assume.Term.Bindings()))
	}

	step := pr[1].(*alethe.Step)
	if len(step.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(step.Args))
	}
	first, ok := step.Args[0].(alethe.AssignArg)
	if !ok {
		t.Fatalf("expected an AssignArg, got %T", step.Args[0])
	}
	if first.Name != "x" || first.Value.IntValue().Int64() != 1 {
		t.Fatalf("expected x := 1, got %s := %v", first.Name, first.Value)
	}
}

func TestParseRejectsAnUndeclaredIdentifier(t *testing.T) {
	problem := strings.NewReader(`(declare-fun p () Bool)`)
	proof := strings.NewReader(`(assume a1 q)`)

	_, _, err := Parse(problem, proof)
	if err == nil {
		t.Fatalf("expected an error for the undeclared identifier q")
	}
}

func TestParseRejectsAPremiseReferencingAnUnknownId(t *testing.T) {
	problem := strings.NewReader(`(declare-fun p () Bool)`)
	proof := strings.NewReader(`(step t1 (cl p) :rule resolution :premises (nope))`)

	_, _, err := Parse(problem, proof)
	if err == nil {
		t.Fatalf("expected an error for a premise referencing an unknown step id")
	}
}

func TestParseHandlesIntegerAndRealLiterals(t *testing.T) {
	problem := strings.NewReader(``)
	proof := strings.NewReader(`(assume a1 (= 1 1.5))`)

	pr, _, err := Parse(problem, proof)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	assume := pr[0].(*alethe.Assume)
	args := assume.Term.Args()
	if !args[0].IsInt() || args[0].IntValue().Int64() != 1 {
		t.Fatalf("expected the first argument to be the integer 1")
	}
	if !args[1].IsReal() {
		t.Fatalf("expected the second argument to be a real literal")
	}
}
