package alethe

import "testing"

func TestLookupRuleAndIsRuleImplemented(t *testing.T) {
	if _, ok := LookupRule("eq_reflexive"); !ok {
		t.Fatalf("expected eq_reflexive to be registered")
	}
	if !IsRuleImplemented("resolution") {
		t.Fatalf("expected resolution to be implemented")
	}
	if IsRuleImplemented("not_a_rule") {
		t.Fatalf("did not expect an unregistered name to report implemented")
	}
}

func TestAliasesCollapseToTheirPrimaryEntry(t *testing.T) {
	thRes, ok := LookupRule("th_resolution")
	if !ok {
		t.Fatalf("expected th_resolution alias to be registered")
	}
	res, _ := LookupRule("resolution")
	pool := NewPool()
	// Two rule funcs can't be compared by == if they're closures with
	// different identities; check behavioral equivalence instead via a
	// shared pool and the empty-clause scenario both should accept.
	p := pool.Intern(NewVar("p", Bool))
	premises := []ProofCommand{&Assume{ID: "a1", Term: p}, &Assume{ID: "a2", Term: pool.BuildNot(p)}}
	if err := thRes(pool, Clause{}, premises, nil); err != nil {
		t.Fatalf("expected th_resolution to behave like resolution, got %v", err)
	}
	if err := res(pool, Clause{}, premises, nil); err != nil {
		t.Fatalf("expected resolution to accept the same scenario, got %v", err)
	}
}

func TestRuleNamesIsSortedAndComplete(t *testing.T) {
	names := RuleNames()
	if len(names) != len(Registry) {
		t.Fatalf("expected RuleNames to enumerate every registered rule")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("expected RuleNames to be sorted, got %v before %v", names[i-1], names[i])
		}
	}
}
