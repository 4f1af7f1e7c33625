package alethe

import "fmt"

// Rule is the shared signature every proof rule implements: given a
// step's conclusion clause, its resolved premise commands, and its
// proof arguments, report whether the conclusion is a valid
// application of the rule. Rules never mutate their inputs; the only
// mutation a rule performs is interning new terms through pool while
// building a candidate to compare against the conclusion.
type Rule func(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error

// literal pairs a term with the number of Not wrappers peeled from it.
// The resolution rule and several others use this representation so
// that deeply negated literals compare by (depth, core) rather than
// repeated structural unwrapping.
type literal struct {
	neg  int
	core Handle
}

func literalOf(h Handle) literal {
	n, inner := StripLeadingNegations(h)
	return literal{neg: n, core: inner}
}

// literalsOf returns the literals contributed by a premise command: the
// clause for a Step, or the singleton asserted term for an Assume.
func literalsOf(cmd ProofCommand) Clause {
	return ClauseOf(cmd)
}

func malformed(rule, reason string) error {
	return fmt.Errorf("rule %s rejected step: %w: %s", rule, ErrMalformedStep, reason)
}

func refuted(rule, reason string) error {
	return fmt.Errorf("rule %s rejected step: %w: %s", rule, ErrRuleFailed, reason)
}

// appHead splits an operator or function application into its
// "functor" and argument list, the way eq_congruent needs to compare
// two applications' heads independently of their arguments.
type appHead struct {
	isOp bool
	op   Op
	fn   Handle
	args []Handle
}

func splitApp(h Handle) (appHead, bool) {
	th := *h
	switch th.kind {
	case kindOp:
		return appHead{isOp: true, op: th.op, args: th.args}, true
	case kindFn:
		return appHead{isOp: false, fn: th.fn, args: th.args}, true
	}
	return appHead{}, false
}

func (a appHead) sameFunctorAs(b appHead) bool {
	if a.isOp != b.isOp {
		return false
	}
	if a.isOp {
		return a.op == b.op
	}
	return a.fn.Equal(b.fn)
}

func dedupBindings(bs []Binding) []Binding {
	seen := make(map[string]bool, len(bs))
	out := make([]Binding, 0, len(bs))
	for _, b := range bs {
		if seen[b.Name] {
			continue
		}
		seen[b.Name] = true
		out = append(out, b)
	}
	return out
}

func bindingsEqual(a, b []Binding) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !sortsEqual(a[i].Sort, b[i].Sort) {
			return false
		}
	}
	return true
}
