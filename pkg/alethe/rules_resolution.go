package alethe

import (
	"github.com/hashicorp/go-set/v3"
)

// Resolution implements the resolution rule (and its th_resolution
// alias). Every literal across every premise is modeled as a
// (negation depth, core term) pair; the working multiset cancels one
// negation against the next occurrence of the same core, and the
// result must equal the conclusion's own literal set exactly —
// including rejecting a conclusion that repeats a literal, since a set
// collapses duplicates and the rule requires the clause to already be
// duplicate-free.
//
// go-set's Set[T] (a direct dependency pulled in for exactly this
// purpose) is the natural fit for "maintain a working set... compare
// for equality against the conclusion's set."
func Resolution(pool *Pool, conclusion Clause, premises []ProofCommand, args []ProofArg) error {
	if len(premises) == 0 {
		return malformed("resolution", "expected at least one premise")
	}

	working := set.New[literal](0)
	for _, premise := range premises {
		for _, lit := range literalsOf(premise) {
			l := literalOf(lit)
			if l.neg > 0 && removeMatching(working, literal{neg: l.neg - 1, core: l.core}) {
				continue
			}
			if removeMatching(working, literal{neg: l.neg + 1, core: l.core}) {
				continue
			}
			insertMatching(working, l)
		}
	}

	concSet := set.New[literal](len(conclusion))
	for _, lit := range conclusion {
		insertMatching(concSet, literalOf(lit))
	}
	if concSet.Size() != len(conclusion) {
		return refuted("resolution", "conclusion repeats a literal")
	}
	if !setsEqual(working, concSet) {
		return refuted("resolution", "resolvent does not match the conclusion's literal set")
	}
	return nil
}

// literal is not comparable via Go's built-in equality (its core field
// is a Handle, a pointer, which IS comparable, but two literals
// describing the same term that happen to not be the identical
// pointer — e.g. a not-yet-interned candidate — would wrongly compare
// unequal). Resolution always operates on already-interned clause
// terms, so pointer identity is safe here; these helpers exist purely
// to keep that assumption localized to one place instead of scattered
// across the rule body.
func removeMatching(s *set.Set[literal], target literal) bool {
	if s.Contains(target) {
		s.Remove(target)
		return true
	}
	return false
}

func insertMatching(s *set.Set[literal], l literal) {
	s.Insert(l)
}

func setsEqual(a, b *set.Set[literal]) bool {
	return a.Equal(b)
}
