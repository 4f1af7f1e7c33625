// Package alethe implements a checker for Alethe/veriT proof certificates:
// term representation, term interning, a small pattern matcher, the
// library of proof rules, and the linear proof walker that dispatches
// each step to its rule.
//
// The package does not parse proofs; it consumes an already-built
// Proof and Pool, matching the division of labor spec'd for this
// checker (lexing/parsing is an external collaborator, see
// internal/sexpr for the reference implementation used by cmd/checkproof).
package alethe

import "fmt"

// Sort represents the type of a term: one of the built-in sorts or a
// declared uninterpreted sort. Sorts are compared structurally, never
// by identity, since two separately-declared uninterpreted sorts with
// the same name and arity must compare equal.
type Sort interface {
	// String returns the sort's printable name.
	String() string

	// Equal reports whether two sorts are structurally identical.
	Equal(other Sort) bool
}

// BoolSort is the sort of propositional formulas.
type BoolSort struct{}

// IntSort is the sort of arbitrary-precision integers.
type IntSort struct{}

// RealSort is the sort of arbitrary-precision rationals.
type RealSort struct{}

// StringSort is the sort of string literals.
type StringSort struct{}

func (BoolSort) String() string   { return "Bool" }
func (IntSort) String() string    { return "Int" }
func (RealSort) String() string   { return "Real" }
func (StringSort) String() string { return "String" }

func (BoolSort) Equal(other Sort) bool {
	_, ok := other.(BoolSort)
	return ok
}

func (IntSort) Equal(other Sort) bool {
	_, ok := other.(IntSort)
	return ok
}

func (RealSort) Equal(other Sort) bool {
	_, ok := other.(RealSort)
	return ok
}

func (StringSort) Equal(other Sort) bool {
	_, ok := other.(StringSort)
	return ok
}

// UninterpretedSort is a user-declared sort, identified by name and
// arity (arity 0 for a plain sort, >0 for a parametric sort family).
type UninterpretedSort struct {
	Name  string
	Arity int
}

// NewUninterpretedSort builds a declared sort with the given name and arity.
func NewUninterpretedSort(name string, arity int) *UninterpretedSort {
	return &UninterpretedSort{Name: name, Arity: arity}
}

func (s *UninterpretedSort) String() string {
	if s.Arity == 0 {
		return s.Name
	}
	return fmt.Sprintf("%s/%d", s.Name, s.Arity)
}

func (s *UninterpretedSort) Equal(other Sort) bool {
	o, ok := other.(*UninterpretedSort)
	if !ok {
		return false
	}
	return s.Name == o.Name && s.Arity == o.Arity
}

var (
	// Bool, Int, Real, and Str are the shared zero-value instances of
	// the built-in sorts; since the types carry no state, any value is
	// interchangeable, but sharing these avoids needless allocation at
	// call sites that build terms.
	Bool = BoolSort{}
	Int  = IntSort{}
	Real = RealSort{}
	Str  = StringSort{}
)
