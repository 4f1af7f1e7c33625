package alethe

import (
	"fmt"
	"math/big"
)

// Handle is a shared, immutable reference to an interned Term. Once a
// term has passed through Pool.Intern, structural equality between two
// handles reduces to pointer equality — the invariant the whole rule
// library leans on for performance.
type Handle = *Term

// Term is the tagged union of everything that can appear in a proof:
// terminals, operator applications, function applications, and
// quantifiers. All concrete term kinds are immutable once constructed;
// building a "different" term always means building a new *Term and
// interning it, never mutating one in place.
type Term struct {
	kind termKind

	// Terminal fields (kind == kindInt/kindReal/kindString/kindBool/kindVar).
	intVal    *big.Int
	realVal   *big.Rat
	stringVal string
	boolVal   bool
	varName   string
	varSort   Sort

	// Operator/function application fields (kind == kindOp/kindFn).
	op       Op
	fn       Handle
	args     []Handle

	// Quantifier fields (kind == kindQuant).
	quantKind Quantifier
	bindings  []Binding
	body      Handle
}

type termKind int

const (
	kindInt termKind = iota
	kindReal
	kindString
	kindBool
	kindVar
	kindOp
	kindFn
	kindQuant
)

// Op enumerates the built-in operators a term application can use.
type Op int

const (
	Not Op = iota
	And
	Or
	Implies
	Eq
	Distinct
	Ite
	Add
	Sub
	Mult
	Div
	LT
	LE
	GT
	GE
)

var opNames = map[Op]string{
	Not: "not", And: "and", Or: "or", Implies: "=>", Eq: "=",
	Distinct: "distinct", Ite: "ite", Add: "+", Sub: "-", Mult: "*",
	Div: "/", LT: "<", LE: "<=", GT: ">", GE: ">=",
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Quantifier distinguishes universal from existential quantification.
type Quantifier int

const (
	Forall Quantifier = iota
	Exists
)

func (q Quantifier) String() string {
	if q == Forall {
		return "forall"
	}
	return "exists"
}

// Binding is a (name, sort) pair introduced by a quantifier.
type Binding struct {
	Name string
	Sort Sort
}

// Reserved terminal-variable identifiers used by IsBoolTrue/IsBoolFalse.
const (
	trueIdent  = "true"
	falseIdent = "false"
)

// --- Constructors (unintered; callers should route these through Pool.Intern) ---

// NewInt builds an arbitrary-precision integer terminal.
func NewInt(v *big.Int) *Term { return &Term{kind: kindInt, intVal: new(big.Int).Set(v)} }

// NewReal builds an arbitrary-precision rational terminal.
func NewReal(v *big.Rat) *Term { return &Term{kind: kindReal, realVal: new(big.Rat).Set(v)} }

// NewString builds a string literal terminal.
func NewString(s string) *Term { return &Term{kind: kindString, stringVal: s} }

// NewBool builds a boolean literal terminal.
func NewBool(b bool) *Term { return &Term{kind: kindBool, boolVal: b} }

// NewVar builds a variable terminal with the given identifier and sort.
func NewVar(name string, sort Sort) *Term {
	return &Term{kind: kindVar, varName: name, varSort: sort}
}

// NewApp builds an operator application. It does not validate arity;
// callers construct through Pool.BuildTerm (or NewApp directly in
// tests) and arity is enforced where it matters: by the rules that
// consume the application. Arity is a property of well-formed input,
// not something every constructor must re-check.
func NewApp(op Op, args ...Handle) *Term {
	return &Term{kind: kindOp, op: op, args: args}
}

// NewFnApp builds an uninterpreted function application; fn is itself
// a term (ordinarily a variable naming the function symbol).
func NewFnApp(fn Handle, args ...Handle) *Term {
	return &Term{kind: kindFn, fn: fn, args: args}
}

// NewQuant builds a quantified formula.
func NewQuant(kind Quantifier, bindings []Binding, body Handle) *Term {
	return &Term{kind: kindQuant, quantKind: kind, bindings: append([]Binding(nil), bindings...), body: body}
}

// --- Accessors ---

func (t *Term) IsInt() bool    { return t.kind == kindInt }
func (t *Term) IsReal() bool   { return t.kind == kindReal }
func (t *Term) IsString() bool { return t.kind == kindString }
func (t *Term) IsBool() bool   { return t.kind == kindBool }
func (t *Term) IsVar() bool    { return t.kind == kindVar }
func (t *Term) IsApp() bool    { return t.kind == kindOp }
func (t *Term) IsFnApp() bool  { return t.kind == kindFn }
func (t *Term) IsQuant() bool  { return t.kind == kindQuant }

func (t *Term) IntValue() *big.Int   { return t.intVal }
func (t *Term) RealValue() *big.Rat  { return t.realVal }
func (t *Term) StringValue() string  { return t.stringVal }
func (t *Term) BoolValue() bool      { return t.boolVal }
func (t *Term) VarName() string      { return t.varName }
func (t *Term) VarSort() Sort        { return t.varSort }
func (t *Term) Op() Op               { return t.op }
func (t *Term) Fn() Handle           { return t.fn }
func (t *Term) Args() []Handle       { return t.args }
func (t *Term) QuantKind() Quantifier { return t.quantKind }
func (t *Term) Bindings() []Binding  { return t.bindings }
func (t *Term) Body() Handle         { return t.body }

// Sort returns the term's sort. Operator applications other than the
// arithmetic/comparison family are Bool; arithmetic operators inherit
// the sort of their first argument; quantified formulas are always Bool.
func (t *Term) Sort() Sort {
	switch t.kind {
	case kindInt:
		return Int
	case kindReal:
		return Real
	case kindString:
		return Str
	case kindBool:
		return Bool
	case kindVar:
		return t.varSort
	case kindQuant:
		return Bool
	case kindFn:
		// The sort of a function application is the return sort of its
		// function term; without a declared signature table the best
		// the core can do is fall back to Bool, matching the common
		// case (predicates) that appears in proof conclusions.
		return Bool
	case kindOp:
		switch t.op {
		case Add, Sub, Mult, Div:
			if len(t.args) > 0 {
				return (*t.args[0]).Sort()
			}
			return Int
		default:
			return Bool
		}
	}
	return Bool
}

// String renders a term in Alethe's S-expression surface syntax. It is
// meant for diagnostics, not for round-tripping.
func (t *Term) String() string {
	switch t.kind {
	case kindInt:
		return t.intVal.String()
	case kindReal:
		return t.realVal.RatString()
	case kindString:
		return fmt.Sprintf("%q", t.stringVal)
	case kindBool:
		if t.boolVal {
			return "true"
		}
		return "false"
	case kindVar:
		return t.varName
	case kindFn:
		s := "(" + (*t.fn).String()
		for _, a := range t.args {
			s += " " + (*a).String()
		}
		return s + ")"
	case kindOp:
		s := "(" + t.op.String()
		for _, a := range t.args {
			s += " " + (*a).String()
		}
		return s + ")"
	case kindQuant:
		s := "(" + t.quantKind.String() + " ("
		for i, b := range t.bindings {
			if i > 0 {
				s += " "
			}
			s += fmt.Sprintf("(%s %s)", b.Name, b.Sort.String())
		}
		return s + ") " + (*t.body).String() + ")"
	}
	return "<?term>"
}

// Equal is structural equality: identical variant tags and recursively
// equal fields. Once terms are interned this reduces to pointer
// equality in the common path, but Equal stays correct for
// not-yet-interned terms too (e.g. while a rule is building a
// candidate term to compare against an existing one).
func (t *Term) Equal(other Handle) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	if other == nil {
		return false
	}
	o := *other
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case kindInt:
		return t.intVal.Cmp(o.intVal) == 0
	case kindReal:
		return t.realVal.Cmp(o.realVal) == 0
	case kindString:
		return t.stringVal == o.stringVal
	case kindBool:
		return t.boolVal == o.boolVal
	case kindVar:
		return t.varName == o.varName && sortsEqual(t.varSort, o.varSort)
	case kindFn:
		if !t.fn.Equal(o.fn) || len(t.args) != len(o.args) {
			return false
		}
		for i := range t.args {
			if !t.args[i].Equal(o.args[i]) {
				return false
			}
		}
		return true
	case kindOp:
		if t.op != o.op || len(t.args) != len(o.args) {
			return false
		}
		for i := range t.args {
			if !t.args[i].Equal(o.args[i]) {
				return false
			}
		}
		return true
	case kindQuant:
		if t.quantKind != o.quantKind || len(t.bindings) != len(o.bindings) {
			return false
		}
		for i := range t.bindings {
			if t.bindings[i].Name != o.bindings[i].Name || !sortsEqual(t.bindings[i].Sort, o.bindings[i].Sort) {
				return false
			}
		}
		return t.body.Equal(o.body)
	}
	return false
}

func sortsEqual(a, b Sort) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}

// Subterms returns a pre-order traversal over the term's DAG as a
// slice. Shared nodes may be visited more than once; callers wanting
// deduplication (e.g. free-variable computation) do it themselves.
func Subterms(t Handle) []Handle {
	var out []Handle
	var walk func(Handle)
	walk = func(h Handle) {
		out = append(out, h)
		th := *h
		switch th.kind {
		case kindFn:
			walk(th.fn)
			for _, a := range th.args {
				walk(a)
			}
		case kindOp:
			for _, a := range th.args {
				walk(a)
			}
		case kindQuant:
			walk(th.body)
		}
	}
	walk(t)
	return out
}

// RemoveNegation yields the inner term of t = (not u), or (nil, false)
// if t is not a negation.
func RemoveNegation(t Handle) (Handle, bool) {
	th := *t
	if th.kind == kindOp && th.op == Not && len(th.args) == 1 {
		return th.args[0], true
	}
	return nil, false
}

// StripLeadingNegations peels off Not wrappers, returning the count
// peeled and the residual inner term.
func StripLeadingNegations(t Handle) (int, Handle) {
	count := 0
	cur := t
	for {
		inner, ok := RemoveNegation(cur)
		if !ok {
			return count, cur
		}
		count++
		cur = inner
	}
}

// IsBoolFalse reports whether t is the terminal-variable "false" (the
// surface-syntax representation the parser produces for the literal
// false) or the boolean-literal terminal carrying the value false.
func IsBoolFalse(t Handle) bool {
	th := *t
	return (th.kind == kindVar && th.varName == falseIdent) || (th.kind == kindBool && !th.boolVal)
}

// IsBoolTrue reports whether t is the terminal-variable "true" or the
// boolean-literal terminal carrying the value true.
func IsBoolTrue(t Handle) bool {
	th := *t
	return (th.kind == kindVar && th.varName == trueIdent) || (th.kind == kindBool && th.boolVal)
}

// IsEq reports whether t is an Eq application, returning its two sides.
func IsEq(t Handle) (Handle, Handle, bool) {
	th := *t
	if th.kind == kindOp && th.op == Eq && len(th.args) == 2 {
		return th.args[0], th.args[1], true
	}
	return nil, nil, false
}

// EqModuloReordering is structural equality except that every subterm
// of the form (= x y) is considered equal to (= y x). Used by
// forall_inst, where solvers may flip equality sides during
// instantiation.
func EqModuloReordering(a, b Handle) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := *a, *b
	if lx, rx, ok := IsEq(a); ok {
		ly, ry, ok2 := IsEq(b)
		if !ok2 {
			return false
		}
		return (EqModuloReordering(lx, ly) && EqModuloReordering(rx, ry)) ||
			(EqModuloReordering(lx, ry) && EqModuloReordering(rx, ly))
	}
	if ta.kind != tb.kind {
		return false
	}
	switch ta.kind {
	case kindFn:
		if !EqModuloReordering(ta.fn, tb.fn) || len(ta.args) != len(tb.args) {
			return false
		}
		for i := range ta.args {
			if !EqModuloReordering(ta.args[i], tb.args[i]) {
				return false
			}
		}
		return true
	case kindOp:
		if ta.op != tb.op || len(ta.args) != len(tb.args) {
			return false
		}
		for i := range ta.args {
			if !EqModuloReordering(ta.args[i], tb.args[i]) {
				return false
			}
		}
		return true
	case kindQuant:
		if ta.quantKind != tb.quantKind || len(ta.bindings) != len(tb.bindings) {
			return false
		}
		for i := range ta.bindings {
			if ta.bindings[i].Name != tb.bindings[i].Name || !sortsEqual(ta.bindings[i].Sort, tb.bindings[i].Sort) {
				return false
			}
		}
		return EqModuloReordering(ta.body, tb.body)
	default:
		return ta.Equal(b)
	}
}
