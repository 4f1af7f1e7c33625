package alethe

import (
	"fmt"
	"strings"
)

// Pool is the term intern table: it canonicalizes terms so that any
// two structurally equal terms share exactly one Handle, which is what
// lets the rest of the checker treat Term.Equal as pointer equality in
// the common path. The core treats Pool purely through this interface;
// in a fuller system it would be the external "term pool" collaborator
// the format describes, but an in-process implementation is provided here
// so the package is self-contained and testable.
type Pool struct {
	table map[string]Handle
}

// NewPool creates an empty term pool.
func NewPool() *Pool {
	return &Pool{table: make(map[string]Handle)}
}

// Intern canonicalizes t, recursively interning its subterms first (so
// every interned term's children are themselves already-interned
// handles), and returns the shared handle. Calling Intern twice on
// structurally equal terms returns the identical pointer.
func (p *Pool) Intern(t Handle) Handle {
	th := *t
	switch th.kind {
	case kindFn:
		fn := p.Intern(th.fn)
		args := internAll(p, th.args)
		return p.internKeyed(fnKey(fn, args), &Term{kind: kindFn, fn: fn, args: args})
	case kindOp:
		args := internAll(p, th.args)
		return p.internKeyed(opKey(th.op, args), &Term{kind: kindOp, op: th.op, args: args})
	case kindQuant:
		body := p.Intern(th.body)
		return p.internKeyed(quantKey(th.quantKind, th.bindings, body), &Term{
			kind: kindQuant, quantKind: th.quantKind,
			bindings: append([]Binding(nil), th.bindings...), body: body,
		})
	default:
		return p.internKeyed(terminalKey(&th), t)
	}
}

func internAll(p *Pool, args []Handle) []Handle {
	out := make([]Handle, len(args))
	for i, a := range args {
		out[i] = p.Intern(a)
	}
	return out
}

func (p *Pool) internKeyed(key string, t Handle) Handle {
	if existing, ok := p.table[key]; ok {
		return existing
	}
	p.table[key] = t
	return t
}

// BuildTerm is a small helper for rules that need to construct new
// operator applications through the pool, interning every intermediate
// subterm: it's the one path rules should use to synthesize candidate
// terms for comparison against an existing conclusion.
func (p *Pool) BuildTerm(op Op, args ...Handle) Handle {
	return p.Intern(NewApp(op, args...))
}

// BuildEq interns (= a b).
func (p *Pool) BuildEq(a, b Handle) Handle { return p.BuildTerm(Eq, a, b) }

// BuildNot interns (not a).
func (p *Pool) BuildNot(a Handle) Handle { return p.BuildTerm(Not, a) }

func terminalKey(t *Term) string {
	switch t.kind {
	case kindInt:
		return "i:" + t.intVal.String()
	case kindReal:
		return "r:" + t.realVal.RatString()
	case kindString:
		return "s:" + t.stringVal
	case kindBool:
		return fmt.Sprintf("b:%v", t.boolVal)
	case kindVar:
		return "v:" + t.varName + ":" + t.varSort.String()
	}
	return "?"
}

func opKey(op Op, args []Handle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "op%d(", int(op))
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%p", a)
	}
	sb.WriteByte(')')
	return sb.String()
}

func fnKey(fn Handle, args []Handle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fn%p(", fn)
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%p", a)
	}
	sb.WriteByte(')')
	return sb.String()
}

func quantKey(kind Quantifier, bindings []Binding, body Handle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "q%d[", int(kind))
	for i, b := range bindings {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(b.Name)
		sb.WriteByte(':')
		sb.WriteString(b.Sort.String())
	}
	fmt.Fprintf(&sb, "]%p", body)
	return sb.String()
}

// Substitution maps variable-term handles to replacement handles. It's
// the argument type of ApplySubstitutions; construction is cheap
// (plain map build-up) since it's used once per rule invocation.
type Substitution map[Handle]Handle

// FreeVars computes the set of free variable handles in t by recursive
// descent, subtracting a quantifier's bound names from its body's free
// variables.
func FreeVars(t Handle) map[Handle]struct{} {
	out := make(map[Handle]struct{})
	freeVarsInto(t, out)
	return out
}

func freeVarsInto(t Handle, out map[Handle]struct{}) {
	th := *t
	switch th.kind {
	case kindVar:
		out[t] = struct{}{}
	case kindFn:
		freeVarsInto(th.fn, out)
		for _, a := range th.args {
			freeVarsInto(a, out)
		}
	case kindOp:
		for _, a := range th.args {
			freeVarsInto(a, out)
		}
	case kindQuant:
		inner := make(map[Handle]struct{})
		freeVarsInto(th.body, inner)
		for h := range inner {
			if name := (*h).varName; !boundByName(th.bindings, name) {
				out[h] = struct{}{}
			}
		}
	}
}

func boundByName(bindings []Binding, name string) bool {
	for _, b := range bindings {
		if b.Name == name {
			return true
		}
	}
	return false
}

// ApplySubstitutions replaces every occurrence of each key in sigma
// with its corresponding value, avoiding capture: when recursion
// enters a quantifier whose bound names shadow one of sigma's variable
// keys (by name), that key is suppressed for the body, then restored
// for the caller's continuation. Results are memoized for the
// duration of a single call so repeated subterms in a DAG aren't
// reprocessed.
func (p *Pool) ApplySubstitutions(root Handle, sigma Substitution) Handle {
	memo := make(map[Handle]Handle)
	return p.substRec(root, sigma, memo)
}

func (p *Pool) substRec(t Handle, sigma Substitution, memo map[Handle]Handle) Handle {
	if cached, ok := memo[t]; ok {
		return cached
	}
	th := *t
	var result Handle
	switch th.kind {
	case kindVar:
		if repl, ok := sigma[t]; ok {
			result = repl
		} else {
			result = t
		}
	case kindFn:
		fn := p.substRec(th.fn, sigma, memo)
		args := substAll(p, th.args, sigma, memo)
		result = p.Intern(&Term{kind: kindFn, fn: fn, args: args})
	case kindOp:
		args := substAll(p, th.args, sigma, memo)
		result = p.Intern(&Term{kind: kindOp, op: th.op, args: args})
	case kindQuant:
		restricted := sigma
		shadowedAny := false
		for k := range sigma {
			if boundByName(th.bindings, (*k).varName) {
				if !shadowedAny {
					restricted = make(Substitution, len(sigma))
					for kk, vv := range sigma {
						restricted[kk] = vv
					}
					shadowedAny = true
				}
				delete(restricted, k)
			}
		}
		bodyMemo := memo
		if shadowedAny {
			bodyMemo = make(map[Handle]Handle)
		}
		body := p.substRec(th.body, restricted, bodyMemo)
		result = p.Intern(&Term{kind: kindQuant, quantKind: th.quantKind, bindings: th.bindings, body: body})
	default:
		result = t
	}
	memo[t] = result
	return result
}

func substAll(p *Pool, args []Handle, sigma Substitution, memo map[Handle]Handle) []Handle {
	out := make([]Handle, len(args))
	for i, a := range args {
		out[i] = p.substRec(a, sigma, memo)
	}
	return out
}
