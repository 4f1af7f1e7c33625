package sexpr

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/gitrdm/alethecheck/pkg/alethe"
)

var builtinOps = map[string]alethe.Op{
	"not": alethe.Not, "and": alethe.And, "or": alethe.Or, "=>": alethe.Implies,
	"=": alethe.Eq, "distinct": alethe.Distinct, "ite": alethe.Ite,
	"+": alethe.Add, "-": alethe.Sub, "*": alethe.Mult, "/": alethe.Div,
	"<": alethe.LT, "<=": alethe.LE, ">": alethe.GT, ">=": alethe.GE,
}

// funcSig records a declared function's signature; functions with
// ArgSorts == nil are nullary (ordinary propositional atoms or
// constants) and parse straight to a Var term of Ret.
type funcSig struct {
	ArgSorts []alethe.Sort
	Ret      alethe.Sort
}

// builder accumulates declarations while reading the problem file and
// proof commands while reading the proof file, sharing one Pool so
// every term — across both files — is interned into the same table.
type builder struct {
	pool  *alethe.Pool
	sorts map[string]alethe.Sort
	funcs map[string]funcSig
	// scope is a stack of quantifier binding frames, innermost last,
	// consulted before the global funcs table so bound names shadow
	// declared constants lexically.
	scope []map[string]alethe.Sort

	proof   alethe.Proof
	idIndex map[string]int
}

func newBuilder() *builder {
	return &builder{
		pool: alethe.NewPool(),
		sorts: map[string]alethe.Sort{
			"Bool": alethe.Bool, "Int": alethe.Int, "Real": alethe.Real, "String": alethe.Str,
		},
		funcs:   make(map[string]funcSig),
		idIndex: make(map[string]int),
	}
}

// Parse reads the problem declarations and the proof commands and
// returns the resulting Proof together with the Pool all its terms
// were interned into.
func Parse(problem, proofR io.Reader) (alethe.Proof, *alethe.Pool, error) {
	b := newBuilder()

	problemForms, err := ParseAll(problem)
	if err != nil {
		return nil, nil, fmt.Errorf("sexpr: parsing problem: %w", err)
	}
	for _, f := range problemForms {
		if err := b.declareTop(f); err != nil {
			return nil, nil, err
		}
	}

	proofForms, err := ParseAll(proofR)
	if err != nil {
		return nil, nil, fmt.Errorf("sexpr: parsing proof: %w", err)
	}
	for _, f := range proofForms {
		if err := b.commandTop(f); err != nil {
			return nil, nil, err
		}
	}

	return b.proof, b.pool, nil
}

func (b *builder) declareTop(n Node) error {
	if !n.IsList() || len(n.List) == 0 || !n.List[0].IsAtom() {
		return fmt.Errorf("sexpr: expected a top-level form, got %s", n.String())
	}
	head := n.List[0].Atom
	switch head {
	case "declare-sort":
		if len(n.List) != 3 {
			return fmt.Errorf("sexpr: declare-sort expects a name and arity: %s", n.String())
		}
		name := n.List[1].Atom
		arity, err := strconv.Atoi(n.List[2].Atom)
		if err != nil {
			return fmt.Errorf("sexpr: declare-sort arity: %w", err)
		}
		b.sorts[name] = alethe.NewUninterpretedSort(name, arity)
		return nil
	case "declare-fun", "declare-const":
		if len(n.List) < 3 {
			return fmt.Errorf("sexpr: declare-fun expects a name, arg sorts, and a return sort: %s", n.String())
		}
		name := n.List[1].Atom
		var argSorts []alethe.Sort
		var retNode Node
		if head == "declare-const" {
			retNode = n.List[2]
		} else {
			if !n.List[2].IsList() {
				return fmt.Errorf("sexpr: declare-fun expects an argument-sort list: %s", n.String())
			}
			for _, s := range n.List[2].List {
				sort, err := b.resolveSort(s)
				if err != nil {
					return err
				}
				argSorts = append(argSorts, sort)
			}
			if len(n.List) != 4 {
				return fmt.Errorf("sexpr: declare-fun expects exactly one return sort: %s", n.String())
			}
			retNode = n.List[3]
		}
		ret, err := b.resolveSort(retNode)
		if err != nil {
			return err
		}
		b.funcs[name] = funcSig{ArgSorts: argSorts, Ret: ret}
		return nil
	case "assume", "step":
		// Some problem files inline their assumptions; treat them the
		// same as proof commands so a single combined file still works.
		return b.commandTop(n)
	default:
		return fmt.Errorf("sexpr: unrecognized declaration %q", head)
	}
}

func (b *builder) resolveSort(n Node) (alethe.Sort, error) {
	if !n.IsAtom() {
		return nil, fmt.Errorf("sexpr: expected a sort name, got %s", n.String())
	}
	if s, ok := b.sorts[n.Atom]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("sexpr: unknown sort %q", n.Atom)
}

func (b *builder) commandTop(n Node) error {
	if !n.IsList() || len(n.List) == 0 || !n.List[0].IsAtom() {
		return fmt.Errorf("sexpr: expected a proof command, got %s", n.String())
	}
	switch n.List[0].Atom {
	case "assume":
		if len(n.List) != 3 {
			return fmt.Errorf("sexpr: assume expects an id and a term: %s", n.String())
		}
		id := n.List[1].Atom
		term, err := b.term(n.List[2])
		if err != nil {
			return err
		}
		cmd := &alethe.Assume{ID: id, Term: term}
		b.idIndex[id] = len(b.proof)
		b.proof = append(b.proof, cmd)
		return nil
	case "step":
		return b.step(n)
	default:
		return fmt.Errorf("sexpr: unrecognized proof command %q", n.List[0].Atom)
	}
}

func (b *builder) step(n Node) error {
	if len(n.List) < 4 {
		return fmt.Errorf("sexpr: step expects an id, a clause, and :rule: %s", n.String())
	}
	id := n.List[1].Atom
	clauseNode := n.List[2]
	if !clauseNode.IsList() || len(clauseNode.List) == 0 || clauseNode.List[0].Atom != "cl" {
		return fmt.Errorf("sexpr: step expects (cl ...) as its clause: %s", n.String())
	}
	var clause alethe.Clause
	for _, t := range clauseNode.List[1:] {
		h, err := b.term(t)
		if err != nil {
			return err
		}
		clause = append(clause, h)
	}

	step := &alethe.Step{ID: id, Clause: clause}

	i := 3
	for i < len(n.List) {
		key := n.List[i]
		if !key.IsAtom() || !strings.HasPrefix(key.Atom, ":") {
			return fmt.Errorf("sexpr: expected a :keyword in step %s, got %s", id, key.String())
		}
		if i+1 >= len(n.List) {
			return fmt.Errorf("sexpr: %s in step %s has no value", key.Atom, id)
		}
		val := n.List[i+1]
		switch key.Atom {
		case ":rule":
			step.Rule = val.Atom
		case ":premises":
			if !val.IsList() {
				return fmt.Errorf("sexpr: :premises expects a list in step %s", id)
			}
			for _, p := range val.List {
				idx, ok := b.idIndex[p.Atom]
				if !ok {
					return fmt.Errorf("sexpr: step %s references unknown premise %q", id, p.Atom)
				}
				step.Premises = append(step.Premises, idx)
			}
		case ":args":
			if !val.IsList() {
				return fmt.Errorf("sexpr: :args expects a list in step %s", id)
			}
			for _, a := range val.List {
				arg, err := b.arg(a)
				if err != nil {
					return err
				}
				step.Args = append(step.Args, arg)
			}
		default:
			return fmt.Errorf("sexpr: unrecognized step keyword %q", key.Atom)
		}
		i += 2
	}
	if step.Rule == "" {
		return fmt.Errorf("sexpr: step %s is missing :rule", id)
	}

	b.idIndex[id] = len(b.proof)
	b.proof = append(b.proof, step)
	return nil
}

func (b *builder) arg(n Node) (alethe.ProofArg, error) {
	if n.IsList() && len(n.List) == 3 && n.List[0].IsAtom() && n.List[0].Atom == ":=" {
		name := n.List[1].Atom
		val, err := b.term(n.List[2])
		if err != nil {
			return nil, err
		}
		return alethe.AssignArg{Name: name, Value: val}, nil
	}
	t, err := b.term(n)
	if err != nil {
		return nil, err
	}
	return alethe.TermArg{Term: t}, nil
}

func (b *builder) term(n Node) (alethe.Handle, error) {
	if n.IsAtom() {
		return b.atomTerm(n)
	}
	if len(n.List) == 0 {
		return nil, fmt.Errorf("sexpr: empty term")
	}
	head := n.List[0]
	if head.IsAtom() && (head.Atom == "forall" || head.Atom == "exists") {
		return b.quantifierTerm(head.Atom, n)
	}
	if !head.IsAtom() {
		return nil, fmt.Errorf("sexpr: expected an operator or function name, got %s", head.String())
	}
	if op, ok := builtinOps[head.Atom]; ok {
		args, err := b.terms(n.List[1:])
		if err != nil {
			return nil, err
		}
		return b.pool.Intern(alethe.NewApp(op, args...)), nil
	}
	// Uninterpreted function application.
	fnTerm, err := b.functionTerm(head.Atom)
	if err != nil {
		return nil, err
	}
	args, err := b.terms(n.List[1:])
	if err != nil {
		return nil, err
	}
	return b.pool.Intern(alethe.NewFnApp(fnTerm, args...)), nil
}

func (b *builder) terms(nodes []Node) ([]alethe.Handle, error) {
	out := make([]alethe.Handle, len(nodes))
	for i, n := range nodes {
		h, err := b.term(n)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

func (b *builder) quantifierTerm(kindWord string, n Node) (alethe.Handle, error) {
	if len(n.List) != 3 || !n.List[1].IsList() {
		return nil, fmt.Errorf("sexpr: %s expects a binding list and a body: %s", kindWord, n.String())
	}
	frame := make(map[string]alethe.Sort)
	var bindings []alethe.Binding
	for _, bn := range n.List[1].List {
		if !bn.IsList() || len(bn.List) != 2 {
			return nil, fmt.Errorf("sexpr: expected a (name sort) binding, got %s", bn.String())
		}
		name := bn.List[0].Atom
		sort, err := b.resolveSort(bn.List[1])
		if err != nil {
			return nil, err
		}
		frame[name] = sort
		bindings = append(bindings, alethe.Binding{Name: name, Sort: sort})
	}
	b.scope = append(b.scope, frame)
	body, err := b.term(n.List[2])
	b.scope = b.scope[:len(b.scope)-1]
	if err != nil {
		return nil, err
	}
	kind := alethe.Forall
	if kindWord == "exists" {
		kind = alethe.Exists
	}
	return b.pool.Intern(alethe.NewQuant(kind, bindings, body)), nil
}

func (b *builder) functionTerm(name string) (alethe.Handle, error) {
	sig, ok := b.funcs[name]
	if !ok {
		return nil, fmt.Errorf("sexpr: undeclared function %q", name)
	}
	return b.pool.Intern(alethe.NewVar(name, sig.Ret)), nil
}

func (b *builder) atomTerm(n Node) (alethe.Handle, error) {
	if n.IsString {
		return b.pool.Intern(alethe.NewString(n.Atom)), nil
	}
	text := n.Atom
	if iv, ok := new(big.Int).SetString(text, 10); ok {
		return b.pool.Intern(alethe.NewInt(iv)), nil
	}
	if strings.Contains(text, ".") {
		if rv, ok := new(big.Rat).SetString(text); ok {
			return b.pool.Intern(alethe.NewReal(rv)), nil
		}
	}

	// Bound variable in an enclosing quantifier scope shadows a
	// same-named declared constant, lexically.
	for i := len(b.scope) - 1; i >= 0; i-- {
		if sort, ok := b.scope[i][text]; ok {
			return b.pool.Intern(alethe.NewVar(text, sort)), nil
		}
	}

	if sig, ok := b.funcs[text]; ok {
		if len(sig.ArgSorts) != 0 {
			return nil, fmt.Errorf("sexpr: %q is declared with arguments and needs an application", text)
		}
		return b.pool.Intern(alethe.NewVar(text, sig.Ret)), nil
	}

	if text == "true" || text == "false" {
		return b.pool.Intern(alethe.NewVar(text, alethe.Bool)), nil
	}

	return nil, fmt.Errorf("sexpr: unknown identifier %q", text)
}
