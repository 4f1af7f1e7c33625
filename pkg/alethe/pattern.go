package alethe

// Pattern matching for term shapes: a Shape is built up from small
// composable pieces and matched against a Term, producing a flat
// tuple of captured handles in declaration order or a failure.
//
// There is no unification here — shapes describe a rigid decomposition
// ("this must be an And with exactly this many arguments") rather than
// a logic-variable binding search, which is all the rule library needs.

// Shape describes a term decomposition. The zero Shape matches nothing;
// use Capture() for "matches anything, bind it."
type Shape struct {
	capture  bool
	op       Op
	hasOp    bool
	variadic bool
	arity    int
	sub      []Shape
}

// Capture builds a leaf shape that matches any term and binds it.
func Capture() Shape {
	return Shape{capture: true}
}

// OpShape builds a shape requiring the term to be an Op application
// with exactly len(sub) arguments, each matching the corresponding
// sub-shape.
func OpShape(op Op, sub ...Shape) Shape {
	return Shape{op: op, hasOp: true, sub: sub, arity: len(sub)}
}

// VariadicOpShape builds a shape matching an Op application of any
// arity, capturing the full argument slice rather than individual
// positions.
func VariadicOpShape(op Op) Shape {
	return Shape{op: op, hasOp: true, variadic: true}
}

// Captures is the result of a successful match: the captured handles
// in declaration order, and — for a shape built with
// VariadicOpShape — the full argument slice of the matched node.
type Captures struct {
	Handles  []Handle
	Variadic []Handle
}

// Match decomposes t against shape, returning its captures or false
// on a mismatch. Matching short-circuits on the first failing
// sub-shape without allocating a Captures.
func Match(shape Shape, t Handle) (Captures, bool) {
	var caps Captures
	if !matchInto(shape, t, &caps) {
		return Captures{}, false
	}
	return caps, true
}

func matchInto(shape Shape, t Handle, caps *Captures) bool {
	if shape.capture {
		caps.Handles = append(caps.Handles, t)
		return true
	}
	th := *t
	if !shape.hasOp {
		return false
	}
	if th.kind != kindOp || th.op != shape.op {
		return false
	}
	if shape.variadic {
		caps.Variadic = th.args
		return true
	}
	if len(th.args) != shape.arity {
		return false
	}
	for i, sub := range shape.sub {
		if !matchInto(sub, th.args[i], caps) {
			return false
		}
	}
	return true
}

// MatchUnary is a convenience for the very common "unary operator
// applied to a captured subterm" shape, returning that subterm.
func MatchUnary(op Op, t Handle) (Handle, bool) {
	caps, ok := Match(OpShape(op, Capture()), t)
	if !ok {
		return nil, false
	}
	return caps.Handles[0], true
}

// MatchBinary is a convenience for the common "binary operator applied
// to two captured subterms" shape.
func MatchBinary(op Op, t Handle) (Handle, Handle, bool) {
	caps, ok := Match(OpShape(op, Capture(), Capture()), t)
	if !ok {
		return nil, nil, false
	}
	return caps.Handles[0], caps.Handles[1], true
}

// MatchVariadic matches t as an application of op with any arity,
// returning its argument slice.
func MatchVariadic(op Op, t Handle) ([]Handle, bool) {
	caps, ok := Match(VariadicOpShape(op), t)
	if !ok {
		return nil, false
	}
	return caps.Variadic, true
}
