package alethe

// Clause is the ordered sequence of term handles making up a step's
// conclusion disjunction.
type Clause []Handle

// ProofCommand is the tagged union of the two things a proof can
// contain: an axiom introduction, or an inference step.
type ProofCommand interface {
	commandID() string
}

// Assume introduces an axiom: the asserted term is taken on faith,
// with no verification obligation.
type Assume struct {
	ID   string
	Term Handle
}

func (a *Assume) commandID() string { return a.ID }

// Step is an inference: a conclusion clause justified by a named rule
// applied to a list of premises (indices into the enclosing Proof,
// each strictly less than this step's own index) and a list of
// rule-specific arguments.
type Step struct {
	ID        string
	Clause    Clause
	Rule      string
	Premises  []int
	Args      []ProofArg
}

func (s *Step) commandID() string { return s.ID }

// ProofArg is either a bare term or a (:= name value) assignment, the
// latter used by quantifier-instantiation rules to tie a bound
// variable name to a concrete term.
type ProofArg interface {
	isProofArg()
}

// TermArg is a bare-term proof argument.
type TermArg struct {
	Term Handle
}

func (TermArg) isProofArg() {}

// AssignArg is a (:= name value) proof argument.
type AssignArg struct {
	Name  string
	Value Handle
}

func (AssignArg) isProofArg() {}

// Proof is the ordered sequence of commands the walker checks.
// Premise indices in any Step are required to be strictly less than
// that step's own position in this slice (forward-only references).
type Proof []ProofCommand

// SingleTermOf returns the unique term of a command: the asserted term
// for an Assume, or the sole disjunct of a unit-clause Step; any other
// shape (a non-unit Step) fails. This is the "single_term_of" helper
// shared by every rule whose premises must each denote exactly one
// term (and, and, implies, ite1, ite2, ...).
func SingleTermOf(cmd ProofCommand) (Handle, bool) {
	switch c := cmd.(type) {
	case *Assume:
		return c.Term, true
	case *Step:
		if len(c.Clause) == 1 {
			return c.Clause[0], true
		}
	}
	return nil, false
}

// ClauseOf returns a command's conclusion clause: the Assume's term as
// a singleton clause, or the Step's clause verbatim.
func ClauseOf(cmd ProofCommand) Clause {
	switch c := cmd.(type) {
	case *Assume:
		return Clause{c.Term}
	case *Step:
		return c.Clause
	}
	return nil
}
