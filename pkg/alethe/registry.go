package alethe

import "sort"

// Registry maps Alethe rule names to their implementations. th_resolution
// maps to the same function as resolution; eq_congruent_pred maps to a
// separate instance of the eq_congruent implementation that differs
// only in the rule name it reports in errors.
var Registry = map[string]Rule{
	"eq_reflexive":      EqReflexive,
	"eq_transitive":     EqTransitive,
	"eq_congruent":      EqCongruent,
	"eq_congruent_pred": EqCongruentPred,
	"not_not":           NotNot,
	"equiv_pos1":        EquivPos1,
	"equiv_pos2":        EquivPos2,
	"and":               And,
	"or":                Or,
	"implies":           Implies,
	"ite1":              Ite1,
	"ite2":              Ite2,
	"ite_intro":         IteIntro,
	"distinct_elim":     DistinctElim,
	"nary_elim":         NaryElim,
	"resolution":        Resolution,
	"th_resolution":     Resolution,
	"contraction":       Contraction,
	"forall_inst":       ForallInst,
	"qnt_join":          QntJoin,
	"qnt_rm_unused":     QntRmUnused,
}

// LookupRule returns the rule registered under name, or (nil, false)
// if the name is unknown.
func LookupRule(name string) (Rule, bool) {
	r, ok := Registry[name]
	return r, ok
}

// IsRuleImplemented reports whether name has a registered
// implementation, backing the --is-rule-implemented CLI flag.
func IsRuleImplemented(name string) bool {
	_, ok := Registry[name]
	return ok
}

// RuleNames returns the sorted set of registered rule names, i.e.
// every rule the checker can verify.
func RuleNames() []string {
	names := make([]string, 0, len(Registry))
	for n := range Registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
