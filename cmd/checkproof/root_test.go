package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRuleImplementedFlag(t *testing.T) {
	cases := []struct {
		rule string
		want string
	}{
		{"eq_reflexive", "true"},
		{"resolution", "true"},
		{"not_a_real_rule", "false"},
	}
	for _, tc := range cases {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--is-rule-implemented", tc.rule})
		require.NoError(t, cmd.Execute())
		require.Equal(t, tc.want, strings.TrimSpace(out.String()))
	}
}

func TestPrintUsedRulesFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proof.smt2")
	content := "(step t1 (cl (= a a)) :rule eq_reflexive)\n" +
		"(step t2 (cl (= b b)) :rule eq_reflexive)\n" +
		"(step t3 (cl) :rule resolution :premises (t1 t2))\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--print-used-rules", path})
	require.NoError(t, cmd.Execute())

	lines := strings.Fields(out.String())
	require.Equal(t, []string{"eq_reflexive", "resolution"}, lines)
}

func TestRunRootChecksASimpleProof(t *testing.T) {
	dir := t.TempDir()
	problemPath := filepath.Join(dir, "problem.smt2")
	proofPath := filepath.Join(dir, "proof.smt2")
	require.NoError(t, os.WriteFile(problemPath, []byte("(declare-fun a () Bool)\n"), 0o644))
	require.NoError(t, os.WriteFile(proofPath, []byte("(step t1 (cl (= a a)) :rule eq_reflexive)\n"), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{problemPath, proofPath})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "true", strings.TrimSpace(out.String()))
}

func TestRunRootReportsAFailingStep(t *testing.T) {
	dir := t.TempDir()
	problemPath := filepath.Join(dir, "problem.smt2")
	proofPath := filepath.Join(dir, "proof.smt2")
	require.NoError(t, os.WriteFile(problemPath, []byte("(declare-fun a () Bool)\n(declare-fun b () Bool)\n"), 0o644))
	require.NoError(t, os.WriteFile(proofPath, []byte("(step t1 (cl (= a b)) :rule eq_reflexive)\n"), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{problemPath, proofPath})
	require.NoError(t, cmd.Execute())
	require.True(t, strings.HasPrefix(strings.TrimSpace(out.String()), "false (step t1, rule eq_reflexive:"))
}
