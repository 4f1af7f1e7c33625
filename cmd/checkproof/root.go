package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/gitrdm/alethecheck/internal/sexpr"
	"github.com/gitrdm/alethecheck/pkg/alethe"
)

var ruleKeywordPattern = regexp.MustCompile(`:rule\s+([A-Za-z_][A-Za-z0-9_]*)`)

type rootFlags struct {
	printUsedRules    string
	isRuleImplemented string
	strict            bool
	collectAllErrors  bool
	jobs              int
	verbose           bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "checkproof <problem-file> [proof-file]",
		Short: "Verify an Alethe/veriT proof certificate against a problem declaration",
		Long: "checkproof reads a problem declaration and a proof certificate, checks every\n" +
			"step against its named rule, and prints the overall verdict (true/false).",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, f)
		},
	}

	cmd.Flags().StringVar(&f.printUsedRules, "print-used-rules", "", "scan a proof file and print every :rule name it uses, then exit")
	cmd.Flags().StringVar(&f.isRuleImplemented, "is-rule-implemented", "", "print true/false for whether the named rule is implemented, then exit")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "treat an unknown rule name as a fatal error instead of skipping it")
	cmd.Flags().BoolVar(&f.collectAllErrors, "collect-all-errors", false, "keep checking after a failing step instead of stopping at the first")
	cmd.Flags().IntVar(&f.jobs, "jobs", 1, "number of steps to verify concurrently; 1 runs the sequential walker")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "emit per-step debug logging")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string, f rootFlags) error {
	if f.isRuleImplemented != "" {
		fmt.Fprintln(cmd.OutOrStdout(), alethe.IsRuleImplemented(f.isRuleImplemented))
		return nil
	}

	if f.printUsedRules != "" {
		return printUsedRules(cmd, f.printUsedRules)
	}

	if len(args) == 0 {
		return fmt.Errorf("checkproof: a problem file is required")
	}

	problemFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("checkproof: opening problem file: %w", err)
	}
	defer problemFile.Close()

	var proofReader io.Reader = os.Stdin
	if len(args) == 2 {
		proofFile, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("checkproof: opening proof file: %w", err)
		}
		defer proofFile.Close()
		proofReader = proofFile
	}

	proof, pool, err := sexpr.Parse(problemFile, proofReader)
	if err != nil {
		return fmt.Errorf("checkproof: %w", err)
	}

	logger := hclog.NewNullLogger()
	if f.verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "checkproof",
			Level: hclog.Debug,
		})
	}
	cfg := alethe.Config{
		StrictUnknownRules: f.strict,
		CollectAllErrors:   f.collectAllErrors,
		Logger:             logger,
	}

	var verdict alethe.Verdict
	if f.jobs > 1 {
		verdict = alethe.CheckConcurrent(context.Background(), pool, proof, f.jobs, cfg)
	} else {
		verdict = alethe.Check(pool, proof, cfg)
	}

	fmt.Fprintln(cmd.OutOrStdout(), verdict.String())
	return nil
}

func printUsedRules(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("checkproof: reading %s: %w", path, err)
	}
	seen := make(map[string]bool)
	for _, m := range ruleKeywordPattern.FindAllSubmatch(data, -1) {
		seen[string(m[1])] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
