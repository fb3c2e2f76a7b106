package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/vic/lambdaeval/pkg/lambda"
	"github.com/vic/lambdaeval/pkg/reduce"
)

// CheckLambdaReduction normalizes inputStr and compares the result with
// outputStr up to renaming of bound variables. Free variables must match
// by name.
func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	t.Helper()

	expectedTerm, err := lambda.Parse(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	term, err := lambda.Parse(strings.TrimSpace(inputStr))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	m := reduce.NewMachine()
	start := time.Now()
	actualTerm := m.Normalize(term, reduce.DefaultMaxSteps)
	elapsed := time.Since(start)

	stats := m.GetStats()
	if !stats.Normal {
		t.Errorf("%s: no normal form within %d steps, stopped at %s", testName, reduce.DefaultMaxSteps, actualTerm)
	}
	if !lambda.AlphaEqual(actualTerm, expectedTerm) {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s", testName, term, expectedTerm, actualTerm)
	}

	t.Logf("%s: %d steps, %d beta, %d alpha in %v", testName, stats.Steps, stats.BetaReductions, stats.AlphaConversions, elapsed)
}
