package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/lambdaeval/pkg/lambda"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
}

const testTemplate = `package gentests

import (
	_ "embed"
	"testing"

	"github.com/vic/lambdaeval/cmd/gentests/helper"
)

//go:embed input.lc
var input string

//go:embed output.lc
var output string

func Test_%s_Reduction(t *testing.T) {
	helper.CheckLambdaReduction(t, "%s", input, output)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", "λx.x", "λy.y"},
		{"002_id_id", "(λx.x λy.y)", "λz.z"},

		// K Combinator (Erasure)
		{"003_k_1", "((λx.λy.x a) b)", "a"},
		{"004_k_2", "((λx.λy.y a) b)", "b"},
		{"005_erase_complex", "((λx.λy.x a) (λz.z b))", "a"},

		// S Combinator
		{"006_s_1", "(((λx.λy.λz.((x z) (y z)) λa.λb.a) λc.λd.c) e)", "e"},

		// Church Numerals
		{"010_zero", "((λf.λx.x f) x)", "x"},
		{"011_one", "((λf.λx.(f x) f) x)", "(f x)"},
		{"012_two", "((λf.λx.(f (f x)) f) x)", "(f (f x))"},

		// Logic
		{"022_not_true", "(((λb.((b λx.λy.y) λx.λy.x) λx.λy.x) a) b)", "b"},
		{"025_and_true_false", "((((λp.λq.((p q) p) λx.λy.x) λx.λy.y) a) b)", "b"},

		// Pairs
		{"030_pair_fst", "(λp.(p λx.λy.x) ((λx.λy.λf.((f x) y) a) b))", "a"},

		// Sharing
		{"051_share_app", "(λf.(f (f x)) λy.y)", "x"},
		{"070_share_complex", "(λx.(x (x a)) λy.y)", "a"},

		// Nested Lambdas
		{"081_nested_app", "((λx.λy.(x y) a) b)", "(a b)"},

		// Free variables
		{"090_free_1", "x", "x"},
		{"091_free_app", "(x y)", "(x y)"},

		// Mixed
		{"100_mixed_1", "(λx.x (λy.y a))", "a"},

		// Capture avoidance
		{"110_capture_app", "((λx.λy.(x y) y) z)", "(y z)"},
		{"111_capture_rename", "(λx.λy.x y)", "λa.y"},
	}

	baseDir := "cmd/gentests/generated"
	os.MkdirAll(baseDir, 0755)

	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		os.MkdirAll(dir, 0755)

		// Normalize Input
		inTerm, err := lambda.Parse(tc.Input)
		if err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}

		// Normalize Output
		outTerm, err := lambda.Parse(tc.Output)
		if err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name)

		os.WriteFile(filepath.Join(dir, "input.lc"), []byte(inTerm.String()+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "output.lc"), []byte(outTerm.String()+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
	}

	fmt.Printf("Generated %d tests\n", len(tests))
}
