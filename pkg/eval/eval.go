// Package eval turns program text into the text of its normal form.
package eval

import (
	"fmt"

	"github.com/vic/lambdaeval/pkg/lambda"
	"github.com/vic/lambdaeval/pkg/reduce"
)

// Options controls a single evaluation.
type Options struct {
	MaxSteps int // reduction step bound; negative means zero
	Trace    int // number of intermediate terms to keep, 0 disables tracing
}

// Result is everything one evaluation produced.
type Result struct {
	Input  lambda.Term
	Output lambda.Term
	Text   string
	Stats  reduce.Stats
	Trace  []reduce.TraceEvent
}

// DefaultOptions returns the options used by Evaluate.
func DefaultOptions() Options {
	return Options{MaxSteps: reduce.DefaultMaxSteps}
}

// Evaluate parses program, normalizes it within reduce.DefaultMaxSteps
// steps and renders the result.
func Evaluate(program string) (string, error) {
	return EvaluateWithLimit(program, reduce.DefaultMaxSteps)
}

// EvaluateWithLimit is Evaluate with an explicit step bound.
func EvaluateWithLimit(program string, maxSteps int) (string, error) {
	res, err := Run(program, Options{MaxSteps: maxSteps})
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Run evaluates program and reports the intermediate data as well as the
// output. Lexer and parser errors are wrapped and remain matchable with
// errors.Is against lambda.ErrInvalidCharacter and lambda.ErrMalformedInput.
func Run(program string, opts Options) (*Result, error) {
	tokens, err := lambda.Tokenize(program)
	if err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}
	input, err := lambda.ParseTokens(tokens)
	if err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}

	m := reduce.NewMachine()
	if opts.Trace > 0 {
		m.EnableTrace(opts.Trace)
	}
	output := m.Normalize(input, opts.MaxSteps)

	return &Result{
		Input:  input,
		Output: output,
		Text:   lambda.Untokenize(lambda.Unparse(output)),
		Stats:  m.GetStats(),
		Trace:  m.TraceSnapshot(),
	}, nil
}
