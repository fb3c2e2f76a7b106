package reduce_test

import (
	"fmt"

	"github.com/vic/lambdaeval/pkg/lambda"
	"github.com/vic/lambdaeval/pkg/reduce"
)

// ExampleSubstitute shows the binder being renamed so that the substituted
// y stays free.
func ExampleSubstitute() {
	body, _ := lambda.Parse("λy.x")
	fmt.Println(reduce.Substitute(lambda.Var{Name: 'y'}, lambda.Var{Name: 'x'}, body))
	// Output: λz.y
}

func ExampleNormalize() {
	term, _ := lambda.Parse("(λx.(λy.x) z)")
	fmt.Println(reduce.Normalize(term, reduce.DefaultMaxSteps))
	// Output: λy.z
}

func ExampleMachine() {
	omega, _ := lambda.Parse("(λx.(x x) λx.(x x))")

	m := reduce.NewMachine()
	result := m.Normalize(omega, 100)
	stats := m.GetStats()
	fmt.Println(result, stats.Steps, stats.Normal)
	// Output: (λx.(xx)λx.(xx)) 100 false
}
