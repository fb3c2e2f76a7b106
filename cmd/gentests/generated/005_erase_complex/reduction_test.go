package gentests

import (
	_ "embed"
	"testing"

	"github.com/vic/lambdaeval/cmd/gentests/helper"
)

//go:embed input.lc
var input string

//go:embed output.lc
var output string

func Test_005_erase_complex_Reduction(t *testing.T) {
	helper.CheckLambdaReduction(t, "005_erase_complex", input, output)
}
