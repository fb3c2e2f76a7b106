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

func Test_002_id_id_Reduction(t *testing.T) {
	helper.CheckLambdaReduction(t, "002_id_id", input, output)
}
