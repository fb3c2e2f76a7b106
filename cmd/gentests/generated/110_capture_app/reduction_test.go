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

func Test_110_capture_app_Reduction(t *testing.T) {
	helper.CheckLambdaReduction(t, "110_capture_app", input, output)
}
