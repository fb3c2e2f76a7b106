package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/vic/lambdaeval/pkg/config"
	"github.com/vic/lambdaeval/pkg/eval"
)

const appName = "lambda"

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	switch cmd := args[0]; cmd {
	case "eval":
		return cmdEval(args[1:], stdout, stderr)
	case "run":
		return cmdRun(args[1:], stdin, stdout, stderr)
	case "repl":
		return cmdRepl(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, Version)
		return 0
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "%s: unknown command %q\n", appName, cmd)
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  %s eval [flags] <expr>      Evaluate one expression.
  %s run [flags] [file|-]     Evaluate every non-empty line of a file or stdin.
  %s repl [flags]             Start the REPL.
  %s version                  Print the version.

Flags:
  -config <path>     settings file (default %s if present)
  -max-steps <n>     reduction step bound
  -stats             print reduction statistics to stderr
  -trace <n>         print up to n intermediate terms to stderr
`, appName, appName, appName, appName, config.DefaultFile)
}

// settings is the config file merged with the subcommand flags.
type settings struct {
	cfg  *config.Config
	opts eval.Options
}

func parseFlags(name string, args []string, stderr io.Writer) (*settings, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "settings file")
	maxSteps := fs.Int("max-steps", -1, "reduction step bound")
	stats := fs.Bool("stats", false, "print reduction statistics")
	trace := fs.Int("trace", -1, "number of intermediate terms to print")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, nil, err
	}
	if *maxSteps >= 0 {
		cfg.MaxSteps = *maxSteps
	}
	if *trace >= 0 {
		cfg.Trace = *trace
	}
	if *stats {
		cfg.Stats = true
	}
	return &settings{
		cfg:  cfg,
		opts: eval.Options{MaxSteps: cfg.MaxSteps, Trace: cfg.Trace},
	}, fs.Args(), nil
}

func cmdEval(args []string, stdout, stderr io.Writer) int {
	s, rest, err := parseFlags("eval", args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if len(rest) != 1 {
		fmt.Fprintf(stderr, "usage: %s eval [flags] <expr>\n", appName)
		return 2
	}
	if err := evaluate(rest[0], s, stdout, stderr); err != nil {
		return 1
	}
	return 0
}

func cmdRun(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	s, rest, err := parseFlags("run", args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	var input []byte
	switch {
	case len(rest) > 1:
		fmt.Fprintf(stderr, "usage: %s run [flags] [file|-]\n", appName)
		return 2
	case len(rest) == 1 && rest[0] != "-":
		input, err = os.ReadFile(rest[0])
		if err != nil {
			fmt.Fprintf(stderr, "Error reading file: %v\n", err)
			return 1
		}
	default:
		input, err = io.ReadAll(bufio.NewReader(stdin))
		if err != nil {
			fmt.Fprintf(stderr, "Error reading stdin: %v\n", err)
			return 1
		}
	}

	lines := lo.Filter(strings.Split(string(input), "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	for _, line := range lines {
		if err := evaluate(line, s, stdout, stderr); err != nil {
			return 1
		}
	}
	return 0
}

// evaluate prints the normal form of program to stdout and diagnostics to
// stderr. The returned error has already been reported.
func evaluate(program string, s *settings, stdout, stderr io.Writer) error {
	start := time.Now()
	res, err := eval.Run(program, s.opts)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	for _, ev := range res.Trace {
		fmt.Fprintf(stderr, "%4d: %s\n", ev.Step, ev.Term)
	}
	fmt.Fprintln(stdout, res.Text)
	if s.cfg.Stats {
		printStats(stderr, res, elapsed)
	}
	return nil
}

func printStats(w io.Writer, res *eval.Result, elapsed time.Duration) {
	stats := res.Stats
	outcome := "normal form"
	if !stats.Normal {
		outcome = "step limit reached"
	}

	fmt.Fprintf(w, "\nStats:\n")
	fmt.Fprintf(w, "Time: %v\n", elapsed)
	fmt.Fprintf(w, "Steps: %d (%s)\n", stats.Steps, outcome)
	fmt.Fprintf(w, "\nBreakdown:\n")
	fmt.Fprintf(w, "  Beta Reductions:   %6d\n", stats.BetaReductions)
	fmt.Fprintf(w, "  Alpha Conversions: %6d\n", stats.AlphaConversions)
	fmt.Fprintf(w, "  Substitutions:     %6d\n", stats.Substitutions)
}
