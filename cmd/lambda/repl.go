package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

const replHelp = `REPL commands:
  :quit             Exit the REPL
  :steps <n>        Set the reduction step bound
  :trace on|off     Print intermediate terms
  :stats on|off     Print reduction statistics
  :help             Show this help
`

var errQuit = errors.New("quit")

// session is the REPL state that outlives a single line.
type session struct {
	s      *settings
	stdout io.Writer
	stderr io.Writer
}

// handle evaluates one line of input. It returns errQuit when the user asks
// to leave; evaluation errors are reported and swallowed.
func (r *session) handle(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, ":") {
		_ = evaluate(line, r.s, r.stdout, r.stderr)
		return nil
	}

	fields := strings.Fields(line)
	switch cmd := strings.ToLower(fields[0]); cmd {
	case ":quit", ":q":
		return errQuit
	case ":help":
		fmt.Fprint(r.stdout, replHelp)
	case ":steps":
		if len(fields) != 2 {
			fmt.Fprintf(r.stdout, "max steps: %d\n", r.s.opts.MaxSteps)
			return nil
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			fmt.Fprintf(r.stderr, "Error: :steps wants a non-negative integer, got %q\n", fields[1])
			return nil
		}
		r.s.opts.MaxSteps = n
	case ":trace":
		on, ok := parseSwitch(fields)
		if !ok {
			fmt.Fprintf(r.stderr, "Error: usage: :trace on|off\n")
			return nil
		}
		r.s.opts.Trace = 0
		if on {
			r.s.opts.Trace = max(r.s.opts.MaxSteps, 1)
		}
	case ":stats":
		on, ok := parseSwitch(fields)
		if !ok {
			fmt.Fprintf(r.stderr, "Error: usage: :stats on|off\n")
			return nil
		}
		r.s.cfg.Stats = on
	default:
		fmt.Fprintf(r.stderr, "unknown command %s. Type :help for help.\n", cmd)
	}
	return nil
}

func parseSwitch(fields []string) (on, ok bool) {
	if len(fields) != 2 {
		return false, false
	}
	switch strings.ToLower(fields[1]) {
	case "on":
		return true, true
	case "off":
		return false, true
	default:
		return false, false
	}
}

func cmdRepl(args []string, stdout, stderr io.Writer) int {
	s, rest, err := parseFlags("repl", args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if len(rest) != 0 {
		fmt.Fprintf(stderr, "usage: %s repl [flags]\n", appName)
		return 2
	}

	fmt.Fprintf(stdout, "lambda %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", Version)

	histPath := s.cfg.HistoryFile
	if !filepath.IsAbs(histPath) {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, histPath)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	r := &session{s: s, stdout: stdout, stderr: stderr}
	for {
		line, err := ln.Prompt(s.cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D
			fmt.Fprintln(stdout)
			return 0
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if err := r.handle(line); errors.Is(err, errQuit) {
			return 0
		}
	}
}
