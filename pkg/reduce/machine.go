package reduce

import "github.com/vic/lambdaeval/pkg/lambda"

// Machine runs the reduction engine and records what it did. A Machine is
// not safe for concurrent use; the package-level functions each use their
// own.
type Machine struct {
	stats Stats

	traceBuf []TraceEvent
	traceCap int
	traceOn  bool
}

// Stats holds reduction statistics.
type Stats struct {
	Steps            int  // reduction steps taken
	BetaReductions   int  // redexes fired, several may fire in one step
	AlphaConversions int  // binders renamed to avoid capture
	Substitutions    int  // variable occurrences replaced by an argument
	Normal           bool // the last term returned had no redex
}

func NewMachine() *Machine {
	return &Machine{}
}

func (m *Machine) GetStats() Stats {
	return m.stats
}

// ResetStats clears the counters and the trace buffer.
func (m *Machine) ResetStats() {
	m.stats = Stats{}
	m.traceBuf = m.traceBuf[:0]
}

// Step performs one reduction step. It reports false, and returns t
// unchanged, when t has no redex.
func (m *Machine) Step(t lambda.Term) (lambda.Term, bool) {
	if !HasRedex(t) {
		m.stats.Normal = true
		return t, false
	}
	next := m.reduce(t)
	m.stats.Steps++
	m.stats.Normal = !HasRedex(next)
	m.recordTrace(next)
	return next, true
}

// Normalize reduces t until it has no redex or maxSteps steps were taken
// in this call.
func (m *Machine) Normalize(t lambda.Term, maxSteps int) lambda.Term {
	m.stats.Normal = !HasRedex(t)
	for steps := 0; steps < maxSteps; steps++ {
		next, ok := m.Step(t)
		if !ok {
			break
		}
		t = next
	}
	return t
}
