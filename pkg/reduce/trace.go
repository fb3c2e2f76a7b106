package reduce

import (
	"golang.org/x/exp/slices"

	"github.com/vic/lambdaeval/pkg/lambda"
)

// TraceEvent is the term produced by one reduction step.
type TraceEvent struct {
	Step int
	Term lambda.Term
}

// EnableTrace records up to capacity steps. Steps past the capacity are
// counted in Stats but not kept.
func (m *Machine) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	m.traceBuf = make([]TraceEvent, 0, capacity)
	m.traceCap = capacity
	m.traceOn = true
}

func (m *Machine) DisableTrace() {
	m.traceOn = false
}

func (m *Machine) TraceSnapshot() []TraceEvent {
	if !m.traceOn {
		return nil
	}
	return slices.Clone(m.traceBuf)
}

func (m *Machine) recordTrace(t lambda.Term) {
	if !m.traceOn || len(m.traceBuf) >= m.traceCap {
		return
	}
	m.traceBuf = append(m.traceBuf, TraceEvent{Step: m.stats.Steps, Term: t})
}
