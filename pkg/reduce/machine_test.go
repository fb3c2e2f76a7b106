package reduce

import (
	"sync"
	"testing"

	"github.com/vic/lambdaeval/pkg/lambda"
)

func TestMachineStats(t *testing.T) {
	cases := []struct {
		src   string
		limit int
		want  Stats
	}{
		{"x", 100, Stats{Normal: true}},
		{"(λx.x y)", 100, Stats{Steps: 1, BetaReductions: 1, Substitutions: 1, Normal: true}},
		{"(λx.λy.x y)", 100, Stats{Steps: 1, BetaReductions: 1, AlphaConversions: 1, Substitutions: 1, Normal: true}},
		// two independent redexes fire in one step
		{"((λx.x a) (λy.y b))", 1, Stats{Steps: 1, BetaReductions: 2, Substitutions: 2, Normal: true}},
		{"((λx.λy.x a) b)", 1, Stats{Steps: 1, BetaReductions: 1, Substitutions: 1, Normal: false}},
		{"((λx.λy.x a) b)", 100, Stats{Steps: 2, BetaReductions: 2, Substitutions: 1, Normal: true}},
	}
	for _, tc := range cases {
		m := NewMachine()
		m.Normalize(parse(t, tc.src), tc.limit)
		if got := m.GetStats(); got != tc.want {
			t.Errorf("%s (limit %d): stats %+v, expected %+v", tc.src, tc.limit, got, tc.want)
		}
	}
}

func TestMachineStep(t *testing.T) {
	m := NewMachine()
	term := parse(t, "((λx.λy.x a) b)")

	next, ok := m.Step(term)
	if !ok || next.String() != "(λy.ab)" {
		t.Fatalf("first step: %s, %v", next, ok)
	}
	next, ok = m.Step(next)
	if !ok || next.String() != "a" {
		t.Fatalf("second step: %s, %v", next, ok)
	}
	last, ok := m.Step(next)
	if ok || !lambda.Equal(last, next) {
		t.Fatalf("normal form should not step: %s, %v", last, ok)
	}
	if steps := m.GetStats().Steps; steps != 2 {
		t.Errorf("expected 2 steps, got %d", steps)
	}
}

func TestMachineResetStats(t *testing.T) {
	m := NewMachine()
	m.EnableTrace(10)
	m.Normalize(parse(t, "((λx.λy.x a) b)"), 100)
	m.ResetStats()

	if got := m.GetStats(); got != (Stats{}) {
		t.Errorf("expected zero stats after reset, got %+v", got)
	}
	if got := m.TraceSnapshot(); len(got) != 0 {
		t.Errorf("expected an empty trace after reset, got %v", got)
	}
}

func TestTrace(t *testing.T) {
	m := NewMachine()
	m.EnableTrace(10)
	m.Normalize(parse(t, "((λx.λy.x a) b)"), 100)

	events := m.TraceSnapshot()
	want := []string{"(λy.ab)", "a"}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i, ev := range events {
		if ev.Step != i+1 || ev.Term.String() != want[i] {
			t.Errorf("event %d: got step %d %s, expected step %d %s", i, ev.Step, ev.Term, i+1, want[i])
		}
	}
}

func TestTraceCapacity(t *testing.T) {
	m := NewMachine()
	m.EnableTrace(3)
	m.Normalize(parse(t, "(λx.(x x) λx.(x x))"), 50)

	if got := len(m.TraceSnapshot()); got != 3 {
		t.Errorf("expected the trace to stop at 3 events, got %d", got)
	}
	if got := m.GetStats().Steps; got != 50 {
		t.Errorf("steps past the trace capacity must still count, got %d", got)
	}

	m.DisableTrace()
	if got := m.TraceSnapshot(); got != nil {
		t.Errorf("expected no trace once disabled, got %v", got)
	}
}

func TestTraceSnapshotIsACopy(t *testing.T) {
	m := NewMachine()
	m.EnableTrace(4)
	m.Normalize(parse(t, "(λx.x y)"), 100)

	snap := m.TraceSnapshot()
	snap[0].Step = 99
	if m.TraceSnapshot()[0].Step != 1 {
		t.Errorf("modifying a snapshot changed the machine's trace")
	}
}

// TestNormalizeConcurrentCallers: package-level calls share no state.
func TestNormalizeConcurrentCallers(t *testing.T) {
	term := parse(t, "(((λx.λy.λz.((x z) (y z)) λa.λb.a) λc.λd.c) e)")
	want := Normalize(term, DefaultMaxSteps)

	var wg sync.WaitGroup
	results := make([]lambda.Term, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Normalize(term, DefaultMaxSteps)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !lambda.Equal(got, want) {
			t.Errorf("caller %d: got %s, expected %s", i, got, want)
		}
	}
}
