// Package observ collects per-phase timings for the driver (read, scan,
// regexcheck, roundtrip). A Timer is safe for use by parallel file workers:
// phases with the same name are folded into one row.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase aggregates every run of one named phase.
type Phase struct {
	Name  string
	Runs  int
	Dur   time.Duration
	Items int
}

type Timer struct {
	mu     sync.Mutex
	order  []string
	phases map[string]*Phase
	now    func() time.Time
}

func NewTimer() *Timer {
	return &Timer{phases: make(map[string]*Phase, 8), now: time.Now}
}

// Track starts a phase run; the returned func stops it and records how many
// items (files, tokens, diagnostics) the run handled.
func (t *Timer) Track(name string) func(items int) {
	if t == nil {
		return func(int) {}
	}
	start := t.now()
	return func(items int) {
		t.Add(name, t.now().Sub(start), items)
	}
}

// Add records a finished run. Nil timers ignore it.
func (t *Timer) Add(name string, d time.Duration, items int) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.phases[name]
	if !ok {
		p = &Phase{Name: name}
		t.phases[name] = p
		t.order = append(t.order, name)
	}
	p.Runs++
	p.Dur += d
	p.Items += items
}

// Summary renders the report as an aligned table.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-12s %9.3f ms  runs=%d", p.Name, p.DurationMS, p.Runs)
		if p.Items > 0 {
			fmt.Fprintf(&b, " items=%d", p.Items)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %9.3f ms\n", "total", report.TotalMS)
	return b.String()
}

// PhaseReport: сжатая информация о фазе для сериализации.
type PhaseReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Runs       int     `json:"runs" msgpack:"runs"`
	Items      int     `json:"items,omitempty" msgpack:"items,omitempty"`
}

type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms"`
	Phases  []PhaseReport `json:"phases" msgpack:"phases"`
}

// Report returns phases in first-seen order. Total is the sum of phase
// durations, so parallel runs may exceed wall-clock time.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.order) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, 0, len(t.order))}
	var total time.Duration
	for _, name := range t.order {
		p := t.phases[name]
		total += p.Dur
		report.Phases = append(report.Phases, PhaseReport{
			Name:       p.Name,
			DurationMS: durationToMillis(p.Dur),
			Runs:       p.Runs,
			Items:      p.Items,
		})
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
