package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerFoldsRuns(t *testing.T) {
	tm := NewTimer()
	tm.Add("scan", 2*time.Millisecond, 10)
	tm.Add("read", time.Millisecond, 1)
	tm.Add("scan", 3*time.Millisecond, 5)

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(r.Phases))
	}
	if r.Phases[0].Name != "scan" || r.Phases[0].Runs != 2 || r.Phases[0].Items != 15 {
		t.Fatalf("unexpected scan phase: %+v", r.Phases[0])
	}
	if r.Phases[0].DurationMS != 5 || r.TotalMS != 6 {
		t.Fatalf("durations: scan=%v total=%v", r.Phases[0].DurationMS, r.TotalMS)
	}
	if s := tm.Summary(); !strings.Contains(s, "runs=2 items=15") || !strings.Contains(s, "total") {
		t.Fatalf("summary:\n%s", s)
	}
}

func TestTimerTrackConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stop := tm.Track("scan")
			stop(1)
		}()
	}
	wg.Wait()
	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Runs != 8 || r.Phases[0].Items != 8 {
		t.Fatalf("report = %+v", r)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("x")(3)
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer reported %+v", r)
	}
}
