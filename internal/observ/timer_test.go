package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAggregatesByName(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("validate", time.Millisecond)
		}()
	}
	wg.Wait()
	tm.Add("load", 2*time.Millisecond)

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %+v", r.Phases)
	}
	if r.Phases[0].Name != "validate" || r.Phases[0].Count != 8 || r.Phases[0].DurationMS != 8 {
		t.Errorf("validate phase = %+v", r.Phases[0])
	}
	if r.Phases[1].Name != "load" || r.Phases[1].DurationMS != 2 {
		t.Errorf("load phase = %+v", r.Phases[1])
	}

	s := tm.Summary()
	for _, want := range []string{"timings:", "validate", "(x8)", "wall"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	stop := tm.Track("x")
	stop()
	tm.Add("y", time.Second)
}
