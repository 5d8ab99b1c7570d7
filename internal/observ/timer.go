package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase records the accumulated duration of a lint phase.
type Phase struct {
	Name  string
	Dur   time.Duration
	Count int
}

// Timer accumulates phase durations. Phases with the same name are summed,
// so parallel workers can share one Timer. Safe for concurrent use.
type Timer struct {
	mu     sync.Mutex
	start  time.Time
	phases []Phase
	index  map[string]int
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now(), phases: make([]Phase, 0, 8), index: make(map[string]int)}
}

// Track starts measuring name; the returned func stops it.
func (t *Timer) Track(name string) func() {
	if t == nil {
		return func() {}
	}
	begin := time.Now()
	return func() { t.Add(name, time.Since(begin)) }
}

// Add records d under name.
func (t *Timer) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	idx, ok := t.index[name]
	if !ok {
		idx = len(t.phases)
		t.index[name] = idx
		t.phases = append(t.phases, Phase{Name: name})
	}
	t.phases[idx].Dur += d
	t.phases[idx].Count++
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	WallMS float64       `json:"wall_ms"`
	Phases []PhaseReport `json:"phases"`
}

// Report формирует срез фаз (в порядке первого появления) и время с момента создания.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	report := Report{
		WallMS: durationToMillis(time.Since(t.start)),
		Phases: make([]PhaseReport, len(t.phases)),
	}
	for i, phase := range t.phases {
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Count:      phase.Count,
		}
	}
	return report
}

// Summary returns a human-readable string summarizing all tracked phases.
// Phase durations are summed over workers and may exceed wall time.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-12s %9.2f ms  (x%d)\n", p.Name, p.DurationMS, p.Count)
	}
	fmt.Fprintf(&b, "  %-12s %9.2f ms\n", "wall", report.WallMS)
	return b.String()
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
