package ui

import (
	"strings"
	"testing"

	"wireweave/internal/driver"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("lint", []string{"a.ww", "b.ww"}, events).(*progressModel)

	m.Update(eventMsg(driver.Event{File: "a.ww", Stage: driver.StageValidate, Status: driver.StatusWorking}))
	if m.items[0].status != "validating" {
		t.Fatalf("status = %q", m.items[0].status)
	}
	m.Update(eventMsg(driver.Event{File: "a.ww", Stage: driver.StageValidate, Status: driver.StatusDone, Diagnostics: 3}))
	m.Update(eventMsg(driver.Event{File: "b.ww", Stage: driver.StageCache, Status: driver.StatusDone}))
	m.Update(eventMsg(driver.Event{File: "unknown.ww", Status: driver.StatusDone}))

	if m.finished() != 2 {
		t.Errorf("finished = %d, want 2", m.finished())
	}
	view := m.View()
	for _, want := range []string{"lint (2/2)", "a.ww", "3 diagnostics", "cached"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	_, cmd := m.Update(doneMsg{})
	if cmd == nil || !m.done {
		t.Error("doneMsg must quit")
	}
	if !strings.Contains(m.View(), "done: lint") {
		t.Errorf("final view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("very/long/path/name.ww", 10); got != "very..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Errorf("truncate = %q", got)
	}
}
