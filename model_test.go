package main

import (
	"fmt"
	"testing"
)

func TestUpdateRunnerCanceled(t *testing.T) {
	// A cancellation surfacing through the runner, even wrapped, must route
	// back to the setup screen instead of the failure view.
	m := initialModel()
	m.focus = focusRunning
	m.runner = NewRunner(0)

	ev := runnerEventMsg{Done: true, Err: fmt.Errorf("runner stopped: %w", ErrCanceled)}
	next, _ := m.Update(ev)
	updated := next.(Model)

	if updated.focus != focusSetup {
		t.Errorf("focus = %v, want focusSetup", updated.focus)
	}
	if updated.statusMsg == "" {
		t.Error("expected a status message after cancellation")
	}
	if updated.runner != nil {
		t.Error("runner reference should be cleared")
	}
}

func TestUpdateRunnerFailure(t *testing.T) {
	m := initialModel()
	m.focus = focusRunning
	m.runner = NewRunner(0)

	feErr := &FeasibilityError{EntangledCount: 1, Qubit: 0, Radius: 0.5}
	next, _ := m.Update(runnerEventMsg{Done: true, Err: feErr})
	updated := next.(Model)

	if updated.focus != focusResult {
		t.Errorf("focus = %v, want focusResult", updated.focus)
	}
	if updated.resultErr == nil {
		t.Error("expected the error to be kept for the result view")
	}
}
