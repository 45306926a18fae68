package main

import (
	"errors"
	"testing"
	"time"
)

func TestRunnerCompletes(t *testing.T) {
	table := GenerateCandidates(2)
	r := NewRunner(0)
	r.Start(table, table, InitializeState([]QubitAngles{{}}), []Target{{Radius: 1}})

	var final RunnerEvent
	for ev := range r.Events() {
		if ev.Done {
			final = ev
		}
	}

	if !final.Done {
		t.Fatal("event stream closed without a terminal event")
	}
	if final.Err != nil {
		t.Fatalf("unexpected error: %v", final.Err)
	}
	if final.Result == nil || len(final.Result.Reports) != 1 {
		t.Errorf("terminal event carries no result: %+v", final)
	}
	if final.ID != r.ID {
		t.Errorf("event ID %v does not match runner %v", final.ID, r.ID)
	}
}

func TestRunnerCancel(t *testing.T) {
	table := GenerateCandidates(4)
	r := NewRunner(time.Millisecond)
	r.Cancel() // stop before the first checkpoint

	r.Start(table, table, InitializeState([]QubitAngles{{}, {}}), []Target{{Radius: 1}, {Radius: 1}})

	var final RunnerEvent
	for ev := range r.Events() {
		if ev.Done {
			final = ev
		}
	}

	if !errors.Is(final.Err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", final.Err)
	}
	if final.Result != nil {
		t.Error("canceled runner must not deliver a result")
	}
}

func TestRunnerFeasibilityError(t *testing.T) {
	table := GenerateCandidates(2)
	r := NewRunner(0)
	r.Start(table, table, InitializeState([]QubitAngles{{}}), []Target{{Radius: 0.5}})

	var final RunnerEvent
	for ev := range r.Events() {
		if ev.Done {
			final = ev
		}
	}

	var fe *FeasibilityError
	if !errors.As(final.Err, &fe) {
		t.Fatalf("expected FeasibilityError, got %v", final.Err)
	}
}
