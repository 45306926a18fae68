package main

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// RunnerEvent is one update from a running synthesis: a progress tick, or
// the terminal event carrying the result or error.
type RunnerEvent struct {
	ID      uuid.UUID
	Percent float64
	Done    bool
	Result  *SynthesisResult
	Err     error
}

// Runner hosts one synthesis invocation on its own goroutine. Each caller
// context gets its own Runner with its own candidate-table references and
// progress stream; Runners share nothing, so independent searches can run
// concurrently without locking.
type Runner struct {
	ID       uuid.UUID
	Interval time.Duration // minimum spacing between progress events

	events  chan RunnerEvent
	stopped atomic.Bool
}

// NewRunner creates an idle runner. Interval throttles progress delivery;
// the search itself reports far more often than any UI wants to see.
func NewRunner(interval time.Duration) *Runner {
	return &Runner{
		ID:       uuid.New(),
		Interval: interval,
		events:   make(chan RunnerEvent, 16),
	}
}

// Events is the stream the host consumes. It is closed after the terminal
// event.
func (r *Runner) Events() <-chan RunnerEvent {
	return r.events
}

// Cancel requests a cooperative stop. The search observes it at its next
// progress checkpoint.
func (r *Runner) Cancel() {
	r.stopped.Store(true)
}

// Start launches the synthesis goroutine. The caller must not mutate the
// tables or the initial state while the runner is live.
func (r *Runner) Start(short, long CandidateTable, initial *StateVector, targets []Target) {
	go func() {
		defer close(r.events)

		log.Info("synthesis started",
			"runner", r.ID, "qubits", len(targets), "short", len(short), "long", len(long))

		var lastSent time.Time
		progress := func(pct float64) bool {
			if r.stopped.Load() {
				return false
			}
			now := time.Now()
			if now.Sub(lastSent) < r.Interval {
				return true
			}
			lastSent = now
			if pct > 100 {
				pct = 100
			}
			select {
			case r.events <- RunnerEvent{ID: r.ID, Percent: pct}:
			default:
				// Slow consumer; drop the tick rather than stall the search.
			}
			return true
		}

		result, err := Synthesize(short, long, initial, targets, progress)
		if err != nil {
			log.Info("synthesis finished", "runner", r.ID, "err", err)
			r.events <- RunnerEvent{ID: r.ID, Done: true, Err: err}
			return
		}

		log.Info("synthesis finished",
			"runner", r.ID, "gates", len(result.Gates), "elapsed", result.Elapsed)
		r.events <- RunnerEvent{ID: r.ID, Percent: 100, Done: true, Result: result}
	}()
}
