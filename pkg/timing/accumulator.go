package timing

import (
	"errors"
	"fmt"
	"time"
)

// ErrAnnotationOutOfStep is returned by Accumulator.Annotate when the
// annotation store is not exactly one entry behind the recorded timings.
var ErrAnnotationOutOfStep = errors.New("annotation out of step with timings")

// Accumulator collects one duration per Start/Stop cycle, typically driven
// from inside a loop, plus an optional annotation per completed timing.
// Annotations live in a parallel store and must be recorded in lock-step:
// one Annotate after each Stop, before the next Start.
//
// An Accumulator is a single logical sequence of sequential uses; it is not
// safe for concurrent use.
type Accumulator struct {
	sw          Stopwatch
	durations   []time.Duration
	annotations []any
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Start begins the next timing. Returns the receiver for chaining.
func (a *Accumulator) Start() *Accumulator {
	a.sw.Start()
	return a
}

// Stop finishes the current timing, appends it to the recorded durations
// and returns it. Use `defer acc.Stop()` to guarantee the timing is
// recorded even when the timed block panics.
func (a *Accumulator) Stop() time.Duration {
	d := a.sw.Stop()
	a.durations = append(a.durations, d)
	return d
}

// Annotate attaches data to the most recently completed timing.
//
// It must be called exactly once per completed timing, after Stop and
// before the next Start. Calling it twice for one timing, or before any
// timing completed, returns an error wrapping ErrAnnotationOutOfStep;
// that is caller misuse, not a recoverable condition.
func (a *Accumulator) Annotate(data any) error {
	if len(a.annotations)+1 != len(a.durations) {
		return fmt.Errorf("%w: annotation store must have exactly one entry less than the timings, have %d annotations and %d timings",
			ErrAnnotationOutOfStep, len(a.annotations), len(a.durations))
	}
	a.annotations = append(a.annotations, data)
	return nil
}

// Len returns the number of completed timings.
func (a *Accumulator) Len() int {
	return len(a.durations)
}

// At returns the i-th recorded duration.
func (a *Accumulator) At(i int) time.Duration {
	return a.durations[i]
}

// Durations returns the recorded durations in completion order.
func (a *Accumulator) Durations() []time.Duration {
	return a.durations
}

// Annotations returns the annotation store in completion order.
func (a *Accumulator) Annotations() []any {
	return a.annotations
}

// Elapsed returns the duration of the most recent Start/Stop cycle.
func (a *Accumulator) Elapsed() time.Duration {
	return a.sw.Elapsed()
}

// Total returns the sum of all recorded durations.
func (a *Accumulator) Total() time.Duration {
	var total time.Duration
	for _, d := range a.durations {
		total += d
	}
	return total
}
