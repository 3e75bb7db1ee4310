package timing

import "time"

// Stopwatch measures elapsed wall-clock time around a block of code.
// time.Now carries a monotonic clock reading and Sub uses it, so elapsed
// is never negative regardless of wall-clock adjustments.
//
// The usual pattern brackets the block with Start/Stop:
//
//	var sw timing.Stopwatch
//	sw.Start()
//	defer sw.Stop()
//
// With defer, elapsed is recorded even when the block panics, and the
// panic propagates unchanged.
type Stopwatch struct {
	start   time.Time
	end     time.Time
	elapsed time.Duration
	running bool
}

// Start begins a new measurement. Re-entering resets the start point and
// clears any previous end/elapsed. Returns the receiver for chaining.
func (s *Stopwatch) Start() *Stopwatch {
	s.start = time.Now()
	s.end = time.Time{}
	s.elapsed = 0
	s.running = true
	return s
}

// Stop records the end point and returns the elapsed duration.
func (s *Stopwatch) Stop() time.Duration {
	s.end = time.Now()
	s.elapsed = s.end.Sub(s.start)
	s.running = false
	return s.elapsed
}

// Elapsed returns the duration measured by the last Start/Stop cycle.
// It is zero until Stop has been called.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// StartedAt returns the timestamp captured by the last Start.
func (s *Stopwatch) StartedAt() time.Time {
	return s.start
}

// StoppedAt returns the timestamp captured by the last Stop.
// It is the zero time while a measurement is in progress.
func (s *Stopwatch) StoppedAt() time.Time {
	return s.end
}

// Running reports whether a measurement is in progress.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Time measures a single call to fn and returns its wall-clock duration.
func Time(fn func()) time.Duration {
	var sw Stopwatch
	sw.Start()
	fn()
	return sw.Stop()
}
