package timing

import "time"

// Sample is the single argument passed to a CallbackTimer callback.
// Payload is nil unless SetPayload was called during the scope.
type Sample struct {
	Elapsed time.Duration
	Payload any
}

// CallbackTimer invokes a callback with the measured duration on Stop.
// It lets an external accumulator (for example, appending to a slice it
// owns) receive timings, with or without paired context, without the
// lock-step annotation bookkeeping of Accumulator.
type CallbackTimer struct {
	sw       Stopwatch
	callback func(Sample)
	payload  any
}

// NewCallbackTimer returns a CallbackTimer that calls cb on every Stop.
// A nil cb is treated as a no-op.
func NewCallbackTimer(cb func(Sample)) *CallbackTimer {
	if cb == nil {
		cb = func(Sample) {}
	}
	return &CallbackTimer{callback: cb}
}

// SetPayload attaches extra data to pass to the callback alongside the
// elapsed duration. Call it between Start and Stop; Start clears it.
func (c *CallbackTimer) SetPayload(v any) {
	c.payload = v
}

// Start begins the measurement and clears any payload left over from a
// previous scope.
func (c *CallbackTimer) Start() *CallbackTimer {
	c.payload = nil
	c.sw.Start()
	return c
}

// Stop finishes the measurement and invokes the callback exactly once
// with the elapsed duration and the payload, if one was set.
func (c *CallbackTimer) Stop() time.Duration {
	d := c.sw.Stop()
	c.callback(Sample{Elapsed: d, Payload: c.payload})
	return d
}

// Elapsed returns the duration measured by the last Start/Stop cycle.
func (c *CallbackTimer) Elapsed() time.Duration {
	return c.sw.Elapsed()
}
