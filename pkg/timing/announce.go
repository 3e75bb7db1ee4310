package timing

import (
	"fmt"
	"time"
)

// Announcer wraps a Stopwatch with start/finish messages sent to a
// pluggable sink. The default sink prints a line to stdout; swap it for a
// logger with WithSink.
type Announcer struct {
	sw       Stopwatch
	startMsg string
	endMsg   string
	verbose  bool
	sink     func(string)
}

// NewAnnouncer returns an Announcer that emits startMsg on Start and
// endMsg plus a "Took N seconds" line on Stop. Either message may be
// empty to skip it. Verbose defaults to true.
func NewAnnouncer(startMsg, endMsg string) *Announcer {
	return &Announcer{
		startMsg: startMsg,
		endMsg:   endMsg,
		verbose:  true,
		sink:     func(s string) { fmt.Println(s) },
	}
}

// WithVerbose enables or disables output. When disabled, Start/Stop emit
// nothing but elapsed/start/end remain inspectable afterward.
func (a *Announcer) WithVerbose(verbose bool) *Announcer {
	a.verbose = verbose
	return a
}

// WithSink replaces the output function.
func (a *Announcer) WithSink(sink func(string)) *Announcer {
	a.sink = sink
	return a
}

// Start emits the start message (if verbose and non-empty) and begins
// the measurement.
func (a *Announcer) Start() *Announcer {
	if a.verbose && a.startMsg != "" {
		a.sink(a.startMsg)
	}
	a.sw.Start()
	return a
}

// Stop finishes the measurement and, when verbose, emits the end message
// followed by "Took N seconds". An empty end message yields only the Took
// line, with no blank prefix.
func (a *Announcer) Stop() time.Duration {
	d := a.sw.Stop()
	if a.verbose {
		msg := ""
		if a.endMsg != "" {
			msg = a.endMsg + "\n"
		}
		msg += fmt.Sprintf("Took %.1f seconds", d.Seconds())
		a.sink(msg)
	}
	return d
}

// Elapsed returns the duration measured by the last Start/Stop cycle.
func (a *Announcer) Elapsed() time.Duration {
	return a.sw.Elapsed()
}

// StartedAt returns the timestamp captured by the last Start.
func (a *Announcer) StartedAt() time.Time {
	return a.sw.StartedAt()
}

// StoppedAt returns the timestamp captured by the last Stop.
func (a *Announcer) StoppedAt() time.Time {
	return a.sw.StoppedAt()
}

func (a *Announcer) String() string {
	return fmt.Sprintf("elapsed=%v (start=%v, end=%v)", a.sw.Elapsed(), a.sw.StartedAt(), a.sw.StoppedAt())
}
