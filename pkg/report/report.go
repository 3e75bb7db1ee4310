// Package report turns finished benchmark runs into shareable artifacts:
// JSON documents, CSV files and rendered tables.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/psantana5/tempo/pkg/hostinfo"
	"github.com/psantana5/tempo/pkg/timing"
)

// Entry is one timed call.
type Entry struct {
	Index   int     `json:"index"`
	Seconds float64 `json:"seconds"`
	Args    []any   `json:"args,omitempty"`
	Output  any     `json:"output,omitempty"`
}

// Report is a finished (possibly partial) benchmark run.
type Report struct {
	ID           string         `json:"id"`
	Name         string         `json:"name,omitempty"`
	Workload     string         `json:"workload"`
	StartedAt    time.Time      `json:"started_at"`
	Host         *hostinfo.Info `json:"host,omitempty"`
	Entries      []Entry        `json:"entries"`
	TotalSeconds float64        `json:"total_seconds"`
}

// Options describe how the run was recorded. RecordArgs/RecordOutput
// must match the runner flags so annotations split back into arguments
// and outputs correctly.
type Options struct {
	Name         string
	Workload     string
	RecordArgs   bool
	RecordOutput bool
	Host         *hostinfo.Info
}

// New builds a report from the accumulator and annotation store a run
// produced. A partial run (aborted batch) yields a partial report: calls
// without an annotation keep only their timing.
func New(acc *timing.Accumulator, data []any, opts Options) *Report {
	r := &Report{
		ID:        uuid.New().String(),
		Name:      opts.Name,
		Workload:  opts.Workload,
		StartedAt: time.Now(),
		Host:      opts.Host,
		Entries:   make([]Entry, 0, acc.Len()),
	}

	for i, d := range acc.Durations() {
		e := Entry{Index: i, Seconds: d.Seconds()}
		if i < len(data) {
			switch {
			case opts.RecordArgs && opts.RecordOutput:
				if tuple, ok := data[i].([]any); ok && len(tuple) > 0 {
					e.Args = tuple[:len(tuple)-1]
					e.Output = tuple[len(tuple)-1]
				}
			case opts.RecordArgs:
				if tuple, ok := data[i].([]any); ok {
					e.Args = tuple
				}
			case opts.RecordOutput:
				e.Output = data[i]
			}
		}
		r.Entries = append(r.Entries, e)
		r.TotalSeconds += e.Seconds
	}
	return r
}
