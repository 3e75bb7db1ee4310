// Package bench drives a function over sequences of argument tuples,
// timing every call with a single timing.Accumulator and recording a
// configurable annotation (arguments, output, or both) per call.
package bench

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/psantana5/tempo/pkg/logging"
	"github.com/psantana5/tempo/pkg/timing"
)

// Func is the unit under measurement. It receives one argument tuple per
// call. A returned error aborts the remaining batch; the failing call's
// duration is still recorded.
type Func func(args ...any) (any, error)

// Runner drives a Func over argument tuples, one synchronous timed call
// per tuple, in order.
type Runner struct {
	// RecordArgs annotates each timing with the call's argument tuple.
	RecordArgs bool
	// RecordOutput annotates each timing with the call's return value.
	// When RecordArgs is also set, the annotation is the argument tuple
	// with the return value appended.
	RecordOutput bool
	// Limiter, when set, paces the calls: each call waits for a token
	// before starting. The wait is not part of the measured duration.
	Limiter *rate.Limiter
	// Logger, when set, receives a debug line per completed call.
	Logger *logging.Logger
}

// NewRunner returns a Runner that records both arguments and outputs.
func NewRunner() *Runner {
	return &Runner{RecordArgs: true, RecordOutput: true}
}

// RunArgs times one call of fn per argument tuple, in sequence order.
//
// It returns the accumulator holding the measured durations and the
// annotation store. The store is nil when both RecordArgs and
// RecordOutput are false. On failure the error is returned together
// with everything collected up to and including the failing call.
func (r *Runner) RunArgs(ctx context.Context, fn Func, argSets [][]any) (*timing.Accumulator, []any, error) {
	acc := timing.NewAccumulator()
	record := r.RecordArgs || r.RecordOutput

	for i, args := range argSets {
		select {
		case <-ctx.Done():
			return acc, acc.Annotations(), fmt.Errorf("batch cancelled before call %d: %w", i, ctx.Err())
		default:
		}

		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx); err != nil {
				return acc, acc.Annotations(), fmt.Errorf("batch cancelled before call %d: %w", i, err)
			}
		}

		out, err := timeCall(acc, fn, args)
		if err != nil {
			return acc, acc.Annotations(), fmt.Errorf("call %d: %w", i, err)
		}
		if r.Logger != nil {
			r.Logger.Debug("call completed", map[string]interface{}{
				"call":    i,
				"elapsed": acc.Elapsed().String(),
			})
		}

		if record {
			var data any
			switch {
			case r.RecordArgs && r.RecordOutput:
				tuple := make([]any, 0, len(args)+1)
				tuple = append(tuple, args...)
				data = append(tuple, out)
			case r.RecordArgs:
				data = args
			default:
				data = out
			}
			if err := acc.Annotate(data); err != nil {
				return acc, acc.Annotations(), err
			}
		}
	}

	if !record {
		return acc, nil, nil
	}
	return acc, acc.Annotations(), nil
}

// RunCombinations expands the per-parameter value axes into their
// cartesian product (first axis slowest) and delegates to RunArgs.
func (r *Runner) RunCombinations(ctx context.Context, fn Func, axes [][]any) (*timing.Accumulator, []any, error) {
	return r.RunArgs(ctx, fn, Combinations(axes))
}

// timeCall brackets one call with the accumulator. The deferred Stop
// records the duration even when fn fails or panics, so partial results
// stay attributable.
func timeCall(acc *timing.Accumulator, fn Func, args []any) (any, error) {
	acc.Start()
	defer acc.Stop()
	return fn(args...)
}
