package trial

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("trial: invalid option supplied")

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the tunables for Run.
type Options struct {
	// Trials is the number of contraction runs; 0 selects n² (at least 1).
	Trials int

	// Workers is the number of goroutines sharing the trials.
	Workers int

	// Seed is the base seed; each worker derives its own stream from it.
	Seed int64

	// Progress is invoked after every trial with the number of trials still
	// to run and the cut that trial found. Calls are serialized.
	Progress func(remaining, cut int)

	err error
}

// DefaultOptions returns automatic trial count, one worker, seed 0 and a
// no-op Progress.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Progress: func(int, int) {},
	}
}

// WithTrials fixes the number of trials. Negative counts are rejected.
func WithTrials(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: trials must be >= 0, got %d", ErrOptionViolation, k)
			return
		}
		o.Trials = k
	}
}

// WithWorkers sets the worker count. Values below 1 are rejected.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithProgress registers a per-trial callback.
func WithProgress(fn func(remaining, cut int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}
