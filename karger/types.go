// Package karger provides tunable options, error definitions and the result
// type for randomized contraction over a core.Graph.
package karger

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mincut/core"
)

// Sentinel errors for contraction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("karger: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("karger: invalid option supplied")
)

// Option configures contraction via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation by MinCut.
type Option func(*Options)

// Options holds parameters and callbacks to customize contraction.
type Options struct {
	// Rand is the random source. When nil, a stream seeded with Seed is used.
	Rand *rand.Rand

	// Seed seeds the default stream; 0 selects a fixed default seed.
	Seed int64

	// OnStep is called after every contraction step with the 1-based step
	// number and the graph. Returning an error aborts MinCut.
	OnStep func(step int, g *core.Graph) error

	// Validate runs g.Validate after every step.
	Validate bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a nil Rand, seed 0, a no-op OnStep
// and validation disabled.
func DefaultOptions() Options {
	return Options{
		OnStep: func(int, *core.Graph) error { return nil },
	}
}

// WithRand sets the random source. A nil source is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: Rand cannot be nil", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed seeds the default random stream. Ignored when WithRand is set.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOnStep registers a callback run after each contraction step.
func WithOnStep(fn func(step int, g *core.Graph) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithValidate checks every core invariant after each step. It turns an
// O(deg) step into O(V+E); use it in tests and debugging runs.
func WithValidate() Option {
	return func(o *Options) {
		o.Validate = true
	}
}

// Result is the outcome of one contraction run.
//   - Cut: number of edges crossing the final partition.
//   - Steps: contraction steps performed.
//   - Sides: original labels on each side, each sorted. With more than two
//     survivors (Disconnected), Sides[0] is the first survivor's group and
//     Sides[1] everything else.
//   - Disconnected: the edge list ran out while more than two vertices remained.
type Result struct {
	Cut          int
	Steps        int
	Sides        [2][]int
	Disconnected bool
}
