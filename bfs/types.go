package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when no live vertex has the start label.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS and Components. An invalid Option is recorded and
// reported as ErrOptionViolation by the call it was passed to.
type Option func(*Options)

// Options holds the tunables shared by BFS and Components.
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context

	err error
}

// DefaultOptions returns Options bound to context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
// A nil ctx is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Result is the outcome of one traversal.
type Result struct {
	// Order lists labels in visit sequence.
	Order []int

	// Depth maps every reached label to its hop distance from the start.
	Depth map[int]int
}
