package karger

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mincut/core"
)

// MinCut contracts g down to two vertices and returns the resulting cut.
// g is consumed; pass a fresh graph (or a Clone) per run.
//
// Steps:
//  1. While more than two vertices remain:
//     a. stop with Disconnected if no edge is left;
//     b. draw i uniformly in [0, EdgeCount) and contract EdgeAt(i);
//     c. optionally Validate, then call OnStep.
//  2. Cut = EdgeCount(); Sides from the survivors' member sets.
//
// Returns ErrGraphNil, ErrOptionViolation, a wrapped core error, or any
// OnStep error (wrapped).
func MinCut(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	var res Result
	for g.VertexCount() > 2 {
		if g.EdgeCount() == 0 {
			res.Disconnected = true
			break
		}
		e := g.EdgeAt(rng.Intn(g.EdgeCount()))
		if _, err := g.Contract(e); err != nil {
			return res, fmt.Errorf("karger: step %d: %w", res.Steps+1, err)
		}
		res.Steps++

		if o.Validate {
			if err := g.Validate(); err != nil {
				return res, fmt.Errorf("karger: step %d: %w", res.Steps, err)
			}
		}
		if err := o.OnStep(res.Steps, g); err != nil {
			return res, fmt.Errorf("karger: OnStep at step %d: %w", res.Steps, err)
		}
	}

	res.Cut = g.EdgeCount()
	res.Sides = sides(g)

	return res, nil
}

// sides splits the survivors into the first one (by label) and the rest.
func sides(g *core.Graph) [2][]int {
	var out [2][]int
	vs := g.Vertices()
	if len(vs) == 0 {
		return out
	}
	out[0] = g.Members(vs[0])
	for _, v := range vs[1:] {
		out[1] = append(out[1], g.Members(v)...)
	}
	slices.Sort(out[1])

	return out
}
