// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, k, bridges)
// is outside the range the requested topology is defined for.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed
// (e.g. a nil constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrSelfAdjacency indicates that a neighbor row lists its own vertex.
var ErrSelfAdjacency = errors.New("builder: vertex lists itself as neighbor")

// ErrNeighborRange indicates that a neighbor index is outside 0..len-1.
var ErrNeighborRange = errors.New("builder: neighbor index out of range")
