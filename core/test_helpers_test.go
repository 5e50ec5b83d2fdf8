// Package core_test contains fixtures and assertion helpers shared by the core tests.
package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
)

// newLabeled creates a graph with vertices labelled 0..n-1 and returns their handles.
func newLabeled(t testing.TB, n int) (*core.Graph, []core.VertexID) {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(2*n, 0))
	vs := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		v, err := g.AddVertex(i)
		require.NoError(t, err)
		vs[i] = v
	}
	return g, vs
}

// connect adds one edge per pair, in order.
func connect(t testing.TB, g *core.Graph, vs []core.VertexID, pairs ...[2]int) []core.EdgeID {
	t.Helper()
	out := make([]core.EdgeID, 0, len(pairs))
	for _, p := range pairs {
		e, err := g.AddEdge(vs[p[0]], vs[p[1]])
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

// square builds the 4-cycle 0-1-2-3-0.
func square(t testing.TB) (*core.Graph, []core.VertexID, []core.EdgeID) {
	t.Helper()
	g, vs := newLabeled(t, 4)
	es := connect(t, g, vs, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	return g, vs, es
}

// requireInvariantPanic fails unless fn panics with an error wrapping core.ErrInvariant.
func requireInvariantPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.True(t, errors.Is(err, core.ErrInvariant), "panic must wrap ErrInvariant: %v", err)
		var ie *core.InvariantError
		require.ErrorAs(t, err, &ie)
	}()
	fn()
}
