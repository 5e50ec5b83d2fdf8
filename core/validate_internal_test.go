package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func corruptible(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	for i := 0; i < 3; i++ {
		_, err := g.AddVertex(i)
		require.NoError(t, err)
	}
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	return g
}

func TestValidate_DetectsBrokenBookkeeping(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(g *Graph)
	}{
		{"self-loop", func(g *Graph) { g.edges[0].ends[1] = 0 }},
		{"dead end", func(g *Graph) { g.vertices[2].live = false; g.vertices[2].incident = nil }},
		{"stale pos", func(g *Graph) { g.edges[1].pos = 0 }},
		{"missing incidence", func(g *Graph) { g.vertices[0].incident = nil }},
		{"extra incidence", func(g *Graph) { g.vertices[0].incident = append(g.vertices[0].incident, 1) }},
		{"label drift", func(g *Graph) { g.vertices[1].label = 9 }},
		{"orphan label", func(g *Graph) { g.byLabel[5] = 2 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := corruptible(t)
			tc.corrupt(g)
			require.ErrorIs(t, g.Validate(), ErrInvariant)
		})
	}
}

func TestDetach_UpdatesMovedSlot(t *testing.T) {
	g := corruptible(t)
	// vertex 1 holds [e0, e1]; detaching e0 moves e1 into slot 0
	g.detach(0, 1)
	require.Equal(t, []EdgeID{1}, g.vertices[1].incident)
	require.Equal(t, 0, g.edges[1].slots[0])
}
