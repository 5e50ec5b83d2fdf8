package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/flow"
)

// EdmondsKarpSuite groups tests for MaxFlow and GlobalMinCut.
type EdmondsKarpSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *EdmondsKarpSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}

func (s *EdmondsKarpSuite) build(cons ...builder.Constructor) *core.Graph {
	g, err := builder.BuildGraph(nil, nil, cons...)
	s.Require().NoError(err)
	return g
}

// TestSingleEdge: 0–1 => maxFlow = 1.
func (s *EdmondsKarpSuite) TestSingleEdge() {
	g := s.build(builder.Path(2))
	mf, err := flow.MaxFlow(s.ctx, g, 0, 1)
	s.Require().NoError(err)
	s.Equal(1, mf)
}

// TestParallelEdgesSum: k copies of 0–1 => maxFlow = k.
func (s *EdmondsKarpSuite) TestParallelEdgesSum() {
	g := s.build(builder.Parallel(5))
	mf, err := flow.MaxFlow(s.ctx, g, 1, 0)
	s.Require().NoError(err)
	s.Equal(5, mf)
}

// TestCycle: two disjoint routes around a ring.
func (s *EdmondsKarpSuite) TestCycle() {
	g := s.build(builder.Cycle(7))
	mf, err := flow.MaxFlow(s.ctx, g, 0, 3)
	s.Require().NoError(err)
	s.Equal(2, mf)
}

// TestComplete: K_n has n-1 edge-disjoint paths between any pair.
func (s *EdmondsKarpSuite) TestComplete() {
	g := s.build(builder.Complete(6))
	mf, err := flow.MaxFlow(s.ctx, g, 2, 5)
	s.Require().NoError(err)
	s.Equal(5, mf)
}

// TestBarbellAcrossBridges: flow between the cliques equals the bridge count.
func (s *EdmondsKarpSuite) TestBarbellAcrossBridges() {
	g := s.build(builder.Barbell(5, 3))
	mf, err := flow.MaxFlow(s.ctx, g, 0, 9)
	s.Require().NoError(err)
	s.Equal(3, mf)

	mf, err = flow.MaxFlow(s.ctx, g, 1, 2)
	s.Require().NoError(err)
	s.Equal(5, mf, "inside one clique the vertex degree bounds the flow")
}

// TestDisconnectedPair: no path => 0.
func (s *EdmondsKarpSuite) TestDisconnectedPair() {
	g, err := builder.Neighbors([][]int{{1}, {0}, {3}, {2}})
	s.Require().NoError(err)
	mf, err := flow.MaxFlow(s.ctx, g, 0, 3)
	s.Require().NoError(err)
	s.Equal(0, mf)
}

// TestGraphUnchanged: MaxFlow works on a copy of the capacities.
func (s *EdmondsKarpSuite) TestGraphUnchanged() {
	g := s.build(builder.Wheel(6))
	before := g.AdjacencyList()
	_, err := flow.MaxFlow(s.ctx, g, 0, 3)
	s.Require().NoError(err)
	s.Equal(before, g.AdjacencyList())
}

// TestErrors covers every input rejection.
func (s *EdmondsKarpSuite) TestErrors() {
	g := s.build(builder.Path(3))

	_, err := flow.MaxFlow(s.ctx, nil, 0, 1)
	s.ErrorIs(err, flow.ErrGraphNil)
	_, err = flow.MaxFlow(s.ctx, g, 7, 1)
	s.ErrorIs(err, flow.ErrSourceNotFound)
	_, err = flow.MaxFlow(s.ctx, g, 0, 7)
	s.ErrorIs(err, flow.ErrSinkNotFound)
	_, err = flow.MaxFlow(s.ctx, g, 1, 1)
	s.ErrorIs(err, flow.ErrSourceIsSink)
	_, err = flow.GlobalMinCut(s.ctx, nil)
	s.ErrorIs(err, flow.ErrGraphNil)
}

// TestCancelled: a cancelled context stops before any augmentation.
func (s *EdmondsKarpSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	g := s.build(builder.Complete(4))

	_, err := flow.MaxFlow(ctx, g, 0, 1)
	s.ErrorIs(err, context.Canceled)
	_, err = flow.GlobalMinCut(ctx, g)
	s.ErrorIs(err, context.Canceled)

	// the component check sees the cancellation before any flow runs
	split, berr := builder.Neighbors([][]int{{1}, {0}, {3}, {2}})
	s.Require().NoError(berr)
	_, err = flow.GlobalMinCut(ctx, split)
	s.ErrorIs(err, context.Canceled)
}

func TestGlobalMinCut_Fixtures(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want int
	}{
		{"Cycle", builder.Cycle(8), 2},
		{"Path", builder.Path(5), 1},
		{"Star", builder.Star(6), 1},
		{"Wheel", builder.Wheel(8), 3},
		{"Complete", builder.Complete(7), 6},
		{"Bipartite", builder.CompleteBipartite(3, 5), 3},
		{"Grid", builder.Grid(4, 5), 2},
		{"Barbell", builder.Barbell(6, 4), 4},
		{"Parallel", builder.Parallel(3), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.cons)
			require.NoError(t, err)
			got, err := flow.GlobalMinCut(context.Background(), g)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGlobalMinCut_Trivial(t *testing.T) {
	ctx := context.Background()

	got, err := flow.GlobalMinCut(ctx, core.NewGraph())
	require.NoError(t, err)
	require.Equal(t, 0, got)

	g, err := builder.Neighbors([][]int{{}})
	require.NoError(t, err)
	got, err = flow.GlobalMinCut(ctx, g)
	require.NoError(t, err)
	require.Equal(t, 0, got)

	g, err = builder.Neighbors([][]int{{1}, {0}, {3}, {2}})
	require.NoError(t, err)
	got, err = flow.GlobalMinCut(ctx, g)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

// TestGlobalMinCut_AfterContraction works on sparse labels.
func TestGlobalMinCut_AfterContraction(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	_, err = g.Contract(g.EdgeAt(0))
	require.NoError(t, err)

	got, err := flow.GlobalMinCut(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 2, got)
}
