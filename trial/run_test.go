package trial_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/flow"
	"github.com/katalvlaran/mincut/trial"
)

// neighbors builds a fixture and returns its neighbor array.
func neighbors(t *testing.T, cons ...builder.Constructor) [][]int {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)
	nb, err := g.NeighborArray()
	require.NoError(t, err)
	return nb
}

func TestRun_CycleDefaultTrials(t *testing.T) {
	nb := neighbors(t, builder.Cycle(6))

	rep, err := trial.Run(context.Background(), nb)
	require.NoError(t, err)
	assert.Equal(t, 36, rep.Trials)
	assert.Equal(t, 6, rep.Vertices)
	assert.Equal(t, 6, rep.Edges)
	assert.Equal(t, 1, rep.Components)
	assert.Equal(t, 2, rep.Min)
	assert.Equal(t, map[int]int{2: 36}, rep.Histogram)
	assert.Equal(t, 100, rep.MinPercent())
	assert.Equal(t, 2.0, rep.Mean())
	assert.Equal(t, 0.0, rep.StdDev())
	assert.Equal(t, 2, rep.Best.Cut)
}

func TestRun_SingleVertexStillRunsOnce(t *testing.T) {
	rep, err := trial.Run(context.Background(), [][]int{{}})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Trials)
	assert.Equal(t, 0, rep.Min)
}

func TestRun_StarOfThreeFromBothRows(t *testing.T) {
	// rows "1 2 3", "2 1", "3 1" after conversion to zero-based labels
	rep, err := trial.Run(context.Background(), [][]int{{1, 2}, {0}, {0}}, trial.WithTrials(20))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Edges)
	assert.Equal(t, 1, rep.Min)
	assert.Equal(t, map[int]int{1: 20}, rep.Histogram)
}

func TestRun_DisconnectedIsZero(t *testing.T) {
	rep, err := trial.Run(context.Background(), [][]int{{1}, {0}, {3}, {2}}, trial.WithTrials(5))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Components)
	assert.Equal(t, 0, rep.Min)
	assert.Equal(t, 5, rep.MinCount())
}

func TestRun_BarbellMatchesExact(t *testing.T) {
	nb := neighbors(t, builder.Barbell(5, 2))
	g, err := builder.Neighbors(nb)
	require.NoError(t, err)
	exact, err := flow.GlobalMinCut(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 2, exact)

	rep, err := trial.Run(context.Background(), nb, trial.WithSeed(3), trial.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, exact, rep.Min)
	for cut := range rep.Histogram {
		assert.GreaterOrEqual(t, cut, exact)
	}
	assert.Equal(t, 10, len(rep.Best.Sides[0])+len(rep.Best.Sides[1]))
}

func TestRun_DeterministicAcrossWorkersRuns(t *testing.T) {
	nb := neighbors(t, builder.Wheel(9))
	run := func() *trial.Report {
		rep, err := trial.Run(context.Background(), nb,
			trial.WithSeed(99), trial.WithWorkers(3), trial.WithTrials(60))
		require.NoError(t, err)
		return rep
	}

	a, b := run(), run()
	assert.Equal(t, a.Histogram, b.Histogram)
	assert.Equal(t, a.Best, b.Best)
	assert.Equal(t, 60, a.Trials)
}

func TestRun_WorkersClampedToTrials(t *testing.T) {
	nb := neighbors(t, builder.Cycle(4))
	rep, err := trial.Run(context.Background(), nb, trial.WithWorkers(16), trial.WithTrials(3))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Trials)
}

func TestRun_ProgressCountsDown(t *testing.T) {
	nb := neighbors(t, builder.Complete(5))

	var seen []int
	rep, err := trial.Run(context.Background(), nb,
		trial.WithTrials(7),
		trial.WithProgress(func(remaining, cut int) {
			seen = append(seen, remaining)
			assert.GreaterOrEqual(t, cut, 4)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1, 0}, seen)
	assert.Equal(t, 4, rep.Min)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := trial.Run(ctx, neighbors(t, builder.Cycle(5)))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_CancelMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	_, err := trial.Run(ctx, neighbors(t, builder.Cycle(5)),
		trial.WithTrials(100),
		trial.WithProgress(func(int, int) {
			calls++
			if calls == 3 {
				cancel()
			}
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, calls)
}

func TestRun_Errors(t *testing.T) {
	_, err := trial.Run(context.Background(), [][]int{{0}})
	require.ErrorIs(t, err, builder.ErrSelfAdjacency)

	_, err = trial.Run(context.Background(), [][]int{{4}})
	require.ErrorIs(t, err, builder.ErrNeighborRange)

	_, err = trial.Run(context.Background(), [][]int{{}}, trial.WithTrials(-1))
	require.ErrorIs(t, err, trial.ErrOptionViolation)

	_, err = trial.Run(context.Background(), [][]int{{}}, trial.WithWorkers(0))
	require.ErrorIs(t, err, trial.ErrOptionViolation)
}
