package flow

import (
	"context"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/mincut/bfs"
	"github.com/katalvlaran/mincut/core"
)

// MaxFlow computes the maximum number of edge-disjoint paths between the
// vertices labelled source and sink, which by max-flow/min-cut equals the
// smallest number of edges whose removal separates them.
//
// Complexity: O(V·E²)
// Memory:     O(V + E)
func MaxFlow(ctx context.Context, g *core.Graph, source, sink int) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if _, ok := g.VertexByLabel(source); !ok {
		return 0, fmt.Errorf("MaxFlow(%d, %d): %w", source, sink, ErrSourceNotFound)
	}
	if _, ok := g.VertexByLabel(sink); !ok {
		return 0, fmt.Errorf("MaxFlow(%d, %d): %w", source, sink, ErrSinkNotFound)
	}
	if source == sink {
		return 0, fmt.Errorf("MaxFlow(%d, %d): %w", source, sink, ErrSourceIsSink)
	}

	cm, err := buildCapMap(ctx, g)
	if err != nil {
		return 0, err
	}

	return edmondsKarp(ctx, cm, source, sink)
}

// GlobalMinCut returns the exact minimum number of edges whose removal
// disconnects g. Graphs with fewer than two vertices, or already
// disconnected, give 0.
//
// Steps:
//  1. If bfs.Components reports more than one group, return 0.
//  2. Let s be the smallest label; build the residual map once.
//  3. For every other label t, run Edmonds–Karp on a copy; keep the minimum.
//     Stop early once the minimum reaches 1 (the graph is connected, so no
//     cut can be smaller).
//
// Complexity: O(V²·E²) worst case.
func GlobalMinCut(ctx context.Context, g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) < 2 {
		return 0, nil
	}
	comps, err := bfs.Components(g, bfs.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("GlobalMinCut: %w", err)
	}
	if len(comps) > 1 {
		return 0, nil
	}

	base, err := buildCapMap(ctx, g)
	if err != nil {
		return 0, err
	}
	s := g.Label(vs[0])
	best := -1
	for _, v := range vs[1:] {
		f, err := edmondsKarp(ctx, base.clone(), s, g.Label(v))
		if err != nil {
			return 0, fmt.Errorf("GlobalMinCut: %w", err)
		}
		if best < 0 || f < best {
			best = f
		}
		if best == 1 {
			break
		}
	}

	return best, nil
}

// edmondsKarp augments along shortest residual paths until none remain.
// cm is consumed.
func edmondsKarp(ctx context.Context, cm capMap, source, sink int) (int, error) {
	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		path, bottle := augmentingPath(cm, source, sink)
		if len(path) == 0 {
			return total, nil
		}
		total += bottle

		// push bottle along the path, crediting the reverse direction
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			cm[u][v] -= bottle
			if cm[u][v] == 0 {
				delete(cm[u], v)
			}
			cm[v][u] += bottle
		}
	}
}

// augmentingPath finds the fewest-edge path from source to sink over
// positive residual capacity, and its bottleneck. Returns nil if none.
func augmentingPath(cm capMap, source, sink int) ([]int, int) {
	parent := map[int]int{}
	bottle := map[int]int{source: math.MaxInt}
	visited := map[int]bool{source: true}

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		next := maps.Keys(cm[u])
		slices.Sort(next)
		for _, v := range next {
			c := cm[u][v]
			if visited[v] || c <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = min(bottle[u], c)
			if v == sink {
				// reconstruct path
				path := []int{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				slices.Reverse(path)
				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}
	return nil, 0
}
