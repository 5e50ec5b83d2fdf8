package flow

import (
	"context"
	"maps"

	"github.com/katalvlaran/mincut/core"
)

// buildCapMap constructs the residual capacities of g, aggregating parallel
// edges. Each undirected edge contributes capacity 1 in both directions.
//
// Steps:
//  1. Initialize one inner map per live vertex (O(V)).
//  2. For each live edge (a,b): capMap[a][b]++ and capMap[b][a]++ (O(E)).
//
// Complexity:
//
//	Time:   O(V + E).
//	Memory: O(V + E).
func buildCapMap(ctx context.Context, g *core.Graph) (capMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	cm := make(capMap, len(vertices))
	for _, v := range vertices {
		cm[g.Label(v)] = make(map[int]int)
	}
	for _, e := range g.Edges() {
		a, b := g.Ends(e)
		la, lb := g.Label(a), g.Label(b)
		cm[la][lb]++
		cm[lb][la]++
	}

	return cm, nil
}

// clone deep-copies the residual map so one base can feed many max-flow runs.
func (cm capMap) clone() capMap {
	out := make(capMap, len(cm))
	for u, inner := range cm {
		out[u] = maps.Clone(inner)
	}
	return out
}
