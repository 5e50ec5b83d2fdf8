package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mincut/core"
)

// BFS runs breadth-first search on g from the vertex labelled start.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or
// ctx.Err() when the WithContext context is done mid-walk.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	sv, ok := g.VertexByLabel(start)
	if !ok {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	res := &Result{Order: make([]int, 0, n), Depth: make(map[int]int, n)}
	if err := walk(o, g, sv, func(v core.VertexID, depth int) {
		label := g.Label(v)
		res.Order = append(res.Order, label)
		res.Depth[label] = depth
	}); err != nil {
		return nil, err
	}

	return res, nil
}

// walk visits every vertex reachable from src in breadth-first order,
// following incident lists in stored order. Parallel edges reach an already
// seen neighbor and are skipped.
func walk(o Options, g *core.Graph, src core.VertexID, visit func(v core.VertexID, depth int)) error {
	type item struct {
		v     core.VertexID
		depth int
	}
	seen := map[core.VertexID]bool{src: true}
	queue := []item{{v: src}}
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		visit(cur.v, cur.depth)
		for _, e := range g.Incident(cur.v) {
			nbr := g.Opposite(e, cur.v)
			if seen[nbr] {
				continue
			}
			seen[nbr] = true
			queue = append(queue, item{v: nbr, depth: cur.depth + 1})
		}
	}
	return nil
}

// Components returns the connected components of g as groups of labels.
// Each group is sorted, and groups are ordered by their smallest label.
// A nil graph has no components.
//
// Returns ErrOptionViolation or ctx.Err() from the WithContext context.
// Complexity: O(V·log V + E).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, nil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	var out [][]int
	seen := make(map[core.VertexID]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		var group []int
		if err := walk(o, g, v, func(u core.VertexID, _ int) {
			seen[u] = true
			group = append(group, g.Label(u))
		}); err != nil {
			return nil, err
		}
		slices.Sort(group)
		out = append(out, group)
	}

	return out, nil
}
