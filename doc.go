// Package mincut estimates the global minimum cut of an undirected,
// unweighted multigraph with Karger's randomized edge contraction.
//
// What is inside?
//
//	core/     - arena-backed multigraph: stable vertex/edge handles, O(1)
//	            edge removal, the contraction step and an invariant checker
//	builder/  - graph constructors: neighbor arrays plus fixtures with known
//	            cuts (cycle, wheel, grid, barbell, …)
//	karger/   - one contraction run: random edge until two vertices remain
//	trial/    - n² runs over fresh graphs, worker pool, min + histogram
//	loader/   - adjacency-list text format (1-based labels)
//	bfs/      - traversal and connected components
//	flow/     - exact global min cut via Edmonds–Karp, for verification
//
// The mincut command (cmd/mincut) wires these together:
//
//	mincut run karger-min-cut.txt
//	mincut run graph.txt --trials 5000 --workers 8 --exact -o yaml
//	mincut generate barbell 20 3 --out barbell.txt
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a square: every single contraction run reports a cut of 2.
package mincut
