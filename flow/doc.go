// Package flow computes exact cut values through maximum flow, used to
// verify the randomized contraction result.
//
// What
//
//   - MaxFlow: Edmonds–Karp (BFS shortest augmenting paths) between two
//     labels of an undirected *core.Graph. Every edge has capacity 1 in each
//     direction; parallel edges add up.
//   - GlobalMinCut: the exact global minimum cut. Fix s as the smallest live
//     label; every cut separates s from some t, so the answer is
//     min over t≠s of MaxFlow(s, t). Disconnected graphs give 0 directly.
//
// Why
//
//	Karger contraction only ever over-estimates the minimum cut. A
//	deterministic reference value lets tests and the --exact CLI flag tell a
//	lucky run from a correct one.
//
// Determinism
//
//	Residual neighbors are scanned in ascending label order, so the sequence
//	of augmenting paths is fixed for a given graph.
//
// Complexity
//
//   - MaxFlow:      O(V·E²) worst case; O(F·E) with F ≤ min degree here.
//   - GlobalMinCut: V-1 max-flow runs.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if no live vertex carries the source label.
//   - ErrSinkNotFound    if no live vertex carries the sink label.
//   - ErrSourceIsSink    if source and sink coincide.
//   - ctx.Err()          on cancellation, checked once per augmentation.
package flow
