// Package bfs provides breadth-first search over a core.Graph, addressed by
// vertex label, and connected-component labelling built on the same walk.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start label
//     and returns a Result with the visit Order and the Depth of each label.
//   - Components partitions the live vertices into connected groups.
//   - WithContext bounds either call by a context, checked per dequeued vertex.
//
// Why
//
//   - Detect disconnected inputs before spending n² contraction trials on them.
//   - Let flow.GlobalMinCut short-circuit disconnected graphs to a cut of 0.
//
// Determinism
//
//	Neighbors are enqueued in incident-list order, which is fixed by the
//	order edges were added and contracted, so the visit sequence is
//	reproducible. Parallel edges are followed once: the second copy finds the
//	neighbor already seen.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) for BFS, plus O(V·log V) sorting in Components
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil (BFS only).
//   - ErrStartVertexNotFound  if no live vertex carries the start label.
//   - ErrOptionViolation      for an invalid Option (a nil context).
//   - ctx.Err() when the context is done.
package bfs
