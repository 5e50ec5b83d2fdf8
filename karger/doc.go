// Package karger implements Karger's randomized contraction for the global
// minimum cut of an undirected, unweighted graph.
//
// What
//
//   - MinCut contracts a *core.Graph until two super-vertices remain and
//     reports the number of surviving edges: exactly the edges crossing the
//     cut that the contraction history defines.
//   - Each step draws a live edge uniformly at random (probability
//     1/EdgeCount, re-evaluated after every step) and calls core.Graph.Contract.
//   - Result carries the cut size, the number of steps and both sides of the
//     cut as sorted original labels.
//
// Why
//
//   - One run finds a specific minimum cut with probability at least
//     2/(n(n-1)); repeating O(n²) runs and keeping the smallest value makes a
//     miss unlikely. Repetition lives in package trial.
//
// Edge cases
//
//   - Graphs with at most two vertices perform zero steps; the cut is the
//     current edge count (0, 1, or more for parallel edges).
//   - If the edge list empties while more than two vertices remain, the input
//     was disconnected: MinCut stops, returns cut 0 and sets Disconnected.
//
// Determinism
//
//	Randomness comes only from the *rand.Rand passed via WithRand or created
//	from WithSeed. Same graph, same stream ⇒ same Result. The graph is
//	consumed: MinCut mutates it in place.
//
// Complexity
//
//	V-2 steps, each O(deg(a)+deg(b)); O(V·E) worst case, far less on sparse input.
package karger
