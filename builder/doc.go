// Package builder constructs core.Graph instances for contraction.
//
// The package offers two kinds of Constructor:
//
//   - FromNeighbors: the loader-facing constructor. It turns an
//     array-of-neighbor-lists (index i → neighbors of vertex i) into a graph
//     over labels 0..len-1, suppressing the reverse-direction duplicate of
//     every adjacency.
//   - Fixture topologies with a known minimum cut, used by tests, examples and
//     `mincut generate`:
//     – Cycle(n)                  λ = 2
//     – Path(n), Star(n)          λ = 1
//     – Wheel(n)                  λ = 3
//     – Complete(n)               λ = n-1
//     – CompleteBipartite(a, b)   λ = min(a, b)
//     – Grid(rows, cols)          λ = 2   (rows, cols ≥ 2)
//     – Barbell(k, bridges)       λ = bridges (1 ≤ bridges ≤ k-1)
//     – Parallel(k)               λ = k   (two vertices, k parallel edges)
//     – RandomSparse(n, p)        Erdős–Rényi G(n,p), requires an RNG
//
// Configuration primitives:
//
//   - BuilderOption mutates builderConfig before use (WithSeed, WithRand).
//   - BuildGraph(gopts, bopts, cons...) is the single orchestrator.
//
// Guarantees:
//
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name ("Cycle: n=2 < min=3: builder: parameter too small").
//   - Same inputs and seed ⇒ identical graphs, including edge and incident order.
package builder
