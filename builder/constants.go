// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodFromNeighbors is the canonical name for the FromNeighbors constructor.
	MethodFromNeighbors = "FromNeighbors"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodBarbell is the canonical name for the Barbell constructor.
	MethodBarbell = "Barbell"
	// MethodParallel is the canonical name for the Parallel constructor.
	MethodParallel = "Parallel"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star: one center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: a triangle plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest K_n with a defined cut.
const MinCompleteNodes = 2

// MinGridDim is the smallest allowed grid dimension.
const MinGridDim = 1

// MinBarbellClique is the smallest clique size on each side of a barbell.
const MinBarbellClique = 2

// MinParallelEdges is the smallest number of parallel edges in Parallel(k).
const MinParallelEdges = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0
