// Package trial repeats Karger contraction over fresh copies of one input
// graph and reduces the outcomes into a Report.
//
// What
//
//   - Run parses nothing: it takes a zero-based neighbor array (as produced by
//     package loader), builds a brand-new core.Graph for every trial and feeds
//     it to karger.MinCut.
//   - The default number of trials is n² (at least one). With a per-run
//     success chance of at least 2/n², the chance of never seeing the true
//     minimum is below (1-2/n²)^(n²) ≈ e⁻².
//   - Report keeps the smallest cut, a histogram of every cut value seen and
//     the Result that produced the minimum.
//
// Concurrency
//
//	WithWorkers(w) splits the trials into w contiguous chunks. Worker i draws
//	from karger.DeriveRand(seed, i) and builds into its own partial Report;
//	partial reports are merged in worker order. The histogram and the Best
//	result therefore depend only on (input, seed, trials, workers), never on
//	goroutine scheduling.
//
// Cancellation
//
//	The context is checked between trials. A cancelled run returns ctx.Err().
package trial
