package trial

import (
	"math"
	"slices"

	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mincut/karger"
)

// Report summarizes a batch of trials.
type Report struct {
	Trials     int           `yaml:"trials"`
	Vertices   int           `yaml:"vertices"`
	Edges      int           `yaml:"edges"`
	Components int           `yaml:"components"`
	Min        int           `yaml:"min"`
	Histogram  map[int]int   `yaml:"histogram"`
	Best       karger.Result `yaml:"-"`
}

// newReport returns an empty report for a graph of the given shape.
func newReport(vertices, edges, components int) *Report {
	return &Report{
		Vertices:   vertices,
		Edges:      edges,
		Components: components,
		Histogram:  make(map[int]int),
	}
}

// record folds one contraction result into r. Ties keep the earlier Best.
func (r *Report) record(res karger.Result) {
	if r.Trials == 0 || res.Cut < r.Min {
		r.Min = res.Cut
		r.Best = res
	}
	r.Trials++
	r.Histogram[res.Cut]++
}

// Merge folds other into r. Merging is associative, and r's Best wins ties,
// so merging partial reports in a fixed order gives a fixed result.
// Shape fields are taken from other when r has none.
func (r *Report) Merge(other *Report) {
	if other == nil || other.Trials == 0 {
		return
	}
	if r.Histogram == nil {
		r.Histogram = make(map[int]int, len(other.Histogram))
	}
	if r.Vertices == 0 && r.Edges == 0 {
		r.Vertices, r.Edges, r.Components = other.Vertices, other.Edges, other.Components
	}
	if r.Trials == 0 || other.Min < r.Min {
		r.Min = other.Min
		r.Best = other.Best
	}
	r.Trials += other.Trials
	for cut, n := range other.Histogram {
		r.Histogram[cut] += n
	}
}

// MinCount returns how many trials found the minimum.
func (r *Report) MinCount() int {
	if r.Trials == 0 {
		return 0
	}
	return r.Histogram[r.Min]
}

// MinPercent returns MinCount as an integer percentage of Trials, truncated.
func (r *Report) MinPercent() int {
	if r.Trials == 0 {
		return 0
	}
	return r.MinCount() * 100 / r.Trials
}

// Sizes returns the distinct cut values seen, ascending.
func (r *Report) Sizes() []int {
	keys := maps.Keys(r.Histogram)
	slices.Sort(keys)
	return keys
}

// weighted returns the histogram as parallel value/weight slices.
func (r *Report) weighted() (x, w []float64) {
	for _, cut := range r.Sizes() {
		x = append(x, float64(cut))
		w = append(w, float64(r.Histogram[cut]))
	}
	return x, w
}

// Mean returns the average cut over all trials, or NaN without trials.
func (r *Report) Mean() float64 {
	if r.Trials == 0 {
		return math.NaN()
	}
	x, w := r.weighted()
	return stat.Mean(x, w)
}

// StdDev returns the sample standard deviation of the cut over all trials.
// It is 0 for fewer than two trials.
func (r *Report) StdDev() float64 {
	if r.Trials < 2 {
		return 0
	}
	x, w := r.weighted()
	return stat.StdDev(x, w)
}
