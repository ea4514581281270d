package simulate

import (
	"runtime"

	"github.com/onlinealg/ksline/core"
)

// AlgoCost pairs an algorithm's name with the movement cost it reported for
// one (sample, lambda, prediction) run. The set and order of names is fixed
// across every ResultRow of a single Run call, matching the ResultSink
// header-consistency contract (spec.md §6): the first row's AlgoCosts
// defines the header for any CSV-like export.
type AlgoCost struct {
	Name string
	Cost float64
}

// ResultRow is one (sample, lambda, prediction) observation, the widened
// SimResult of the original reference's samplelib/src/result.rs.
type ResultRow struct {
	K         int
	N         int
	Lambda    float64
	Eta       float64
	OptCost   float64
	AlgoCosts []AlgoCost
}

// Sample bundles an Instance with its pre-solved offline optimum and a
// spectrum of predictions spanning a range of eta, as produced by packages
// solver and predictor. Run treats every field as read-only.
type Sample struct {
	Instance    core.Instance
	Solution    core.Schedule
	OptCost     float64
	Predictions []core.Prediction
}

// Options configures Run.
type Options struct {
	// NumberOfLambdas is the count L of lambda values swept over
	// linspace(0, 1, L). Must be >= 1.
	NumberOfLambdas int

	// Gamma is the RobustFTP combiner's doubling-bound growth parameter.
	// Must be > 0; only consulted for k-server samples.
	Gamma float64

	// Lazy, when true, rewrites every algorithm's schedule with
	// core.Schedule.ToLazy before reporting its cost.
	Lazy bool

	// Workers bounds the number of samples processed concurrently. <= 0
	// selects runtime.NumCPU().
	Workers int
}

// DefaultOptions returns the reference defaults: 11 lambdas (0, 0.1, ...,
// 1.0), gamma=1, eager (non-lazy) cost reporting, and parallelism bounded to
// the host's logical CPU count (runtime.NumCPU).
func DefaultOptions() Options {
	return Options{
		NumberOfLambdas: 11,
		Gamma:           1,
		Lazy:            false,
		Workers:         runtime.NumCPU(),
	}
}
