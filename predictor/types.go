package predictor

import "errors"

// Sentinel errors returned by GeneratePredictions.
var (
	// ErrPredictionCoverage indicates the sample budget was exhausted before
	// every error bin received at least one candidate.
	ErrPredictionCoverage = errors.New("predictor: bin coverage incomplete")
)

// Options configures GeneratePredictions.
//
// NumberOfPredictions – number of error bins; bin 0 always holds the perfect
// prediction (eta=0).
// StepSize – bin width as a fraction of opt_cost; a candidate with
// eta/opt_cost in (StepSize*(i-1), StepSize*i] lands in bin i.
// NumberOfSamplesPerRound – candidates drawn per corruption-count round.
// PredsPerBin – target population per bin before sampling stops early.
// Seed – RNG seed; 0 selects a fixed deterministic default, matching the
// teacher's tsp package rngFromSeed convention.
type Options struct {
	NumberOfPredictions     int
	StepSize                float64
	NumberOfSamplesPerRound int
	PredsPerBin             int
	Seed                    int64
}

// Option is a functional option for GeneratePredictions.
type Option func(*Options)

// DefaultOptions returns the reference defaults from the original
// PredictionConfig: 12 bins, 0.25 bin width, 200 samples per round, 5
// predictions per bin.
func DefaultOptions() Options {
	return Options{
		NumberOfPredictions:     12,
		StepSize:                0.25,
		NumberOfSamplesPerRound: 200,
		PredsPerBin:             5,
		Seed:                    0,
	}
}

// WithNumberOfPredictions sets the number of error bins. Panics if n <= 0.
func WithNumberOfPredictions(n int) Option {
	if n <= 0 {
		panic("predictor: NumberOfPredictions must be positive")
	}
	return func(o *Options) { o.NumberOfPredictions = n }
}

// WithStepSize sets the bin width as a fraction of opt_cost. Panics if
// s <= 0.
func WithStepSize(s float64) Option {
	if s <= 0 {
		panic("predictor: StepSize must be positive")
	}
	return func(o *Options) { o.StepSize = s }
}

// WithNumberOfSamplesPerRound sets the candidate budget per corruption-count
// round. Panics if n <= 0.
func WithNumberOfSamplesPerRound(n int) Option {
	if n <= 0 {
		panic("predictor: NumberOfSamplesPerRound must be positive")
	}
	return func(o *Options) { o.NumberOfSamplesPerRound = n }
}

// WithPredsPerBin sets the target population per bin. Panics if n <= 0.
func WithPredsPerBin(n int) Option {
	if n <= 0 {
		panic("predictor: PredsPerBin must be positive")
	}
	return func(o *Options) { o.PredsPerBin = n }
}

// WithSeed sets the RNG seed driving every random choice made during
// generation.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
