// Package predictor generates a spectrum of core.Prediction values spanning
// a range of prediction-error (eta) magnitudes, for use as learning-augmented
// input to the online package's algorithms.
//
// GeneratePredictions starts from the perfect prediction (eta=0, derived
// from the optimal schedule) and samples increasingly corrupted variants,
// sorting each into an error bin by ceil(eta/opt_cost/step_size). Sampling
// stops once every bin up to NumberOfPredictions has PredsPerBin members, or
// the round budget is exhausted.
//
// Generation is deterministic: a seeded *rand.Rand drives every random
// choice, following the teacher's tsp package's rngFromSeed convention, so
// two calls with the same seed and instance produce identical prediction
// sets.
//
// Errors:
//
//	ErrPredictionCoverage - not every bin was filled after the sample
//	                        budget; the caller may drop this sample.
package predictor
