package predictor

import (
	"fmt"
	"math"
	"sort"

	"github.com/onlinealg/ksline/core"
)

// candidate pairs a generated Prediction with its error ratio (eta/opt_cost)
// so bins can later be sorted and the worst-in-bin member picked out.
type candidate struct {
	pred  core.Prediction
	ratio float64
}

// GeneratePredictions samples a spectrum of predictions for instance,
// spanning error bins relative to solution (the offline-optimal schedule)
// and optCost (its cost). Bin 0 always contains the perfect prediction.
//
// Returns ErrPredictionCoverage if the sample budget is exhausted before
// every bin up to Options.NumberOfPredictions received a member.
func GeneratePredictions(instance core.Instance, solution core.Schedule, optCost float64, opts ...Option) ([]core.Prediction, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := instance.Length()
	k := instance.K()

	perfect, err := solution.ToPrediction(instance)
	if err != nil {
		return nil, err
	}

	bins := make([][]candidate, cfg.NumberOfPredictions)
	bins[0] = append(bins[0], candidate{pred: perfect, ratio: 0})

	rng := rngFromSeed(cfg.Seed)

	allFull := func() bool {
		for _, b := range bins {
			if len(b) < cfg.PredsPerBin {
				return false
			}
		}
		return true
	}

	for numberOfWrongServers := 1; numberOfWrongServers < n; numberOfWrongServers++ {
		for sample := 0; sample < cfg.NumberOfSamplesPerRound; sample++ {
			correct := make([]bool, n)
			for i := range correct {
				correct[i] = true
			}
			// Marks numberOfWrongServers-1 indices, not numberOfWrongServers;
			// matches the reference generator's loop bound exactly.
			for j := 1; j < numberOfWrongServers; j++ {
				correct[rng.Intn(n)] = false
			}

			predVec := make([]int, n)
			for i := 0; i < n; i++ {
				server := perfect.PredictedServer(i)
				if correct[i] {
					predVec[i] = server
					continue
				}
				p := rng.Intn(k)
				if p == server && k > 1 {
					if p == 0 {
						p++
					} else {
						p--
					}
				}
				predVec[i] = p
			}

			pred, err := core.NewPrediction(predVec)
			if err != nil {
				return nil, err
			}
			predSchedule, err := pred.ToSchedule(instance)
			if err != nil {
				return nil, err
			}
			eta, err := solution.Diff(predSchedule)
			if err != nil {
				return nil, err
			}

			ratio := eta / optCost
			binIdx := int(math.Ceil(ratio / cfg.StepSize))
			if binIdx < cfg.NumberOfPredictions {
				bins[binIdx] = append(bins[binIdx], candidate{pred: pred, ratio: ratio})
			}

			if allFull() {
				break
			}
		}
		if allFull() {
			break
		}
	}

	var missing []string
	for i, b := range bins {
		if len(b) == 0 {
			missing = append(missing, fmt.Sprintf("%.2f-%.2f", float64(i-1)*cfg.StepSize, float64(i)*cfg.StepSize))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("predictor: %w: %v", ErrPredictionCoverage, missing)
	}

	result := make([]core.Prediction, 0, cfg.NumberOfPredictions*cfg.PredsPerBin)
	for _, b := range bins {
		sort.Slice(b, func(a, c int) bool { return b[a].ratio < b[c].ratio })
		largest := b[len(b)-1]
		rest := b[:len(b)-1]
		for _, idx := range chooseMultiple(rng, len(rest), cfg.PredsPerBin-1) {
			result = append(result, rest[idx].pred)
		}
		result = append(result, largest.pred)
	}
	return result, nil
}
