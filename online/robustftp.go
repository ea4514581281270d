package online

import "github.com/onlinealg/ksline/core"

const (
	sideDC = iota
	sideFTP
)

// RobustFTP combines a deterministic Double Coverage baseline with a pure
// follow-the-prediction policy (λDC at λ=0), switching between the two
// shadow schedules via a doubling trigger on a per-side cost bound. Gamma
// controls how aggressively the bound grows on each switch; RobustFTP is
// required to exist for any γ > 0.
type RobustFTP struct {
	gamma float64
}

// NewRobustFTP builds a combiner for the given γ. Returns ErrInvalidGamma if
// gamma <= 0.
func NewRobustFTP(gamma float64) (*RobustFTP, error) {
	if gamma <= 0 {
		return nil, ErrInvalidGamma
	}
	return &RobustFTP{gamma: gamma}, nil
}

// Run drives both shadow schedules (DC and FTP) in lockstep against
// instance and predictions, then emits the combined schedule by switching
// between them per the doubling trigger. The returned schedule's own cost
// (via Schedule.Cost) is the algorithm's reported cost — it is recomputed
// from the emitted trajectory, not the sum of the shadows' running costs,
// which can differ at switch boundaries.
func (r *RobustFTP) Run(instance core.Instance, predictions []int) (core.Schedule, error) {
	dcSched, err := RunServer(instance, nil, DCStep)
	if err != nil {
		return core.Schedule{}, err
	}
	ftpStep, err := NewLambdaDC(0)
	if err != nil {
		return core.Schedule{}, err
	}
	ftpSched, err := RunServer(instance, predictions, ftpStep)
	if err != nil {
		return core.Schedule{}, err
	}

	dcCosts := cumulativeCosts(dcSched)
	ftpCosts := cumulativeCosts(ftpSched)

	combined := core.NewSchedule(instance.InitialPositions())
	current := sideFTP
	bound := 1.0

	for t := 0; t < instance.Length(); t++ {
		cDC := dcCosts[t+1]
		cFTP := ftpCosts[t+1]

		// The while loop (not an if) lets the bound catch up in one step
		// when both sides simultaneously exceed stale bounds.
		for (current == sideDC && cDC > bound) || (current == sideFTP && cFTP > bound) {
			if current == sideDC {
				current = sideFTP
			} else {
				current = sideDC
			}
			bound *= 1 + r.gamma
		}

		var next core.ServerConfiguration
		if current == sideDC {
			next = dcSched.At(t + 1)
		} else {
			next = ftpSched.At(t + 1)
		}
		combined = combined.AppendConfig(next)
	}

	return combined, nil
}

// cumulativeCosts returns, for each index t, the telescoping cost of s
// through step t (cumulativeCosts[0] == 0).
func cumulativeCosts(s core.Schedule) []float64 {
	costs := make([]float64, s.Len())
	for t := 0; t+1 < s.Len(); t++ {
		d, _ := s.At(t).Diff(s.At(t + 1))
		costs[t+1] = costs[t] + d
	}
	return costs
}
