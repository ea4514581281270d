package online

import (
	"math"

	"github.com/onlinealg/ksline/core"
)

// NewLambdaDC builds the λ-Double Coverage step function for trust parameter
// lambda. λ=0 recovers pure follow-the-prediction; λ=1 recovers DC exactly.
// Returns ErrInvalidLambda if lambda is outside [0,1].
func NewLambdaDC(lambda float64) (ServerStepFunc, error) {
	if err := validateLambda(lambda); err != nil {
		return nil, err
	}
	return func(config core.ServerConfiguration, req core.Request, predicted int) (core.ServerConfiguration, float64) {
		x := req.ServicePosition()
		left, right := core.AdjacentServers(config, req)

		switch {
		case !left.Valid:
			i := right.Index
			cost := math.Abs(config.At(i) - x)
			return config.FromMove(i, x), cost
		case !right.Valid:
			i := left.Index
			cost := math.Abs(config.At(i) - x)
			return config.FromMove(i, x), cost
		case left.Index == right.Index:
			return config, 0
		}

		i, j := left.Index, right.Index

		// The fast server sits on the same side of the request as the
		// prediction; the other is slow.
		fast, slow := j, i
		if predicted <= i {
			fast, slow = i, j
		}

		if lambda == 0 {
			// Pure follow-the-prediction: fast moves directly onto x, slow
			// does not move at all.
			cost := math.Abs(config.At(fast) - x)
			return config.FromMove(fast, x), cost
		}

		d1 := math.Abs(config.At(fast) - x)
		d2 := math.Abs(config.At(slow) - x)

		var fastMove, slowMove float64
		if d2 > lambda*d1 {
			fastMove = d1
			slowMove = lambda * d1
		} else {
			slowMove = d2
			fastMove = d2 / lambda
		}

		newFast := moveToward(config.At(fast), x, fastMove)
		newSlow := moveToward(config.At(slow), x, slowMove)

		// Rounding-safety clamp: if the (index-ordered) left/right positions
		// would cross after the move, snap both to the request point.
		newI, newJ := newFast, newSlow
		if fast == i {
			newI, newJ = newFast, newSlow
		} else {
			newI, newJ = newSlow, newFast
		}
		if newI > newJ {
			newI, newJ = x, x
		}

		next := config.FromMove(i, newI).FromMove(j, newJ)
		return next, fastMove + slowMove
	}, nil
}
