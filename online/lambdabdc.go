package online

import (
	"math"

	"github.com/onlinealg/ksline/core"
)

// NewLambdaBDC builds the λ-Biased Double Coverage step function for k-taxi
// (k=2) and trust parameter lambda. Returns ErrInvalidLambda if lambda is
// outside [0,1].
func NewLambdaBDC(lambda float64) (TaxiStepFunc, error) {
	if err := validateLambda(lambda); err != nil {
		return nil, err
	}
	return func(config core.ServerConfiguration, active int, req core.Request, predicted int) (int, core.ServerConfiguration, float64) {
		passive := 1 - active
		s := req.ServicePosition()
		posActive := config.At(active)
		posPassive := config.At(passive)

		if posActive == s {
			return finishRelocation(config, active, req, 0)
		}
		if posPassive == s {
			return finishRelocation(config, passive, req, 0)
		}

		var dp, da float64
		if predicted == active {
			dp = math.Min((1+lambda)*math.Abs(s-posActive), math.Abs(s-posPassive))
			da = dp / (1 + lambda)
		} else if lambda == 0 {
			dp = math.Abs(s - posPassive)
			da = 0
		} else {
			dp = math.Min((1+1/lambda)*math.Abs(s-posActive), math.Abs(s-posPassive))
			da = dp / (1 + 1/lambda)
		}

		newActivePos := moveToward(posActive, s, da)
		newPassivePos := moveToward(posPassive, s, dp)
		next := config.FromMove(active, newActivePos).FromMove(passive, newPassivePos)

		servingSlot := passive
		if newActivePos == s {
			servingSlot = active
		}
		return finishRelocation(next, servingSlot, req, da+dp)
	}, nil
}
