package online

import (
	"math"

	"github.com/onlinealg/ksline/core"
)

// BDCStep is the Biased Double Coverage transition for k-taxi (k=2). It
// ignores the prediction argument; BDC is the deterministic taxi baseline,
// the analogue of DC for k-server.
func BDCStep(config core.ServerConfiguration, active int, req core.Request, _ int) (int, core.ServerConfiguration, float64) {
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

	dp := math.Min(2*math.Abs(s-posActive), math.Abs(s-posPassive))
	da := dp / 2

	newActivePos := moveToward(posActive, s, da)
	newPassivePos := moveToward(posPassive, s, dp)
	next := config.FromMove(active, newActivePos).FromMove(passive, newPassivePos)

	servingSlot := passive
	if newActivePos == s {
		servingSlot = active
	}
	return finishRelocation(next, servingSlot, req, da+dp)
}
