package online

import (
	"errors"
	"math"

	"github.com/onlinealg/ksline/core"
)

// Sentinel errors returned by this package. Callers branch with errors.Is;
// context, when attached, is added with fmt.Errorf's %w at the call site.
var (
	// ErrInvalidLambda indicates a trust parameter λ outside the closed
	// interval [0,1] was passed to a λ-variant constructor.
	ErrInvalidLambda = errors.New("online: lambda must lie in [0,1]")

	// ErrInvalidGamma indicates a non-positive γ was passed to NewRobustFTP.
	ErrInvalidGamma = errors.New("online: gamma must be positive")

	// ErrTaxiRequiresTwoServers indicates RunTaxi (or BDC/λBDC) was driven
	// against an instance whose server count is not exactly 2.
	ErrTaxiRequiresTwoServers = errors.New("online: taxi algorithms require exactly two servers")
)

// ServerStepFunc is the per-request transition for a k-server algorithm:
// given the current configuration, the request to serve, and the predicted
// server index (ignored by algorithms that don't use predictions, such as
// DC), it returns the unnormalized next configuration and the cost billed
// for this step.
type ServerStepFunc func(config core.ServerConfiguration, req core.Request, predicted int) (next core.ServerConfiguration, cost float64)

// TaxiStepFunc is the per-request transition for a k-taxi (k=2) algorithm.
// active is the index of the slot currently holding the "active" server
// identity; the function returns the new active slot (before the driver's
// own crossing correction — see RunTaxi), the unnormalized next
// configuration, and the cost billed for this step.
type TaxiStepFunc func(config core.ServerConfiguration, active int, req core.Request, predicted int) (newActive int, next core.ServerConfiguration, cost float64)

// moveToward returns pos displaced by delta toward target, clamped so it
// never overshoots target. It is the rounding-safety clamp for partial
// moves: BDC, λBDC and λDC's two-sided case route their fractional moves
// through it so a server can never cross past the point it was heading for.
// DC's moves and moves onto a request at the hull boundary are computed
// directly.
func moveToward(pos, target, delta float64) float64 {
	switch {
	case pos < target:
		next := pos + delta
		if next > target {
			return target
		}
		return next
	case pos > target:
		next := pos - delta
		if next < target {
			return target
		}
		return next
	default:
		return pos
	}
}

// finishRelocation applies the free teleport from a Relocation request's
// service point to its release point, once the serving (active) slot for
// this step has been determined. Simple requests (and degenerate
// Relocation(s,s) requests) leave config untouched beyond the caller's own
// movement.
func finishRelocation(config core.ServerConfiguration, servingSlot int, req core.Request, cost float64) (int, core.ServerConfiguration, float64) {
	if req.Kind() == core.Relocation && req.ReleasePosition() != req.ServicePosition() {
		config = config.FromMove(servingSlot, req.ReleasePosition())
	}
	return servingSlot, config, cost
}

// validateLambda rejects any λ outside [0,1].
func validateLambda(lambda float64) error {
	if lambda < 0 || lambda > 1 || math.IsNaN(lambda) {
		return ErrInvalidLambda
	}
	return nil
}
