package online

import (
	"math"

	"github.com/onlinealg/ksline/core"
)

// DCStep is the Double Coverage transition: on each request it moves the two
// flanking servers inward by the same distance until one reaches the
// request, or moves the sole flanking server directly if the request lies
// outside the convex hull of server positions. It ignores the prediction
// argument; DC is the deterministic, prediction-free baseline.
func DCStep(config core.ServerConfiguration, req core.Request, _ int) (core.ServerConfiguration, float64) {
	x := req.ServicePosition()
	left, right := core.AdjacentServers(config, req)

	switch {
	case !left.Valid:
		// Request lies left of every server: move the unique boundary server.
		i := right.Index
		cost := math.Abs(config.At(i) - x)
		return config.FromMove(i, x), cost
	case !right.Valid:
		// Request lies right of every server.
		i := left.Index
		cost := math.Abs(config.At(i) - x)
		return config.FromMove(i, x), cost
	case left.Index == right.Index:
		// A server already sits on the request: zero-cost no-op.
		return config, 0
	default:
		l, r := left.Index, right.Index
		d := math.Min(x-config.At(l), config.At(r)-x)
		next := config.FromMove(l, config.At(l)+d)
		next = next.FromMove(r, config.At(r)-d)
		return next, 2 * d
	}
}
