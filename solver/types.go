package solver

import "errors"

// Sentinel errors for the solver package. Callers branch on these with
// errors.Is; context is attached at the call site with fmt.Errorf's %w.
var (
	// ErrSolverInfeasible indicates the SPFA pass that seeds the potentials
	// found a negative-cost cycle. The request network only has edges from
	// earlier to later requests, so it is acyclic for a well-formed Instance;
	// seeing this error indicates a graph-construction bug.
	ErrSolverInfeasible = errors.New("solver: flow infeasible")

	// ErrReconstructionFailure indicates a decomposed Source-to-Sink path
	// visited more than one From(t)->To(t) edge at a single hop, or the
	// recovered tuples could not be linearized into a schedule. This
	// signals a bug in graph construction or decomposition; it is never a
	// property of the input instance and must not be silently papered over.
	ErrReconstructionFailure = errors.New("solver: schedule reconstruction failed")
)

// costConst is the large negative bias placed on every From(t)->To(t) edge,
// forcing the min-cost flow to saturate as many request edges as capacity
// allows (i.e. serve every request) before it optimizes movement cost.
const costConst = -1e5
