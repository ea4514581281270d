package solver

import (
	"fmt"
	"sort"

	"github.com/onlinealg/ksline/core"
)

// Solve computes the offline-optimal schedule and its true movement cost for
// in, via the min-cost flow reduction described in package doc. The returned
// schedule is in lazy form: every step moves exactly one server to the
// service point of the corresponding request (see core.Schedule.ToLazy).
func Solve(in core.Instance) (core.Schedule, float64, error) {
	r := buildReduction(in)

	flowResult, err := r.g.solve(r.source, r.sink)
	if err != nil {
		return core.Schedule{}, 0, fmt.Errorf("solver: %w", err)
	}

	tuples, err := r.decompose()
	if err != nil {
		return core.Schedule{}, 0, fmt.Errorf("solver: %w", err)
	}

	n := in.Length()
	servicePos := func(req int) float64 { return in.Request(req).ServicePosition() }
	permutation, relabelled := relabel(tuples, in.K(), servicePos)

	sort.Slice(relabelled, func(a, b int) bool { return relabelled[a].req < relabelled[b].req })
	if len(relabelled) != n {
		return core.Schedule{}, 0, fmt.Errorf("solver: %w: expected %d served requests, got %d", ErrReconstructionFailure, n, len(relabelled))
	}
	for t, tp := range relabelled {
		if tp.req != t {
			return core.Schedule{}, 0, fmt.Errorf("solver: %w: missing tuple for request %d", ErrReconstructionFailure, t)
		}
	}

	initial := in.InitialPositions()
	newPositions := make([]core.Position, in.K())
	for old, pos := range initial.Positions() {
		newPositions[permutation[old]] = pos
	}
	sched := core.NewSchedule(core.NewServerConfiguration(newPositions))
	for _, tp := range relabelled {
		sched = sched.AppendMove(tp.server, in.Request(tp.req).ServicePosition())
	}

	trueCost := flowResult.cost - costConst*float64(n)
	return sched, trueCost, nil
}
