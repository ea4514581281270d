package core

// Prediction is a compact, schedule-independent hint: for each request t, the
// index of the server (in the configuration that results after serving it)
// predicted to be the one that served it. A Prediction has exactly
// instance.Length() entries and every entry lies in [0, instance.K()).
//
// Predictions are the interchange format between package predictor (which
// generates them from an optimal Schedule plus a noise model) and package
// online (whose learning-augmented drivers consume them request by request).
type Prediction struct {
	servers []int
}

// NewPrediction builds a Prediction from per-request server indices. It does
// not know k, so range validation against a specific instance happens in
// ToSchedule and Eta; NewPrediction itself only rejects negative indices,
// which can never be valid for any k.
func NewPrediction(servers []int) (Prediction, error) {
	cp := make([]int, len(servers))
	copy(cp, servers)
	for _, s := range cp {
		if s < 0 {
			return Prediction{}, ErrOutOfRangeServerIndex
		}
	}
	return Prediction{servers: cp}, nil
}

// Len returns n, the number of predicted entries.
func (p Prediction) Len() int { return len(p.servers) }

// PredictedServer returns the predicted server index for request i.
func (p Prediction) PredictedServer(i int) int { return p.servers[i] }

// Servers returns a copy of the underlying per-request server indices.
func (p Prediction) Servers() []int {
	cp := make([]int, len(p.servers))
	copy(cp, p.servers)
	return cp
}

// ToSchedule materializes the prediction against instance: at each step t,
// it moves the named server directly to request t's release position (the
// position a server ends up at after service — equal to the service
// position for Simple requests). This is a one-move-per-step reconstruction
// used only to measure prediction error (Eta); it is not necessarily
// normalized and does not represent an algorithm's actual trajectory. It
// returns ErrMismatchedSize if the prediction's length does not match
// instance.Length(), and ErrOutOfRangeServerIndex if any entry names a
// server outside [0, k).
func (p Prediction) ToSchedule(instance Instance) (Schedule, error) {
	if len(p.servers) != instance.Length() {
		return Schedule{}, ErrMismatchedSize
	}
	k := instance.K()
	sched := NewSchedule(instance.InitialPositions())
	for t, srv := range p.servers {
		if srv < 0 || srv >= k {
			return Schedule{}, ErrOutOfRangeServerIndex
		}
		req := instance.Request(t)
		sched = sched.AppendMove(srv, req.ReleasePosition())
	}
	return sched, nil
}

// Eta is the prediction error: the L1 schedule distance between solution
// (the optimal schedule for instance) and the schedule this prediction
// materializes via ToSchedule. Eta is 0 for a prediction that exactly
// reproduces solution's release positions at every step.
//
// solution must have the same length as instance.Length()+1; Eta returns
// ErrMismatchedSize otherwise, and ErrOutOfRangeServerIndex if p names a
// server outside [0, instance.K()).
func (p Prediction) Eta(solution Schedule, instance Instance) (float64, error) {
	predSchedule, err := p.ToSchedule(instance)
	if err != nil {
		return 0, err
	}
	return solution.Diff(predSchedule)
}
