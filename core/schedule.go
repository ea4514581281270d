package core

// Schedule is a non-empty, ordered sequence of server configurations: the
// trajectory of all servers over time. Schedules are built once via
// NewSchedule/AppendConfig/AppendMove and are read-only afterward; every
// append returns a new Schedule value rather than mutating in place, so a
// Schedule under construction can still be safely handed to a reader.
type Schedule struct {
	configs []ServerConfiguration
}

// NewSchedule starts a schedule with a single initial configuration.
func NewSchedule(initial ServerConfiguration) Schedule {
	return Schedule{configs: []ServerConfiguration{initial}}
}

// Len returns the number of configurations in the schedule (n+1 for an
// n-request run: the initial configuration plus one per request).
func (s Schedule) Len() int { return len(s.configs) }

// At returns the configuration at step t.
func (s Schedule) At(t int) ServerConfiguration { return s.configs[t] }

// Last returns the most recently appended configuration.
func (s Schedule) Last() ServerConfiguration { return s.configs[len(s.configs)-1] }

// Configs returns a copy of the configuration sequence.
func (s Schedule) Configs() []ServerConfiguration {
	cp := make([]ServerConfiguration, len(s.configs))
	copy(cp, s.configs)
	return cp
}

// AppendConfig returns a new Schedule with config appended after s's steps.
func (s Schedule) AppendConfig(config ServerConfiguration) Schedule {
	next := make([]ServerConfiguration, len(s.configs)+1)
	copy(next, s.configs)
	next[len(s.configs)] = config
	return Schedule{configs: next}
}

// AppendMove returns a new Schedule whose last step is s.Last().FromMove(i, pos).
func (s Schedule) AppendMove(i int, pos Position) Schedule {
	return s.AppendConfig(s.Last().FromMove(i, pos))
}

// Cost is the telescoping sum of adjacent-pair L1 diffs.
func (s Schedule) Cost() float64 {
	var total float64
	for t := 0; t+1 < len(s.configs); t++ {
		d, err := s.configs[t].Diff(s.configs[t+1])
		if err != nil {
			// Every step of a single Schedule shares one k by construction
			// (AppendConfig never changes server count via FromMove); a
			// mismatch here means a caller built configs out of band.
			panic(err)
		}
		total += d
	}
	return total
}

// Diff is the sum of per-step configuration diffs between two schedules of
// equal length. Returns ErrMismatchedSize otherwise.
func (s Schedule) Diff(other Schedule) (float64, error) {
	if len(s.configs) != len(other.configs) {
		return 0, ErrMismatchedSize
	}
	var total float64
	for t := range s.configs {
		d, err := s.configs[t].Diff(other.configs[t])
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// ToLazy rewrites the schedule into its lazy equivalent: a schedule of equal
// length where step t moves exactly the server sitting at requests[t]'s
// service position, and no other server. This discards "free rides" where a
// DC-like algorithm nudges a non-serving server at the same step.
//
// ToLazy assumes the precondition that, at every step t, some server in
// s.At(t+1) sits exactly at instance.Request(t).ServicePosition(); this holds
// for any valid optimal schedule and for schedules produced by the online
// algorithms in package online. If the precondition fails, ToLazy returns
// ErrPredictionExtraction rather than guessing.
func (s Schedule) ToLazy(instance Instance) (Schedule, error) {
	if len(s.configs) == 0 {
		return Schedule{}, nil
	}
	lazy := NewSchedule(s.configs[0])
	for t := 0; t+1 < len(s.configs); t++ {
		idx, ok := findServerAt(s.configs[t+1], instance.Request(t).ServicePosition())
		if !ok {
			return Schedule{}, ErrPredictionExtraction
		}
		lazy = lazy.AppendMove(idx, instance.Request(t).ServicePosition())
	}
	return lazy, nil
}

// ToPrediction derives the Prediction encoded by this schedule: for each
// step t, the index of the server in s.At(t+1) sitting at
// instance.Request(t)'s service position. Returns ErrPredictionExtraction if
// no such server exists at some step, which indicates the schedule is not a
// valid optimal solution for instance.
func (s Schedule) ToPrediction(instance Instance) (Prediction, error) {
	n := instance.Length()
	servers := make([]int, n)
	for t := 0; t < n; t++ {
		idx, ok := findServerAt(s.configs[t+1], instance.Request(t).ServicePosition())
		if !ok {
			return Prediction{}, ErrPredictionExtraction
		}
		servers[t] = idx
	}
	return NewPrediction(servers)
}

// findServerAt returns the index of the server in c sitting exactly at x.
func findServerAt(c ServerConfiguration, x Position) (int, bool) {
	for i := 0; i < c.Len(); i++ {
		if c.At(i) == x {
			return i, true
		}
	}
	return 0, false
}
