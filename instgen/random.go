package instgen

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"github.com/onlinealg/ksline/core"
)

// ErrInvalidRandomOptions indicates a RandomOptions field is out of range.
var ErrInvalidRandomOptions = errors.New("instgen: invalid random instance options")

// RandomOptions configures RandomInstanceSource. Positions are drawn
// uniformly from [Min, Max]; each instance gets K servers (initial positions
// also drawn uniformly in range) and N requests. TaxiFraction, in [0,1], is
// the probability any given request is a genuine Relocation rather than a
// Simple request.
type RandomOptions struct {
	K             int
	N             int
	Min, Max      float64
	TaxiFraction  float64
	NumInstances  int
	Seed          int64
}

// RandomInstanceSource generates uniformly random instances, grounded on
// src/instance_generator.rs's uniform-position sampling strategy.
type RandomInstanceSource struct {
	opts RandomOptions
	rng  *rand.Rand
	done int
}

// NewRandomInstanceSource builds a source from opts. Returns
// ErrInvalidRandomOptions if K<1, N<0, Max<=Min, TaxiFraction outside
// [0,1], or NumInstances<1.
func NewRandomInstanceSource(opts RandomOptions) (*RandomInstanceSource, error) {
	if opts.K < 1 || opts.N < 0 || opts.Max <= opts.Min ||
		opts.TaxiFraction < 0 || opts.TaxiFraction > 1 || opts.NumInstances < 1 {
		return nil, ErrInvalidRandomOptions
	}
	return &RandomInstanceSource{opts: opts, rng: rngFromSeed(opts.Seed)}, nil
}

// Next draws the next random instance, or (Instance{}, false, nil) once
// NumInstances have been produced.
func (s *RandomInstanceSource) Next() (core.Instance, bool, error) {
	if s.done >= s.opts.NumInstances {
		return core.Instance{}, false, nil
	}
	s.done++

	initial := make([]core.Position, s.opts.K)
	for i := range initial {
		initial[i] = s.uniform()
	}
	config := core.NewServerConfiguration(initial).Normalize()

	requests := make([]core.Request, s.opts.N)
	for i := range requests {
		if s.rng.Float64() < s.opts.TaxiFraction {
			requests[i] = core.NewRelocationRequest(s.uniform(), s.uniform())
		} else {
			requests[i] = core.NewSimpleRequest(s.uniform())
		}
	}

	in, err := core.NewInstance(config, requests)
	if err != nil {
		return core.Instance{}, false, err
	}
	return in, true, nil
}

// NextTagged is Next with a generated correlation ID attached, for callers
// that want to label exported rows back to the instance that produced them.
func (s *RandomInstanceSource) NextTagged() (Tagged, bool, error) {
	in, ok, err := s.Next()
	if err != nil || !ok {
		return Tagged{}, ok, err
	}
	return Tagged{ID: uuid.New().String(), Instance: in}, true, nil
}

func (s *RandomInstanceSource) uniform() core.Position {
	span := s.opts.Max - s.opts.Min
	return s.opts.Min + s.rng.Float64()*span
}
