package core

// Instance is an immutable problem instance: an initial server configuration
// plus the finite sequence of requests to serve, in order.
type Instance struct {
	initial  ServerConfiguration
	requests []Request
}

// NewInstance builds an Instance from an initial configuration and a request
// sequence. The request slice is copied; initial is already a value type.
// Returns ErrEmptyInstance if initial has zero servers: every instance
// source must guarantee k >= 1 (n, the request count, may be 0).
func NewInstance(initial ServerConfiguration, requests []Request) (Instance, error) {
	if initial.Len() == 0 {
		return Instance{}, ErrEmptyInstance
	}
	cp := make([]Request, len(requests))
	copy(cp, requests)
	return Instance{initial: initial, requests: cp}, nil
}

// K returns the number of servers.
func (in Instance) K() int { return in.initial.Len() }

// Length returns n, the number of requests.
func (in Instance) Length() int { return len(in.requests) }

// InitialPositions returns the instance's starting configuration.
func (in Instance) InitialPositions() ServerConfiguration { return in.initial }

// Request returns the i-th request.
func (in Instance) Request(i int) Request { return in.requests[i] }

// Requests returns a copy of the request sequence.
func (in Instance) Requests() []Request {
	cp := make([]Request, len(in.requests))
	copy(cp, in.requests)
	return cp
}

// IsTaxi reports whether the instance is a k-taxi instance, i.e. whether any
// request is a genuine Relocation (s != t). An instance with only Simple
// requests (or degenerate Relocation requests where s == t) classifies as
// k-server.
func (in Instance) IsTaxi() bool {
	for _, r := range in.requests {
		if r.Kind() == Relocation && r.ServicePosition() != r.ReleasePosition() {
			return true
		}
	}
	return false
}
