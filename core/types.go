package core

import "errors"

// Sentinel errors shared across the core package. Callers branch on these
// with errors.Is; context is attached at the call site with fmt.Errorf's %w,
// never baked into the sentinel message itself.
var (
	// ErrMismatchedSize indicates a diff (or other pairwise operation) was
	// attempted between two ServerConfiguration or Schedule values of
	// different sizes.
	ErrMismatchedSize = errors.New("core: mismatched size")

	// ErrOutOfRangeServerIndex indicates a Prediction entry names a server
	// index outside [0, k).
	ErrOutOfRangeServerIndex = errors.New("core: prediction server index out of range")

	// ErrPredictionExtraction indicates a schedule step does not move any
	// server onto the service position of the corresponding request, so no
	// predicted server index can be derived from it.
	ErrPredictionExtraction = errors.New("core: cannot extract predicted server from schedule")

	// ErrEmptyInstance indicates an Instance was constructed with zero
	// servers (k must be >= 1).
	ErrEmptyInstance = errors.New("core: instance must have at least one server")
)

// Position is a scalar coordinate on the real line.
type Position = float64

// RequestKind distinguishes the two request variants.
type RequestKind int

const (
	// Simple requests must be served at a single point x.
	Simple RequestKind = iota
	// Relocation requests must be served at s, after which the serving
	// server is relocated (teleported, at no cost) to t.
	Relocation
)

// Request is a tagged union over Simple(x) and Relocation(s, t). Simple is
// the special case s == t; constructing one with NewSimpleRequest keeps both
// fields equal so ServicePosition and ReleasePosition agree.
type Request struct {
	kind RequestKind
	s    Position
	t    Position
}

// NewSimpleRequest builds a Simple(x) request.
func NewSimpleRequest(x Position) Request {
	return Request{kind: Simple, s: x, t: x}
}

// NewRelocationRequest builds a Relocation(s, t) request. When s == t this is
// indistinguishable from a Simple request.
func NewRelocationRequest(s, t Position) Request {
	return Request{kind: Relocation, s: s, t: t}
}

// Kind reports whether the request is Simple or Relocation.
func (r Request) Kind() RequestKind { return r.kind }

// IsSimple reports whether the request is the Simple variant.
func (r Request) IsSimple() bool { return r.kind == Simple }

// ServicePosition is the point a server must reach to serve the request.
func (r Request) ServicePosition() Position { return r.s }

// ReleasePosition is the point the serving server ends up at after service
// (equal to ServicePosition for Simple requests).
func (r Request) ReleasePosition() Position { return r.t }

// ServerConfiguration is an ordered, fixed-size sequence of server positions.
// A configuration is normalized when positions are non-decreasing; most
// operations assume normalization and document it when they don't.
type ServerConfiguration struct {
	positions []Position
}

// NewServerConfiguration copies positions into a new configuration. The
// input is not retained, so the caller's slice can be reused afterward.
func NewServerConfiguration(positions []Position) ServerConfiguration {
	cp := make([]Position, len(positions))
	copy(cp, positions)
	return ServerConfiguration{positions: cp}
}

// Len returns k, the number of servers in the configuration.
func (c ServerConfiguration) Len() int { return len(c.positions) }

// At returns the position of server i. Panics if i is out of range, matching
// slice-indexing semantics elsewhere in the package.
func (c ServerConfiguration) At(i int) Position { return c.positions[i] }

// Positions returns a copy of the underlying position slice; mutating the
// result does not affect c.
func (c ServerConfiguration) Positions() []Position {
	cp := make([]Position, len(c.positions))
	copy(cp, c.positions)
	return cp
}
