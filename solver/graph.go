package solver

import (
	"math"

	"github.com/onlinealg/ksline/core"
)

// reduction is the vertex layout and moveEdge bookkeeping for one instance's
// flow network: Source, Sink, Init(i) for i in [0,k), From(t)/To(t) for
// t in [0,n). moveEdgeOf maps the mcmfGraph edge index of each
// From(t)->To(t) edge to its request index t, used during decomposition to
// recover which
// From(t)->To(t) hops a path took without re-deriving vertex ids from
// scratch.
type reduction struct {
	g          *mcmfGraph
	source     int
	sink       int
	k          int
	n          int
	initOf     []int // initOf[i] = vertex id of Init(i)
	fromOf     []int // fromOf[t] = vertex id of From(t)
	toOf       []int // toOf[t] = vertex id of To(t)
	moveEdgeOf map[int]int // edge index (From(t)->To(t)) -> t
}

// buildReduction constructs the min-cost flow network described for
// Instance in: Source/Sink plus an Init vertex per server and a From/To
// vertex pair per request, wired per the fixed edge-cost rules (Init->From
// by distance to the service point, From->To by the costConst bias, To->From
// by release-to-service distance for any earlier-to-later request pair).
func buildReduction(in core.Instance) *reduction {
	k := in.K()
	n := in.Length()

	// vertex ids: 0=Source, 1=Sink, 2..2+k-1=Init(i), then 2n from 2+k on, in From/To pairs.
	source := 0
	sink := 1
	initBase := 2
	reqBase := initBase + k

	r := &reduction{
		source:     source,
		sink:       sink,
		k:          k,
		n:          n,
		initOf:     make([]int, k),
		fromOf:     make([]int, n),
		toOf:       make([]int, n),
		moveEdgeOf: make(map[int]int),
	}
	for i := 0; i < k; i++ {
		r.initOf[i] = initBase + i
	}
	for t := 0; t < n; t++ {
		r.fromOf[t] = reqBase + 2*t
		r.toOf[t] = reqBase + 2*t + 1
	}

	total := reqBase + 2*n
	r.g = newMCMFGraph(total)

	initial := in.InitialPositions()
	for i := 0; i < k; i++ {
		r.g.addEdge(source, r.initOf[i], 1, 0)
		r.g.addEdge(r.initOf[i], sink, 1, 0)
		for t := 0; t < n; t++ {
			req := in.Request(t)
			dist := math.Abs(initial.At(i) - req.ServicePosition())
			r.g.addEdge(r.initOf[i], r.fromOf[t], 1, dist)
		}
	}

	for t := 0; t < n; t++ {
		moveEdgeIdx := len(r.g.edges)
		r.g.addEdge(r.fromOf[t], r.toOf[t], 1, costConst)
		r.moveEdgeOf[moveEdgeIdx] = t
		r.g.addEdge(r.toOf[t], sink, 1, 0)
	}

	for a := 0; a < n; a++ {
		reqA := in.Request(a)
		for b := a + 1; b < n; b++ {
			reqB := in.Request(b)
			dist := math.Abs(reqA.ReleasePosition() - reqB.ServicePosition())
			r.g.addEdge(r.toOf[a], r.fromOf[b], 1, dist)
		}
	}

	return r
}
