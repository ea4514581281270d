package solver

import "sort"

// tuple is one (server, request) pairing recovered from a saturated
// From(t)->To(t) edge during path decomposition, before server ids are
// relabelled to match sorted initial positions.
type tuple struct {
	server int
	req    int
}

// decompose walks the saturated Source->...->Sink path rooted at each
// Init(i), in order, collecting every From(t)->To(t) hop it passes through.
// Each Init(i) carries exactly one unit of flow (capacity 1 on every Source
// and Init edge), so at most one path originates there; a used
// Init(i)->Sink edge means server i was never assigned a request.
func (r *reduction) decompose() ([]tuple, error) {
	var tuples []tuple

	usedForward := func(ei int) bool {
		return ei%2 == 0 && r.g.edges[ei].cap == 0
	}

	for i := 0; i < r.k; i++ {
		v := r.initOf[i]
		reachedSink := false
		for {
			var next int
			found := false
			for _, ei := range r.g.adj[v] {
				if !usedForward(ei) {
					continue
				}
				to := r.g.edges[ei].to
				if t, ok := r.moveEdgeOf[ei]; ok {
					tuples = append(tuples, tuple{server: i, req: t})
					next = to
					found = true
					break
				}
				if to == r.sink {
					reachedSink = true
					found = true
					break
				}
				// a To(a)->From(b) chaining edge: keep walking.
				next = to
				found = true
			}
			if !found {
				return nil, ErrReconstructionFailure
			}
			if reachedSink {
				break
			}
			v = next
		}
	}
	return tuples, nil
}

// relabel renumbers every original Init-vertex index 0..k-1 so that the
// server serving the leftmost first request becomes server 0, the next
// becomes server 1, and so on; servers that never serve a request (always
// some when k > n)
// sort after every serving server, in their original order, since they hold
// still for the whole schedule and their relative label is otherwise
// unconstrained. It returns the old->new index permutation and the tuples
// rewritten under it.
func relabel(tuples []tuple, k int, servicePosition func(req int) float64) ([]int, []tuple) {
	firstReq := make(map[int]int)
	for _, tp := range tuples {
		if existing, ok := firstReq[tp.server]; !ok || tp.req < existing {
			firstReq[tp.server] = tp.req
		}
	}

	servers := make([]int, k)
	for i := range servers {
		servers[i] = i
	}
	sort.Slice(servers, func(a, b int) bool {
		sa, usedA := firstReq[servers[a]]
		sb, usedB := firstReq[servers[b]]
		if usedA != usedB {
			return usedA // used servers sort before unused ones
		}
		if !usedA {
			return servers[a] < servers[b]
		}
		pa, pb := servicePosition(sa), servicePosition(sb)
		if pa != pb {
			return pa < pb
		}
		return servers[a] < servers[b]
	})

	permutation := make([]int, k)
	for newIdx, old := range servers {
		permutation[old] = newIdx
	}

	relabelled := make([]tuple, len(tuples))
	for i, tp := range tuples {
		relabelled[i] = tuple{server: permutation[tp.server], req: tp.req}
	}
	return permutation, relabelled
}
