package solver

import (
	"container/heap"
	"math"
)

// mcmfEdge is one directed arc of the residual graph. Every addEdge call
// appends a forward/backward pair; edges[i^1] is always the reverse of
// edges[i], mirroring the residual-capacity bookkeeping of augmenting-path
// max-flow but carrying a per-edge cost as well.
type mcmfEdge struct {
	to       int
	cap      float64
	cost     float64
	residual int // index, in edges, of the reverse edge
}

// mcmfGraph is a private adjacency-list min-cost flow network. It is built
// fresh per Solve call and is not exported: callers only ever see the
// reduction from core.Instance, never the flow graph itself.
type mcmfGraph struct {
	n     int
	edges []mcmfEdge
	adj   [][]int
}

func newMCMFGraph(n int) *mcmfGraph {
	return &mcmfGraph{n: n, adj: make([][]int, n)}
}

// addEdge adds a capacity/cost arc u->v and its zero-capacity reverse.
func (g *mcmfGraph) addEdge(u, v int, cap, cost float64) {
	g.adj[u] = append(g.adj[u], len(g.edges))
	g.edges = append(g.edges, mcmfEdge{to: v, cap: cap, cost: cost, residual: len(g.edges) + 1})
	g.adj[v] = append(g.adj[v], len(g.edges))
	g.edges = append(g.edges, mcmfEdge{to: u, cap: 0, cost: -cost, residual: len(g.edges) - 1})
}

// mcmfResult is the outcome of a min-cost flow solve: the total flow pushed
// and its accumulated cost. The residual capacities stay in the graph's own
// edges, which callers walk to decompose the flow.
type mcmfResult struct {
	flow float64
	cost float64
}

// solve runs successive shortest augmenting paths from source to sink.
// Edge costs may be negative (the costConst bias on request edges), so the
// first shortest-path pass is Bellman-Ford/SPFA to seed Johnson potentials;
// every subsequent pass reduces costs by those potentials and can then use
// Dijkstra with a min-heap, exactly like the teacher's lazy-decrease-key
// runner loop, just keyed by reduced cost instead of raw distance.
func (g *mcmfGraph) solve(source, sink int) (mcmfResult, error) {
	potential, err := g.seedPotentials(source)
	if err != nil {
		return mcmfResult{}, err
	}

	var result mcmfResult
	for {
		dist, prevEdge, reached := g.dijkstraReduced(source, potential)
		if !reached[sink] {
			break
		}
		for v := 0; v < g.n; v++ {
			if reached[v] {
				potential[v] += dist[v]
			}
		}

		bottleneck := math.Inf(1)
		for v := sink; v != source; {
			ei := prevEdge[v]
			if g.edges[ei].cap < bottleneck {
				bottleneck = g.edges[ei].cap
			}
			v = g.edges[g.edges[ei].residual].to
		}

		for v := sink; v != source; {
			ei := prevEdge[v]
			g.edges[ei].cap -= bottleneck
			g.edges[g.edges[ei].residual].cap += bottleneck
			v = g.edges[g.edges[ei].residual].to
		}

		result.flow += bottleneck
		result.cost += bottleneck * (potential[sink] - potential[source])
	}
	return result, nil
}

// seedPotentials runs SPFA (queue-based Bellman-Ford) from source to obtain
// an initial feasible potential function, required because the network
// contains negative-cost edges (the costConst bias). Returns
// ErrSolverInfeasible if a negative cycle is detected, which should never
// happen for the acyclic-by-construction request network.
func (g *mcmfGraph) seedPotentials(source int) ([]float64, error) {
	dist := make([]float64, g.n)
	inQueue := make([]bool, g.n)
	visits := make([]int, g.n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	queue := []int{source}
	inQueue[source] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		for _, ei := range g.adj[u] {
			e := g.edges[ei]
			if e.cap <= 0 {
				continue
			}
			nd := dist[u] + e.cost
			if nd < dist[e.to] {
				dist[e.to] = nd
				if !inQueue[e.to] {
					queue = append(queue, e.to)
					inQueue[e.to] = true
					visits[e.to]++
					if visits[e.to] > g.n {
						return nil, ErrSolverInfeasible
					}
				}
			}
		}
	}

	for i := range dist {
		if math.IsInf(dist[i], 1) {
			dist[i] = 0
		}
	}
	return dist, nil
}

// dijkstraReduced runs one Dijkstra pass over reduced costs
// (cost(u,v) + potential[u] - potential[v], which is always >= 0 once
// potential is feasible), using a lazy-decrease-key min-heap in the same
// style as the teacher's Dijkstra runner.
func (g *mcmfGraph) dijkstraReduced(source int, potential []float64) (dist []float64, prevEdge []int, reached []bool) {
	dist = make([]float64, g.n)
	prevEdge = make([]int, g.n)
	reached = make([]bool, g.n)
	visited := make([]bool, g.n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevEdge[i] = -1
	}
	dist[source] = 0
	reached[source] = true

	pq := make(mcmfPQ, 0, g.n)
	heap.Init(&pq)
	heap.Push(&pq, &mcmfItem{node: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*mcmfItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, ei := range g.adj[u] {
			e := g.edges[ei]
			if e.cap <= 0 {
				continue
			}
			reduced := e.cost + potential[u] - potential[e.to]
			nd := dist[u] + reduced
			if nd < dist[e.to] {
				dist[e.to] = nd
				prevEdge[e.to] = ei
				reached[e.to] = true
				heap.Push(&pq, &mcmfItem{node: e.to, dist: nd})
			}
		}
	}
	return dist, prevEdge, reached
}

// mcmfItem and mcmfPQ mirror the teacher's nodeItem/nodePQ lazy-decrease-key
// min-heap, keyed by reduced distance instead of raw edge weight.
type mcmfItem struct {
	node int
	dist float64
}

type mcmfPQ []*mcmfItem

func (pq mcmfPQ) Len() int            { return len(pq) }
func (pq mcmfPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq mcmfPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *mcmfPQ) Push(x interface{}) { *pq = append(*pq, x.(*mcmfItem)) }
func (pq *mcmfPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
