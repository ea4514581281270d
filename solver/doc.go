// Package solver computes the offline optimum for a k-server/k-taxi
// instance on the real line. It reduces the problem to min-cost flow on a
// time-expanded request network, solves that network with successive
// shortest augmenting paths (Bellman-Ford-seeded Johnson potentials, then
// Dijkstra per augmentation), and reconstructs the optimal schedule from the
// resulting flow decomposition.
//
// Unlike the maximum-flow algorithms this package is grounded on, the
// network here requires negative-cost edges (a large negative bias on every
// request edge, forcing the solver to serve every request it can), so a
// private residual graph with per-edge cost is used instead of a
// capacity-only adjacency structure.
//
// Complexity: O(k) augmenting paths, each found by one Dijkstra pass over a
// graph with O(k+n) vertices and O(k*n + n^2) edges — adequate for the
// small-k regime this harness targets.
//
// Errors:
//
//	ErrSolverInfeasible    - the SPFA potential-seeding pass found a
//	                         negative-cost cycle (does not occur for the
//	                         acyclic network built from a valid Instance).
//	ErrReconstructionFailure - a decomposed path visited more than one
//	                           request edge at a single step, or a tuple set
//	                           could not be linearized into a schedule.
package solver
