// Package online implements the online algorithms that decide, request by
// request, how to move servers on the real line: Double Coverage (DC),
// λ-Double Coverage (λDC), Biased Double Coverage (BDC), λ-Biased Double
// Coverage (λBDC), and the RobustFTP combiner.
//
// Every algorithm is a small, stateless step function over immutable core
// types: (config, request, prediction) -> (next config, cost) for k-server
// algorithms, or (config, active slot, request, prediction) -> (new active
// slot, next config, cost) for the k-taxi pair. Two shared driver loops
// (RunServer, RunTaxi) turn a step function plus an Instance into a
// core.Schedule; there is no dynamic dispatch in the per-request hot path.
//
// The package is side-effect-free: no logging, no I/O. Callers in package
// simulate are responsible for diagnostics.
//
// Errors:
//
//	ErrInvalidLambda           - λ outside [0,1].
//	ErrInvalidGamma            - γ <= 0 passed to RobustFTP.
//	ErrTaxiRequiresTwoServers  - BDC/λBDC driven against an instance with k != 2.
package online
