// Package simulate is the driver that ties core, online, and predictor
// together: for each pre-solved Sample and each lambda in a linspace over
// [0,1], it runs the applicable deterministic baseline (DC for k-server,
// BDC for k-taxi) once, then the prediction-augmented variant and (server
// instances only) the RobustFTP combiner for every prediction in the
// sample, emitting one ResultRow per (sample, lambda, prediction) triple.
//
// Execution is embarrassingly parallel over samples: Run fans out across a
// bounded worker pool (golang.org/x/sync/errgroup) with each worker writing
// into its own output slice, concatenated only after every worker finishes,
// so no lock is held during simulation itself.
//
// Diagnostic sanity checks (never aborts, only structured logrus warnings)
// flag violations of the lambda-DC/lambda-BDC cost bound, a cost reported
// below the known optimum, and a perfect prediction at lambda=0 failing to
// recover the optimum exactly.
package simulate
