// Package core defines the fundamental data model for online algorithms on
// the real line: requests, server configurations, instances, schedules, and
// predictions.
//
// Every type in this package is immutable once constructed. Mutation always
// produces a new value (ServerConfiguration.FromMove, Schedule.AppendMove)
// rather than editing in place; this keeps the package safe to share across
// goroutines without locks, since there is nothing to lock.
//
// The package groups Request, ServerConfiguration, Instance, Schedule, and
// Prediction together rather than splitting them into separate packages:
// Schedule.ToPrediction and Prediction.ToSchedule both need an Instance, and
// Prediction.Eta needs a Schedule, so keeping them under one roof avoids an
// import cycle between otherwise-small packages.
//
// Errors:
//
//	ErrMismatchedSize        - diff or comparison between values of unequal size.
//	ErrOutOfRangeServerIndex - a prediction names a server index outside [0,k).
//	ErrPredictionExtraction  - a schedule step has no server sitting at the
//	                           request's service position.
//	ErrEmptyInstance         - an instance was constructed with zero servers.
package core
