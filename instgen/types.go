package instgen

import (
	"github.com/onlinealg/ksline/core"
)

// InstanceSource produces a finite or unbounded stream of instances.
// Next returns (instance, true, nil) for each available instance, and
// (zero, false, nil) once exhausted. A non-nil error always means the
// source could not produce a well-formed instance and the caller should
// stop draining it.
type InstanceSource interface {
	Next() (core.Instance, bool, error)
}

// Tagged pairs an Instance with a stable identifier, so downstream export
// rows can be correlated back to the instance that produced them across a
// parallel simulate.Run sweep.
type Tagged struct {
	ID       string
	Instance core.Instance
}
