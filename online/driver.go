package online

import "github.com/onlinealg/ksline/core"

// RunServer drives a k-server step function across an entire instance,
// building the resulting schedule. predictions may be nil for algorithms
// that ignore the prediction argument (e.g. DC); otherwise its length must
// equal instance.Length(), or core.ErrMismatchedSize is returned.
//
// Each step's raw output is normalized (per §4.D's driver loop) before being
// appended, since DC-family algorithms only guarantee the servers they moved
// stay correctly ordered relative to each other, not relative to servers
// they didn't touch.
func RunServer(instance core.Instance, predictions []int, step ServerStepFunc) (core.Schedule, error) {
	if predictions != nil && len(predictions) != instance.Length() {
		return core.Schedule{}, core.ErrMismatchedSize
	}

	sched := core.NewSchedule(instance.InitialPositions())
	config := instance.InitialPositions()
	for t := 0; t < instance.Length(); t++ {
		predicted := 0
		if predictions != nil {
			predicted = predictions[t]
		}
		next, _ := step(config, instance.Request(t), predicted)
		next = next.Normalize()
		sched = sched.AppendConfig(next)
		config = next
	}
	return sched, nil
}

// RunTaxi drives a k-taxi (k=2) step function across an entire instance,
// tracking the active server slot across steps. After each step, if the
// returned configuration has its two servers in crossed order
// (next.At(0) > next.At(1)), the active slot is flipped before
// normalization: the physical identity of "active" must follow the server,
// not the array slot, and normalization is about to reorder the slots.
//
// initialActive selects which server starts as active (0 or 1).
// predictions follows the same nil-means-ignored convention as RunServer.
func RunTaxi(instance core.Instance, predictions []int, initialActive int, step TaxiStepFunc) (core.Schedule, error) {
	if instance.K() != 2 {
		return core.Schedule{}, ErrTaxiRequiresTwoServers
	}
	if predictions != nil && len(predictions) != instance.Length() {
		return core.Schedule{}, core.ErrMismatchedSize
	}

	sched := core.NewSchedule(instance.InitialPositions())
	config := instance.InitialPositions()
	active := initialActive
	for t := 0; t < instance.Length(); t++ {
		predicted := 0
		if predictions != nil {
			predicted = predictions[t]
		}
		newActive, next, _ := step(config, active, instance.Request(t), predicted)
		if next.At(0) > next.At(1) {
			newActive = 1 - newActive
		}
		next = next.Normalize()
		sched = sched.AppendConfig(next)
		config = next
		active = newActive
	}
	return sched, nil
}
