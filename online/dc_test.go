package online_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onlinealg/ksline/core"
	"github.com/onlinealg/ksline/online"
)

func cfg(positions ...core.Position) core.ServerConfiguration {
	return core.NewServerConfiguration(positions)
}

func mustInstance(t *testing.T, initial core.ServerConfiguration, requests []core.Request) core.Instance {
	t.Helper()
	in, err := core.NewInstance(initial, requests)
	require.NoError(t, err)
	return in
}

func simpleReqs(xs ...core.Position) []core.Request {
	reqs := make([]core.Request, len(xs))
	for i, x := range xs {
		reqs[i] = core.NewSimpleRequest(x)
	}
	return reqs
}

func requireConfigsEqual(t *testing.T, want, got core.ServerConfiguration) {
	t.Helper()
	require.Equal(t, want.Positions(), got.Positions())
}

// TestDCScenario1 reproduces the worked DC example: init=[50,50],
// requests=[20,80,30,70,60,50].
func TestDCScenario1(t *testing.T) {
	in := mustInstance(t, cfg(50, 50), simpleReqs(20, 80, 30, 70, 60, 50))

	sched, err := online.RunServer(in, nil, online.DCStep)
	require.NoError(t, err)

	want := []core.ServerConfiguration{
		cfg(50, 50), cfg(20, 50), cfg(20, 80),
		cfg(30, 70), cfg(30, 70), cfg(40, 60), cfg(50, 50),
	}
	require.Equal(t, len(want), sched.Len())
	for i, w := range want {
		requireConfigsEqual(t, w, sched.At(i))
	}
	require.Equal(t, 120.0, sched.Cost())
}

func TestDCDegenerateNoOp(t *testing.T) {
	in := mustInstance(t, cfg(10, 10), simpleReqs(10))
	sched, err := online.RunServer(in, nil, online.DCStep)
	require.NoError(t, err)
	require.Equal(t, 0.0, sched.Cost())
	requireConfigsEqual(t, cfg(10, 10), sched.Last())
}

func TestDCOutsideConvexHull(t *testing.T) {
	in := mustInstance(t, cfg(10, 20), simpleReqs(0, 100))
	sched, err := online.RunServer(in, nil, online.DCStep)
	require.NoError(t, err)
	requireConfigsEqual(t, cfg(0, 20), sched.At(1))
	requireConfigsEqual(t, cfg(0, 100), sched.At(2))
}
