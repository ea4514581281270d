package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onlinealg/ksline/core"
)

// dcScenarioSchedule reproduces the first concrete scenario: DC run on
// Instance(requests=[20,80,30,70,60,50], init=[50,50]).
func dcScenarioSchedule() core.Schedule {
	s := core.NewSchedule(cfg(50, 50))
	s = s.AppendConfig(cfg(20, 50))
	s = s.AppendConfig(cfg(20, 80))
	s = s.AppendConfig(cfg(30, 70))
	s = s.AppendConfig(cfg(30, 70))
	s = s.AppendConfig(cfg(40, 60))
	s = s.AppendConfig(cfg(50, 50))
	return s
}

func dcScenarioInstance() core.Instance {
	reqs := []core.Request{
		core.NewSimpleRequest(20),
		core.NewSimpleRequest(80),
		core.NewSimpleRequest(30),
		core.NewSimpleRequest(70),
		core.NewSimpleRequest(60),
		core.NewSimpleRequest(50),
	}
	return mustInstance(cfg(50, 50), reqs)
}

func TestScheduleCostMatchesScenario(t *testing.T) {
	s := dcScenarioSchedule()
	require.Equal(t, 7, s.Len())
	require.Equal(t, 120.0, s.Cost())
}

func TestScheduleCostIsTelescopingSumOfDiffs(t *testing.T) {
	s := dcScenarioSchedule()
	var want float64
	for i := 0; i+1 < s.Len(); i++ {
		d, err := s.At(i).Diff(s.At(i + 1))
		require.NoError(t, err)
		want += d
	}
	require.Equal(t, want, s.Cost())
}

func TestScheduleAppendMove(t *testing.T) {
	s := core.NewSchedule(cfg(50, 50))
	s = s.AppendMove(0, 20)
	require.Equal(t, core.Position(20), s.Last().At(0))
	require.Equal(t, core.Position(50), s.Last().At(1))
}

func TestScheduleDiff(t *testing.T) {
	s := dcScenarioSchedule()
	d, err := s.Diff(s)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestScheduleDiffMismatchedSize(t *testing.T) {
	a := core.NewSchedule(cfg(0, 0))
	b := a.AppendMove(0, 1)
	_, err := a.Diff(b)
	require.ErrorIs(t, err, core.ErrMismatchedSize)
}

// DC is not in lazy form here: the step [20,80]->[30,70] moves both servers.
// ToLazy keeps only the move of the server that lands on the request, so its
// trajectory differs from DC's; this test checks that it keeps the length and
// puts a server on every request.
func TestScheduleToLazyOnDCScenario(t *testing.T) {
	s := dcScenarioSchedule()
	in := dcScenarioInstance()

	lazy, err := s.ToLazy(in)
	require.NoError(t, err)
	require.Equal(t, s.Len(), lazy.Len())

	// Every lazy step must move exactly the server sitting on the request.
	for t0 := 0; t0 < in.Length(); t0++ {
		req := in.Request(t0)
		found := false
		for i := 0; i < lazy.At(t0+1).Len(); i++ {
			if lazy.At(t0+1).At(i) == req.ServicePosition() {
				found = true
			}
		}
		require.True(t, found, "lazy step %d should place a server on the request", t0)
	}
}

func TestScheduleToLazyIdempotent(t *testing.T) {
	s := dcScenarioSchedule()
	in := dcScenarioInstance()

	once, err := s.ToLazy(in)
	require.NoError(t, err)
	twice, err := once.ToLazy(in)
	require.NoError(t, err)

	d, err := once.Diff(twice)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestScheduleToPredictionRoundTrip(t *testing.T) {
	s := dcScenarioSchedule()
	in := dcScenarioInstance()

	pred, err := s.ToPrediction(in)
	require.NoError(t, err)
	require.Equal(t, in.Length(), pred.Len())

	// Every predicted server index must be in range.
	for i := 0; i < pred.Len(); i++ {
		require.GreaterOrEqual(t, pred.PredictedServer(i), 0)
		require.Less(t, pred.PredictedServer(i), in.K())
	}
}

func TestScheduleToPredictionFailsWithoutExactHit(t *testing.T) {
	// A schedule that never actually reaches the request position cannot be
	// converted to a prediction.
	s := core.NewSchedule(cfg(0, 0))
	s = s.AppendConfig(cfg(1, 1))
	in := mustInstance(cfg(0, 0), []core.Request{core.NewSimpleRequest(50)})

	_, err := s.ToPrediction(in)
	require.ErrorIs(t, err, core.ErrPredictionExtraction)
}
