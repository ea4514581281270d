package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onlinealg/ksline/core"
)

func TestNewPredictionRejectsNegativeIndex(t *testing.T) {
	_, err := core.NewPrediction([]int{0, -1, 1})
	require.ErrorIs(t, err, core.ErrOutOfRangeServerIndex)
}

func TestPredictionToScheduleMovesToReleasePosition(t *testing.T) {
	in := mustInstance(cfg(0, 0), []core.Request{
		core.NewSimpleRequest(10),
		core.NewRelocationRequest(20, 40),
	})
	pred, err := core.NewPrediction([]int{0, 1})
	require.NoError(t, err)

	sched, err := pred.ToSchedule(in)
	require.NoError(t, err)
	require.Equal(t, 3, sched.Len())
	require.Equal(t, core.Position(10), sched.At(1).At(0))
	require.Equal(t, core.Position(40), sched.At(2).At(1), "relocation moves to release point, not service point")
}

func TestPredictionToScheduleMismatchedSize(t *testing.T) {
	in := mustInstance(cfg(0), []core.Request{core.NewSimpleRequest(1), core.NewSimpleRequest(2)})
	pred, err := core.NewPrediction([]int{0})
	require.NoError(t, err)

	_, err = pred.ToSchedule(in)
	require.ErrorIs(t, err, core.ErrMismatchedSize)
}

func TestPredictionToScheduleOutOfRangeServer(t *testing.T) {
	in := mustInstance(cfg(0), []core.Request{core.NewSimpleRequest(1)})
	pred, err := core.NewPrediction([]int{5})
	require.NoError(t, err)

	_, err = pred.ToSchedule(in)
	require.ErrorIs(t, err, core.ErrOutOfRangeServerIndex)
}

func TestPredictionEtaZeroForPerfectPrediction(t *testing.T) {
	in := dcScenarioInstance()
	// The DC schedule moves two servers at some steps; its lazy form moves
	// one server per step, which a prediction can reproduce exactly.
	s, err := dcScenarioSchedule().ToLazy(in)
	require.NoError(t, err)

	perfect, err := s.ToPrediction(in)
	require.NoError(t, err)

	eta, err := perfect.Eta(s, in)
	require.NoError(t, err)
	require.Equal(t, 0.0, eta)
}

func TestPredictionEtaPositiveWhenWrong(t *testing.T) {
	s := dcScenarioSchedule()
	in := dcScenarioInstance()

	perfect, err := s.ToPrediction(in)
	require.NoError(t, err)

	servers := perfect.Servers()
	flipped := make([]int, len(servers))
	copy(flipped, servers)
	flipped[0] = 1 - flipped[0]

	pred, err := core.NewPrediction(flipped)
	require.NoError(t, err)

	eta, err := pred.Eta(s, in)
	require.NoError(t, err)
	require.Greater(t, eta, 0.0)
}
