package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onlinealg/ksline/core"
	"github.com/onlinealg/ksline/predictor"
	"github.com/onlinealg/ksline/simulate"
	"github.com/onlinealg/ksline/solver"
)

func cfg(positions ...core.Position) core.ServerConfiguration {
	return core.NewServerConfiguration(positions)
}

func simpleReqs(xs ...core.Position) []core.Request {
	reqs := make([]core.Request, len(xs))
	for i, x := range xs {
		reqs[i] = core.NewSimpleRequest(x)
	}
	return reqs
}

func mustSample(t *testing.T, initial core.ServerConfiguration, requests []core.Request) simulate.Sample {
	t.Helper()
	in, err := core.NewInstance(initial, requests)
	require.NoError(t, err)

	sched, cost, err := solver.Solve(in)
	require.NoError(t, err)

	preds, err := predictor.GeneratePredictions(in, sched, cost,
		predictor.WithNumberOfPredictions(3),
		predictor.WithStepSize(0.5),
		predictor.WithPredsPerBin(2),
		predictor.WithNumberOfSamplesPerRound(50),
		predictor.WithSeed(7),
	)
	require.NoError(t, err)

	return simulate.Sample{Instance: in, Solution: sched, OptCost: cost, Predictions: preds}
}

func TestRunServerSampleProducesRowPerLambdaPerPrediction(t *testing.T) {
	sample := mustSample(t, cfg(50, 50), simpleReqs(20, 80, 30, 70, 60, 50))

	rows, err := simulate.Run([]simulate.Sample{sample}, simulate.Options{
		NumberOfLambdas: 3,
		Gamma:           1,
	})
	require.NoError(t, err)
	require.Len(t, rows, 3*len(sample.Predictions))

	for _, row := range rows {
		require.Equal(t, 2, row.K)
		require.Equal(t, 6, row.N)
		require.Len(t, row.AlgoCosts, 3)
		names := []string{row.AlgoCosts[0].Name, row.AlgoCosts[1].Name, row.AlgoCosts[2].Name}
		require.Equal(t, []string{"dc", "lambda_dc", "robust_ftp"}, names)
		for _, ac := range row.AlgoCosts {
			require.GreaterOrEqual(t, ac.Cost, row.OptCost-1e-6)
		}
	}
}

func TestRunTaxiSampleUsesBDCHeader(t *testing.T) {
	in, err := core.NewInstance(cfg(0, 30), []core.Request{
		core.NewRelocationRequest(0, 0),
		core.NewRelocationRequest(10, 0),
		core.NewRelocationRequest(30, 30),
		core.NewRelocationRequest(0, 0),
	})
	require.NoError(t, err)

	sched, cost, err := solver.Solve(in)
	require.NoError(t, err)

	preds, err := predictor.GeneratePredictions(in, sched, cost,
		predictor.WithNumberOfPredictions(2),
		predictor.WithStepSize(0.5),
		predictor.WithPredsPerBin(1),
		predictor.WithNumberOfSamplesPerRound(50),
		predictor.WithSeed(3),
	)
	require.NoError(t, err)

	sample := simulate.Sample{Instance: in, Solution: sched, OptCost: cost, Predictions: preds}
	rows, err := simulate.Run([]simulate.Sample{sample}, simulate.Options{NumberOfLambdas: 2})
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		require.Len(t, row.AlgoCosts, 2)
		require.Equal(t, "bdc", row.AlgoCosts[0].Name)
		require.Equal(t, "lambda_bdc", row.AlgoCosts[1].Name)
	}
}

func TestRunSingleLambdaIsZero(t *testing.T) {
	sample := mustSample(t, cfg(50, 50), simpleReqs(20, 80, 40, 64))
	rows, err := simulate.Run([]simulate.Sample{sample}, simulate.Options{NumberOfLambdas: 1, Gamma: 1})
	require.NoError(t, err)
	for _, row := range rows {
		require.Equal(t, 0.0, row.Lambda)
	}
}
