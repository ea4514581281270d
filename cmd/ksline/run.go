package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/onlinealg/ksline/export"
	"github.com/onlinealg/ksline/predictor"
	"github.com/onlinealg/ksline/simulate"
	"github.com/onlinealg/ksline/solver"
)

var (
	runNumberOfLambdas      int
	runGamma                float64
	runLazy                 bool
	runNumberOfPredictions  int
	runStepSize             float64
	runPredsPerBin          int
	runSamplesPerRound      int
	runPredSeed             int64
	runOutPath              string
	runFormat               string
	runWorkers              int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sweep lambda over a batch of instances and export result rows",
	Run: func(cmd *cobra.Command, args []string) {
		instances, err := loadInstances()
		if err != nil {
			logrus.Fatalf("load instances: %v", err)
		}

		samples := make([]simulate.Sample, 0, len(instances))
		for i, in := range instances {
			sched, cost, err := solver.Solve(in)
			if err != nil {
				logrus.Fatalf("solve instance %d: %v", i, err)
			}
			preds, err := predictor.GeneratePredictions(in, sched, cost,
				predictor.WithNumberOfPredictions(runNumberOfPredictions),
				predictor.WithStepSize(runStepSize),
				predictor.WithPredsPerBin(runPredsPerBin),
				predictor.WithNumberOfSamplesPerRound(runSamplesPerRound),
				predictor.WithSeed(runPredSeed),
			)
			if err != nil {
				logrus.Fatalf("generate predictions for instance %d: %v", i, err)
			}
			samples = append(samples, simulate.Sample{
				Instance: in, Solution: sched, OptCost: cost, Predictions: preds,
			})
		}

		rows, err := simulate.Run(samples, simulate.Options{
			NumberOfLambdas: runNumberOfLambdas,
			Gamma:           runGamma,
			Lazy:            runLazy,
			Workers:         runWorkers,
		})
		if err != nil {
			logrus.Fatalf("simulate: %v", err)
		}

		sink, err := buildSink()
		if err != nil {
			logrus.Fatalf("build sink: %v", err)
		}
		if err := sink.Write(rows); err != nil {
			logrus.Fatalf("write results: %v", err)
		}
		if err := sink.Close(); err != nil {
			logrus.Fatalf("close sink: %v", err)
		}
		logrus.Infof("wrote %d result rows from %d samples", len(rows), len(samples))
	},
}

func buildSink() (export.ResultSink, error) {
	w := os.Stdout
	if runOutPath != "" {
		f, err := os.Create(runOutPath)
		if err != nil {
			return nil, err
		}
		return sinkFor(runFormat, f), nil
	}
	return sinkFor(runFormat, w), nil
}

func sinkFor(format string, w *os.File) export.ResultSink {
	if format == "json" {
		return export.NewJSONSink(w)
	}
	return export.NewCSVSink(w)
}

func init() {
	registerSourceFlags(runCmd)
	runCmd.Flags().IntVar(&runNumberOfLambdas, "number-of-lambdas", simulate.DefaultOptions().NumberOfLambdas, "number of lambda values swept over linspace(0,1)")
	runCmd.Flags().Float64Var(&runGamma, "gamma", simulate.DefaultOptions().Gamma, "RobustFTP doubling-bound growth parameter")
	runCmd.Flags().BoolVar(&runLazy, "lazy", simulate.DefaultOptions().Lazy, "rewrite every schedule with ToLazy before reporting cost")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "bounded worker pool size (0 selects runtime.NumCPU)")
	runCmd.Flags().IntVar(&runNumberOfPredictions, "number-of-predictions", predictor.DefaultOptions().NumberOfPredictions, "number of error bins")
	runCmd.Flags().Float64Var(&runStepSize, "step-size", predictor.DefaultOptions().StepSize, "bin width as a fraction of opt cost")
	runCmd.Flags().IntVar(&runPredsPerBin, "preds-per-bin", predictor.DefaultOptions().PredsPerBin, "target predictions per bin")
	runCmd.Flags().IntVar(&runSamplesPerRound, "number-of-samples-per-round", predictor.DefaultOptions().NumberOfSamplesPerRound, "candidates drawn per corruption round")
	runCmd.Flags().Int64Var(&runPredSeed, "pred-seed", predictor.DefaultOptions().Seed, "prediction RNG seed")
	runCmd.Flags().StringVar(&runOutPath, "out", "", "output file path (default: stdout)")
	runCmd.Flags().StringVar(&runFormat, "format", "csv", "output format: csv or json")
}
