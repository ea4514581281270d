package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/onlinealg/ksline/predictor"
	"github.com/onlinealg/ksline/solver"
)

var (
	predNumberOfPredictions int
	predStepSize            float64
	predPredsPerBin         int
	predSamplesPerRound     int
	predSeed                int64
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Dump a prediction spectrum for each instance for inspection",
	Run: func(cmd *cobra.Command, args []string) {
		instances, err := loadInstances()
		if err != nil {
			logrus.Fatalf("load instances: %v", err)
		}

		for i, in := range instances {
			sched, cost, err := solver.Solve(in)
			if err != nil {
				logrus.Fatalf("solve instance %d: %v", i, err)
			}

			preds, err := predictor.GeneratePredictions(in, sched, cost,
				predictor.WithNumberOfPredictions(predNumberOfPredictions),
				predictor.WithStepSize(predStepSize),
				predictor.WithPredsPerBin(predPredsPerBin),
				predictor.WithNumberOfSamplesPerRound(predSamplesPerRound),
				predictor.WithSeed(predSeed),
			)
			if err != nil {
				logrus.Fatalf("generate predictions for instance %d: %v", i, err)
			}

			fmt.Printf("instance %d: opt_cost=%g, %d predictions\n", i, cost, len(preds))
			for j, p := range preds {
				eta, err := p.Eta(sched, in)
				if err != nil {
					logrus.Fatalf("eta for prediction %d: %v", j, err)
				}
				fmt.Printf("  prediction %d: eta=%g (ratio=%g) servers=%v\n", j, eta, eta/cost, p.Servers())
			}
		}
	},
}

func init() {
	registerSourceFlags(predictCmd)
	predictCmd.Flags().IntVar(&predNumberOfPredictions, "number-of-predictions", predictor.DefaultOptions().NumberOfPredictions, "number of error bins")
	predictCmd.Flags().Float64Var(&predStepSize, "step-size", predictor.DefaultOptions().StepSize, "bin width as a fraction of opt cost")
	predictCmd.Flags().IntVar(&predPredsPerBin, "preds-per-bin", predictor.DefaultOptions().PredsPerBin, "target predictions per bin")
	predictCmd.Flags().IntVar(&predSamplesPerRound, "number-of-samples-per-round", predictor.DefaultOptions().NumberOfSamplesPerRound, "candidates drawn per corruption round")
	predictCmd.Flags().Int64Var(&predSeed, "pred-seed", predictor.DefaultOptions().Seed, "prediction RNG seed")
}
