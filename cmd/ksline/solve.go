package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/onlinealg/ksline/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute the offline-optimal schedule and cost for each instance",
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
			fmt.Printf("instance %d: k=%d n=%d opt_cost=%g\n", i, in.K(), in.Length(), cost)
			for t := 0; t < sched.Len(); t++ {
				fmt.Printf("  step %d: %v\n", t, sched.At(t).Positions())
			}
		}
	},
}

func init() {
	registerSourceFlags(solveCmd)
}
