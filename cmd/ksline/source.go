package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onlinealg/ksline/core"
	"github.com/onlinealg/ksline/instgen"
)

// Shared instance-source flags, registered identically on run/solve/predict
// (mirroring cmd/root.go's package-level flag-var convention in the
// retrieved inference-sim CLI).
var (
	sourceKind   string
	filePath     string
	randK        int
	randN        int
	randMin      float64
	randMax      float64
	randTaxi     float64
	randCount    int
	randSeed     int64
)

func registerSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sourceKind, "source", "random", "instance source: random or file")
	cmd.Flags().StringVar(&filePath, "path", "", "instance file path (source=file)")
	cmd.Flags().IntVar(&randK, "k", 2, "number of servers (source=random)")
	cmd.Flags().IntVar(&randN, "n", 20, "number of requests per instance (source=random)")
	cmd.Flags().Float64Var(&randMin, "min", 0, "minimum request position (source=random)")
	cmd.Flags().Float64Var(&randMax, "max", 100, "maximum request position (source=random)")
	cmd.Flags().Float64Var(&randTaxi, "taxi-fraction", 0, "fraction of requests that are relocations (source=random)")
	cmd.Flags().IntVar(&randCount, "num-instances", 1, "number of instances to generate (source=random)")
	cmd.Flags().Int64Var(&randSeed, "seed", 0, "RNG seed (source=random)")
}

// loadInstances drains the configured source fully into memory; every
// retrieved instance in this research CLI is small, so eager loading keeps
// the sweep logic (package simulate) free of streaming concerns.
func loadInstances() ([]core.Instance, error) {
	src, err := buildSource()
	if err != nil {
		return nil, err
	}

	var instances []core.Instance
	for {
		in, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		instances = append(instances, in)
	}
	return instances, nil
}

func buildSource() (instgen.InstanceSource, error) {
	switch sourceKind {
	case "random":
		return instgen.NewRandomInstanceSource(instgen.RandomOptions{
			K:            randK,
			N:            randN,
			Min:          randMin,
			Max:          randMax,
			TaxiFraction: randTaxi,
			NumInstances: randCount,
			Seed:         randSeed,
		})
	case "file":
		if filePath == "" {
			return nil, fmt.Errorf("--path is required when --source=file")
		}
		f, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("open instance file: %w", err)
		}
		defer f.Close()
		return instgen.NewFileInstanceSource(f)
	default:
		return nil, fmt.Errorf("unknown --source %q (want random or file)", sourceKind)
	}
}
