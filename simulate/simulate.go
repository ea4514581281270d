package simulate

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/onlinealg/ksline/core"
	"github.com/onlinealg/ksline/online"
)

// Run sweeps every sample in samples across linspace(0, 1, opts.NumberOfLambdas)
// lambda values, running the applicable deterministic baseline (DC for
// k-server, BDC for k-taxi) plus the prediction-augmented variant (and, for
// k-server samples, the RobustFTP combiner) for each prediction the sample
// carries. One ResultRow is emitted per (sample, lambda, prediction) triple.
//
// Execution is a bounded, data-parallel map over samples: each worker owns
// its own output slot, so no lock is held during simulation itself and the
// only synchronization point is the final concatenation.
func Run(samples []Sample, opts Options) ([]ResultRow, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultOptions().Workers
	}
	lambdas := linspace(opts.NumberOfLambdas)

	perSample := make([][]ResultRow, len(samples))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for i, sample := range samples {
		i, sample := i, sample
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rows, err := runSample(sample, lambdas, opts)
			if err != nil {
				return fmt.Errorf("simulate: sample %d: %w", i, err)
			}
			perSample[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, rows := range perSample {
		total += len(rows)
	}
	all := make([]ResultRow, 0, total)
	for _, rows := range perSample {
		all = append(all, rows...)
	}
	return all, nil
}

// linspace returns n evenly spaced values spanning [0,1]; n==1 returns just
// {0}, since gonum's floats.Span requires a destination of length >= 2.
func linspace(n int) []float64 {
	if n <= 1 {
		return []float64{0}
	}
	dst := make([]float64, n)
	return floats.Span(dst, 0, 1)
}

// runSample runs every (lambda, prediction) combination for one sample.
func runSample(sample Sample, lambdas []float64, opts Options) ([]ResultRow, error) {
	instance := sample.Instance
	isTaxi := instance.IsTaxi()

	rows := make([]ResultRow, 0, len(lambdas)*len(sample.Predictions))

	for _, lambda := range lambdas {
		baselineCost, err := runBaseline(instance, isTaxi, opts.Lazy)
		if err != nil {
			return nil, err
		}

		for _, pred := range sample.Predictions {
			eta, err := pred.Eta(sample.Solution, instance)
			if err != nil {
				return nil, err
			}

			var algoCosts []AlgoCost
			if isTaxi {
				variantCost, err := runLambdaBDC(instance, pred, lambda, opts.Lazy)
				if err != nil {
					return nil, err
				}
				algoCosts = []AlgoCost{
					{Name: "bdc", Cost: baselineCost},
					{Name: "lambda_bdc", Cost: variantCost},
				}
			} else {
				variantCost, err := runLambdaDC(instance, pred, lambda, opts.Lazy)
				if err != nil {
					return nil, err
				}
				ftpCost, err := runRobustFTP(instance, pred, opts.Gamma, opts.Lazy)
				if err != nil {
					return nil, err
				}
				algoCosts = []AlgoCost{
					{Name: "dc", Cost: baselineCost},
					{Name: "lambda_dc", Cost: variantCost},
					{Name: "robust_ftp", Cost: ftpCost},
				}
			}

			row := ResultRow{
				K:         instance.K(),
				N:         instance.Length(),
				Lambda:    lambda,
				Eta:       eta,
				OptCost:   sample.OptCost,
				AlgoCosts: algoCosts,
			}
			sanityCheck(instance, lambda, eta, sample.OptCost, algoCosts)
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func reportCost(sched core.Schedule, instance core.Instance, lazy bool) (float64, error) {
	if !lazy {
		return sched.Cost(), nil
	}
	lazySched, err := sched.ToLazy(instance)
	if err != nil {
		return 0, err
	}
	return lazySched.Cost(), nil
}

func runBaseline(instance core.Instance, isTaxi, lazy bool) (float64, error) {
	if isTaxi {
		sched, err := online.RunTaxi(instance, nil, 0, online.BDCStep)
		if err != nil {
			return 0, err
		}
		return reportCost(sched, instance, lazy)
	}
	sched, err := online.RunServer(instance, nil, online.DCStep)
	if err != nil {
		return 0, err
	}
	return reportCost(sched, instance, lazy)
}

func runLambdaDC(instance core.Instance, pred core.Prediction, lambda float64, lazy bool) (float64, error) {
	step, err := online.NewLambdaDC(lambda)
	if err != nil {
		return 0, err
	}
	sched, err := online.RunServer(instance, pred.Servers(), step)
	if err != nil {
		return 0, err
	}
	return reportCost(sched, instance, lazy)
}

func runLambdaBDC(instance core.Instance, pred core.Prediction, lambda float64, lazy bool) (float64, error) {
	step, err := online.NewLambdaBDC(lambda)
	if err != nil {
		return 0, err
	}
	sched, err := online.RunTaxi(instance, pred.Servers(), 0, step)
	if err != nil {
		return 0, err
	}
	return reportCost(sched, instance, lazy)
}

func runRobustFTP(instance core.Instance, pred core.Prediction, gamma float64, lazy bool) (float64, error) {
	combiner, err := online.NewRobustFTP(gamma)
	if err != nil {
		return 0, err
	}
	sched, err := combiner.Run(instance, pred.Servers())
	if err != nil {
		return 0, err
	}
	return reportCost(sched, instance, lazy)
}

// sanityCheck logs structured diagnostic warnings (never aborts) for the
// bound and exactness properties spec.md §8 and §4.G describe.
func sanityCheck(instance core.Instance, lambda, eta, optCost float64, costs []AlgoCost) {
	k := instance.K()
	fields := logrus.Fields{
		"instance_k": k,
		"instance_n": instance.Length(),
		"lambda":     lambda,
		"eta":        eta,
		"opt_cost":   optCost,
	}

	for _, ac := range costs {
		if ac.Cost < optCost-1e-6 {
			logrus.WithFields(fields).WithField("alg", ac.Name).WithField("cost", ac.Cost).
				Warn("simulate: algorithm reported cost below offline optimum")
		}

		isLambdaVariant := ac.Name == "lambda_dc" || ac.Name == "lambda_bdc"
		if isLambdaVariant {
			bound := (1 + float64(k-1)*lambda) * (optCost + 2*eta)
			if ac.Cost > bound+1e-6 {
				logrus.WithFields(fields).WithField("alg", ac.Name).WithField("cost", ac.Cost).WithField("bound", bound).
					Warn("simulate: lambda-variant cost exceeds theoretical bound")
			}
			if lambda == 0 && eta == 0 && math.Abs(ac.Cost-optCost) > 1e-6 {
				logrus.WithFields(fields).WithField("alg", ac.Name).WithField("cost", ac.Cost).
					Warn("simulate: perfect prediction at lambda=0 failed to recover optimum")
			}
		}
	}
}
