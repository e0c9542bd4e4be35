// Package entangle estimates the entangling capability of parameterized circuits
// with the Meyer-Wallach measure.
package entangle

import (
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/entcap/circuit"
	"github.com/oqtopus-team/entcap/core"
	"github.com/oqtopus-team/entcap/scheduler"
	"github.com/oqtopus-team/entcap/statevec"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const DefaultBatchSize = 64

// Estimate is the outcome of one Monte Carlo run over a program.
type Estimate struct {
	Mean    float64
	StdDev  float64
	StdErr  float64
	Samples int
	Seed    uint64
}

type Estimator struct {
	seed      uint64
	batchSize int
	pool      *scheduler.Pool
}

type Option func(*Estimator)

func WithWorkers(n int) Option {
	return func(e *Estimator) {
		e.pool = scheduler.NewPool(n)
	}
}

// WithBatchSize sets how many consecutive trials share one random stream.
// Results for a seed are reproducible only under the same batch size.
func WithBatchSize(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// NewEstimator returns an estimator whose draws are fully determined by seed.
func NewEstimator(seed uint64, opts ...Option) *Estimator {
	e := &Estimator{
		seed:      seed,
		batchSize: DefaultBatchSize,
		pool:      scheduler.NewPool(runtime.NumCPU()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewEstimatorFromSetting(s core.EstimatorSetting) *Estimator {
	return NewEstimator(s.Seed, WithWorkers(s.Workers), WithBatchSize(s.BatchSize))
}

func (e *Estimator) Seed() uint64 { return e.seed }

// Estimate returns the mean Meyer-Wallach value of p over numSamples uniformly
// drawn parameter vectors.
func (e *Estimator) Estimate(p *circuit.Program, numSamples int) (float64, error) {
	est, err := e.EstimateWithStats(p, numSamples)
	if err != nil {
		return 0, err
	}
	return est.Mean, nil
}

// EstimateWithStats is Estimate with the dispersion of the per-sample values.
// Per-sample values are reduced in trial order, so the result does not depend on
// the number of workers.
func (e *Estimator) EstimateWithStats(p *circuit.Program, numSamples int) (*Estimate, error) {
	if p == nil {
		return nil, core.NewConfigurationError("estimate", "program is nil")
	}
	if numSamples < 1 {
		return nil, core.NewConfigurationError("estimate",
			fmt.Sprintf("sample count must be positive, got %d", numSamples))
	}
	start := time.Now()
	qs := make([]float64, numSamples)
	batches := scheduler.Split(numSamples, e.batchSize)
	err := e.pool.Run(batches, func(b scheduler.Batch) error {
		s := newSampler(e.seed, b.Index)
		params := make([]float64, p.ParameterCount())
		for t := b.First; t < b.First+b.Count; t++ {
			s.draw(params)
			q, err := sampleQ(p, params)
			if err != nil {
				return errors.Wrapf(err, "trial %d", t)
			}
			qs[t] = q
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to estimate entangling capability", zap.Error(err))
		return nil, err
	}

	mean, std := stat.MeanStdDev(qs, nil)
	if numSamples < 2 {
		std = 0
	}
	est := &Estimate{
		Mean:    mean,
		StdDev:  std,
		StdErr:  stat.StdErr(std, float64(numSamples)),
		Samples: numSamples,
		Seed:    e.seed,
	}
	zap.L().Debug(fmt.Sprintf("estimated %d samples in %s: mean=%.6f stderr=%.6f",
		numSamples, time.Since(start), est.Mean, est.StdErr))
	return est, nil
}

func sampleQ(p *circuit.Program, params []float64) (float64, error) {
	b, err := statevec.Simulate(p, params)
	if err != nil {
		return 0, err
	}
	return MeyerWallach(b)
}

// sampler draws angles uniformly from [0, 2π) on its own PCG stream.
type sampler struct {
	dist distuv.Uniform
}

func newSampler(seed uint64, stream int) *sampler {
	return &sampler{
		dist: distuv.Uniform{
			Min: 0,
			Max: 2 * math.Pi,
			Src: rand.NewPCG(seed, uint64(stream)),
		},
	}
}

func (s *sampler) draw(params []float64) {
	for i := range params {
		params[i] = s.dist.Rand()
	}
}
