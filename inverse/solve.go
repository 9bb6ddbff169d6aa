package inverse

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

type solveOptions struct {
	parallelDegree int
	logger         *slog.Logger
}

type Option func(*solveOptions)

// WithParallelDegree splits the sweep over n goroutines. Zero uses one per
// CPU, one (the default) scans sequentially. The result is the same as the
// sequential scan for any degree.
func WithParallelDegree(n int) Option {
	return func(o *solveOptions) { o.parallelDegree = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *solveOptions) { o.logger = l }
}

func newSolveOptions(opts []Option) (o *solveOptions) {
	o = &solveOptions{parallelDegree: 1}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return
}

// Solve finds the Mach number in the interval at which relation rel of gas g
// equals target within the interval's accuracy, rounded to the accuracy's
// decimal precision. ErrNoSolution is returned when no sample qualifies.
// An interval reaching outside the relation's domain, below M = 1 for the
// shock relations and nu or down to M = 0 for A/A*, is a domain error.
func Solve(ctx context.Context, g relations.Gas, rel types.Relation, target float64,
	iv Interval, opts ...Option) (M float64, err error) {
	var f RelationFunc
	if err = g.Validate(); err != nil {
		return
	}
	if f, err = ForwardFunc(g, rel); err != nil {
		return
	}
	if err = iv.Validate(); err != nil {
		return
	}
	if err = checkDomain(f, iv); err != nil {
		err = fmt.Errorf("%s on M = [%g, %g]: %w", rel, iv.Start, iv.End, err)
		return
	}
	o := newSolveOptions(opts)
	o.logger = o.logger.With("relation", rel.String(), "gamma", g.Gamma())
	return solve(ctx, f, target, iv, o)
}

// checkDomain evaluates f at both ends of the interval. Every relation is
// defined on a half line of Mach numbers, so the ends decide for all samples.
func checkDomain(f RelationFunc, iv Interval) (err error) {
	for _, M := range []float64{iv.Start, iv.End} {
		if _, err = f(M); err != nil {
			return
		}
	}
	return
}

// SolveFunc is Solve for an arbitrary forward relation of the Mach number.
// Its domain is not known in advance, so samples at which f fails are
// skipped rather than reported.
func SolveFunc(ctx context.Context, f RelationFunc, target float64,
	iv Interval, opts ...Option) (M float64, err error) {
	return solve(ctx, f, target, iv, newSolveOptions(opts))
}

func solve(ctx context.Context, f RelationFunc, target float64,
	iv Interval, o *solveOptions) (M float64, err error) {
	var (
		s     *Sampler
		log   = o.logger
		start = time.Now()
	)
	if err = checkTarget(target); err != nil {
		return
	}
	if s, err = NewSampler(iv); err != nil {
		return
	}
	series := Evaluate(s, f)
	np := utils.ParallelDegree(o.parallelDegree, s.Len())
	log.Debug("sweeping interval", "start", iv.Start, "end", iv.End,
		"samples", s.Len(), "step", iv.StepSize(), "target", target,
		"accuracy", iv.Accuracy, "parallel", np)
	if np == 1 {
		M, err = FirstMatch(ctx, target, iv.Accuracy, series.All())
	} else {
		M, err = firstMatchParallel(ctx, target, iv.Accuracy, series, np)
	}
	if err != nil {
		log.Debug("sweep finished", "result", err, "elapsed", time.Since(start))
		return
	}
	M = Round(M, iv.Accuracy)
	log.Debug("sweep finished", "M", M, "elapsed", time.Since(start))
	return
}

// firstMatchParallel partitions the sample indices and scans each bucket
// concurrently. A bucket stops as soon as its index passes the lowest match
// found so far, and the lowest match overall is returned. Cancellation is
// reported only when a bucket below that match stopped early.
func firstMatchParallel(ctx context.Context, target, tolerance float64,
	series Series, np int) (x float64, err error) {
	var (
		pm      = utils.NewPartitionMap(np, series.Len())
		found   = make([]int, np)
		stopped = make([]bool, np)
		best    atomic.Int64
		wg      sync.WaitGroup
	)
	best.Store(math.MaxInt64)
	for bn := 0; bn < np; bn++ {
		found[bn] = -1
		wg.Add(1)
		go func(bn int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(bn)
			for k := kMin; k < kMax; k++ {
				if int64(k) > best.Load() {
					return
				}
				if (k-kMin)%ctxCheckInterval == 0 && ctx.Err() != nil {
					stopped[bn] = true
					return
				}
				_, y := series.At(k)
				if Match(target, y, tolerance) {
					found[bn] = k
					for {
						b := best.Load()
						if int64(k) >= b || best.CompareAndSwap(b, int64(k)) {
							break
						}
					}
					return
				}
			}
		}(bn)
	}
	wg.Wait()
	for bn := 0; bn < np; bn++ {
		switch {
		case found[bn] >= 0:
			x, _ = series.At(found[bn])
			return
		case stopped[bn]:
			err = ctx.Err()
			return
		}
	}
	err = ErrNoSolution
	return
}
