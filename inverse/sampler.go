// Package inverse recovers the Mach number that produces a given value of a
// forward flow relation, by sampling the relation over a Mach interval and
// returning the first sample that matches within a relative tolerance.
package inverse

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
)

const (
	DefaultStart    = 1.
	DefaultEnd      = 5.
	DefaultAccuracy = 1.e-4
	// MaxSamples bounds a single sweep
	MaxSamples = 1 << 31
)

// Interval is the Mach range to sample, the relative error accepted for a
// match, and the sample spacing. A zero Step is Accuracy/10.
type Interval struct {
	Start, End float64
	Accuracy   float64
	Step       float64
}

func DefaultInterval() Interval {
	return Interval{
		Start:    DefaultStart,
		End:      DefaultEnd,
		Accuracy: DefaultAccuracy,
	}
}

func (iv Interval) StepSize() float64 {
	if iv.Step == 0 {
		return 0.1 * iv.Accuracy
	}
	return iv.Step
}

func (iv Interval) Validate() error {
	var (
		step = iv.StepSize()
	)
	for _, v := range []float64{iv.Start, iv.End, iv.Accuracy, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: interval values must be finite, have %+v", ErrInvalidConfig, iv)
		}
	}
	switch {
	case iv.Accuracy <= 0:
		return fmt.Errorf("%w: accuracy must be > 0, have %v", ErrInvalidConfig, iv.Accuracy)
	case step <= 0:
		return fmt.Errorf("%w: step must be > 0, have %v", ErrInvalidConfig, step)
	case iv.Start >= iv.End:
		return fmt.Errorf("%w: start %v must be below end %v", ErrInvalidConfig, iv.Start, iv.End)
	case iv.Start < 0:
		return fmt.Errorf("%w: start Mach number %v is negative", ErrInvalidConfig, iv.Start)
	}
	if n := (iv.End - iv.Start) / step; n >= MaxSamples {
		return fmt.Errorf("%w: %.0f samples exceeds the limit of %d, increase the step",
			ErrInvalidConfig, n, MaxSamples)
	}
	return nil
}

// Count is floor((End-Start)/Step)+1. The quotient is nudged up by a relative
// 1e-12 so that an interval that is an exact multiple of the step keeps its
// end point despite rounding, e.g. (5-1)/1e-5.
func (iv Interval) Count() int {
	n := (iv.End - iv.Start) / iv.StepSize()
	return int(math.Floor(n*(1+1.e-12))) + 1
}

// Sampler is a lazy, restartable sequence of Count() uniformly spaced Mach
// numbers including both ends of the interval. No samples are stored.
type Sampler struct {
	start, end float64
	n          int
	h          float64
}

func NewSampler(iv Interval) (s *Sampler, err error) {
	if err = iv.Validate(); err != nil {
		return
	}
	s = &Sampler{
		start: iv.Start,
		end:   iv.End,
		n:     iv.Count(),
	}
	if s.n > 1 {
		s.h = (s.end - s.start) / float64(s.n-1)
	}
	return
}

func (s *Sampler) Len() int { return s.n }

// At is the i-th sample. The last sample is exactly the interval end.
func (s *Sampler) At(i int) float64 {
	if i == s.n-1 && s.n > 1 {
		return s.end
	}
	return s.start + s.h*float64(i)
}

func (s *Sampler) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Values materializes the samples
func (s *Sampler) Values() []float64 {
	if s.n == 1 {
		return []float64{s.start}
	}
	v := floats.Span(make([]float64, s.n), s.start, s.end)
	v[s.n-1] = s.end
	return v
}

// RelationFunc is a forward relation of one Mach number
type RelationFunc func(M float64) (float64, error)

// ForwardFunc binds a relation to a gas. Normal shock relations are composed
// with the downstream Mach number, so the sampled variable is always the
// upstream Mach number.
func ForwardFunc(g relations.Gas, rel types.Relation) (f RelationFunc, err error) {
	shock := func(ratio func(M1, M2 float64) (float64, error)) RelationFunc {
		return func(M1 float64) (y float64, err error) {
			var M2 float64
			if M2, err = g.NormalShockM2(M1); err != nil {
				return
			}
			return ratio(M1, M2)
		}
	}
	switch rel {
	case types.AOverAStar:
		f = g.AOverAStar
	case types.T0OverT:
		f = g.T0OverT
	case types.P0OverP:
		f = g.P0OverP
	case types.Rho0OverRho:
		f = g.Rho0OverRho
	case types.P02OverP01:
		f = shock(g.P02OverP01)
	case types.T2OverT1:
		f = shock(g.T2OverT1)
	case types.P2OverP1:
		f = shock(g.P2OverP1)
	case types.Nu:
		f = g.Nu
	default:
		err = fmt.Errorf("%w: %s is not an invertible relation", ErrInvalidConfig, rel)
	}
	return
}

// Series pairs each sample with the relation evaluated there. Samples at
// which the relation is undefined carry a NaN output, which never matches.
// Solve rejects intervals outside a relation's domain before sampling, so
// only SolveFunc sweeps ever see them.
type Series struct {
	s *Sampler
	f RelationFunc
}

func Evaluate(s *Sampler, f RelationFunc) Series {
	return Series{s: s, f: f}
}

func (sr Series) Len() int { return sr.s.Len() }

func (sr Series) At(i int) (x, y float64) {
	var err error
	x = sr.s.At(i)
	if y, err = sr.f(x); err != nil {
		y = math.NaN()
	}
	return
}

// All yields (input, output) pairs in ascending input order
func (sr Series) All() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i := 0; i < sr.Len(); i++ {
			if !yield(sr.At(i)) {
				return
			}
		}
	}
}
