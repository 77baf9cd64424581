// Public domain.

// Package loop computes the closed-loop consistency invariant
//
//	I_ABC = delta_AB + delta_BC + delta_CA
//
// over three comparison points, both for static radii and along time-varying
// trajectories, and the discretized radial path integral of the delta
// observable.
//
// I_ABC is an algebraic identity, not a physics prediction: whenever all
// three deltas derive from one consistent set of instantaneous frequencies it
// is zero for any model, any radii, any mass.  The engine never special-cases
// that away; a residual beyond numerical tolerance signals a composition bug
// in the comparator, not new physics.
package loop

import (
	"errors"
	"fmt"

	"github.com/sszlab/freqloop/delta"
	"github.com/sszlab/freqloop/metric"
	"github.com/sszlab/freqloop/orbit"
)

// ErrStepCount indicates a path discretized into fewer than 2 steps.
var ErrStepCount = errors.New("loop: path integral needs at least 2 steps")

// ErrSampleCount indicates a dynamic loop over fewer than 2 instants.
var ErrSampleCount = errors.New("loop: dynamic loop needs at least 2 samples")

// Static returns the closure invariant for three clocks at rest at radii rA,
// rB, rC under the model.
func Static(m metric.Model, rA, rB, rC float64) (float64, error) {
	dAB, err := delta.FromPositions(m, rA, rB)
	if err != nil {
		return 0, err
	}
	dBC, err := delta.FromPositions(m, rB, rC)
	if err != nil {
		return 0, err
	}
	dCA, err := delta.FromPositions(m, rC, rA)
	if err != nil {
		return 0, err
	}
	return dAB + dBC + dCA, nil
}

// Sample is one instant of a dynamic three-point comparison.
type Sample struct {
	T       float64
	DeltaAB float64
	DeltaBC float64
	DeltaCA float64
	Closure float64 // I_ABC at this instant
}

// Dynamic evaluates three trajectories at n evenly spaced instants in
// [tStart, tEnd] and computes the static loop at each one.  The individual
// deltas may swing by orders of magnitude over the window; the closure column
// must not.
func Dynamic(m metric.Model, trajA, trajB, trajC orbit.Trajectory, tStart, tEnd float64, n int) ([]Sample, error) {
	if n < 2 {
		return nil, ErrSampleCount
	}
	out := make([]Sample, n)
	dt := (tEnd - tStart) / float64(n-1)
	for i := range out {
		t := tStart + float64(i)*dt
		a, b, c := trajA(t), trajB(t), trajC(t)
		dAB, err := delta.FromPositions(m, a.R, b.R)
		if err != nil {
			return nil, fmt.Errorf("loop: t=%g: %w", t, err)
		}
		dBC, err := delta.FromPositions(m, b.R, c.R)
		if err != nil {
			return nil, fmt.Errorf("loop: t=%g: %w", t, err)
		}
		dCA, err := delta.FromPositions(m, c.R, a.R)
		if err != nil {
			return nil, fmt.Errorf("loop: t=%g: %w", t, err)
		}
		out[i] = Sample{
			T:       t,
			DeltaAB: dAB,
			DeltaBC: dBC,
			DeltaCA: dCA,
			Closure: dAB + dBC + dCA,
		}
	}
	return out, nil
}

// MaxClosure returns the largest |I_ABC(t)| over the samples.
func MaxClosure(samples []Sample) (max float64) {
	for _, s := range samples {
		c := s.Closure
		if c < 0 {
			c = -c
		}
		if c > max {
			max = c
		}
	}
	return max
}

// PathIntegral discretizes the radial path from rStart to rEnd into nSteps
// segments and accumulates the per-segment deltas.  The sum telescopes, so
// it must agree with the single-shot delta regardless of step count.
func PathIntegral(m metric.Model, rStart, rEnd float64, nSteps int) (float64, error) {
	if nSteps < 2 {
		return 0, ErrStepCount
	}
	var sum float64
	r0 := rStart
	for i := 1; i <= nSteps; i++ {
		r1 := rStart + (rEnd-rStart)*float64(i)/float64(nSteps)
		d, err := delta.FromPositions(m, r0, r1)
		if err != nil {
			return 0, err
		}
		sum += d
		r0 = r1
	}
	return sum, nil
}

// PathIntegralVia accumulates the delta along a detour through rVia.  Path
// independence demands the result match the direct integral and the direct
// single-shot delta.
func PathIntegralVia(m metric.Model, rStart, rVia, rEnd float64, nSteps int) (float64, error) {
	if nSteps < 2 {
		return 0, ErrStepCount
	}
	half := nSteps / 2
	if half < 2 {
		half = 2
	}
	up, err := PathIntegral(m, rStart, rVia, half)
	if err != nil {
		return 0, err
	}
	down, err := PathIntegral(m, rVia, rEnd, half)
	if err != nil {
		return 0, err
	}
	return up + down, nil
}
