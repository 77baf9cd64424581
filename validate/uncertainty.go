// Public domain.

package validate

import (
	"errors"
	"math"

	xrand "golang.org/x/exp/rand"

	"github.com/sszlab/freqloop/metric"
)

// ErrSampleCount indicates a Monte Carlo run with fewer than 2 samples.
var ErrSampleCount = errors.New("validate: monte carlo needs at least 2 samples")

// DeltaSigma propagates radius uncertainties through the position-derived
// delta observable to first order:
//
//	sigma_delta^2 = (d ln D/dr|rA * sigmaA)^2 + (d ln D/dr|rB * sigmaB)^2
//
// The partials are taken by central differences so any model works, not just
// the ones with convenient closed-form derivatives.
func DeltaSigma(m metric.Model, rA, rB, sigmaA, sigmaB float64) (float64, error) {
	pA, err := dLnD(m, rA)
	if err != nil {
		return 0, err
	}
	pB, err := dLnD(m, rB)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(pA*pA*sigmaA*sigmaA + pB*pB*sigmaB*sigmaB), nil
}

func dLnD(m metric.Model, r float64) (float64, error) {
	h := r * 1e-6
	hi, err := m.TimeDilation(r + h)
	if err != nil {
		return 0, err
	}
	lo, err := m.TimeDilation(r - h)
	if err != nil {
		return 0, err
	}
	return (math.Log(hi) - math.Log(lo)) / (2 * h), nil
}

// MonteCarlo resamples a pairwise prediction under Gaussian radius
// uncertainties and returns the sample mean and standard deviation.  The
// generator is seeded, so runs with equal seeds are identical.
func MonteCarlo(f func(rA, rB float64) (float64, error), rA, rB, sigmaA, sigmaB float64, n int, seed uint64) (mean, sigma float64, err error) {
	if n < 2 {
		return 0, 0, ErrSampleCount
	}
	rnd := xrand.New(xrand.NewSource(seed))
	var sum, sumsq float64
	for i := 0; i < n; i++ {
		d, err := f(rA+sigmaA*rnd.NormFloat64(), rB+sigmaB*rnd.NormFloat64())
		if err != nil {
			return 0, 0, err
		}
		sum += d
		sumsq += d * d
	}
	mean = sum / float64(n)
	v := sumsq/float64(n-1) - mean*mean*float64(n)/float64(n-1)
	if v < 0 {
		// sample variance can round below zero when all draws agree
		v = 0
	}
	return mean, math.Sqrt(v), nil
}
