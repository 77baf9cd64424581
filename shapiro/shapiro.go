// Public domain.

// Package shapiro computes the Shapiro time delay of a signal grazing a
// massive body, in the approximation valid when both endpoints are far from
// the closest-approach distance.
package shapiro

import (
	"errors"
	"math"

	"github.com/sszlab/freqloop/metric"
	"github.com/sszlab/freqloop/phys"
)

// ErrNonPositiveDistance indicates a non-positive endpoint or approach
// distance.
var ErrNonPositiveDistance = errors.New("shapiro: distances must be positive")

// Delay returns the extra light travel time in seconds for endpoints at r1
// and r2 with closest approach d to the mass,
//
//	dt = (1+gamma) * (r_s/c) * ln(4*r1*r2/d^2)
//
// gamma is the PPN parameter; 1 reproduces GR.
func Delay(cst phys.Constants, mass, r1, r2, d, gamma float64) (float64, error) {
	if r1 <= 0 || r2 <= 0 || d <= 0 {
		return 0, ErrNonPositiveDistance
	}
	rs := metric.SchwarzschildRadius(cst, mass)
	return (1 + gamma) * (rs / cst.C) * math.Log(4*r1*r2/(d*d)), nil
}

// SSZDelay applies the segmented-spacetime second-order correction
// 1 + (r_s/(4d))^2 to the GR delay.  In the weak field the correction is
// vanishingly small, as it must be.
func SSZDelay(cst phys.Constants, mass, r1, r2, d float64) (float64, error) {
	base, err := Delay(cst, mass, r1, r2, d, 1)
	if err != nil {
		return 0, err
	}
	rs := metric.SchwarzschildRadius(cst, mass)
	q := rs / (4 * d)
	return base * (1 + q*q), nil
}
