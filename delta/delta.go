// Public domain.

// Package delta implements the relational frequency observable
//
//	delta_AB = ln(nu_A / nu_B)
//
// the dimensionless primitive every comparison in this module reduces to.
// The observable composes like a logarithm: delta_AA = 0, antisymmetry under
// swap, and additivity over any consistent triple.
package delta

import (
	"errors"
	"math"

	"github.com/sszlab/freqloop/metric"
	"github.com/sszlab/freqloop/phys"
)

// ErrNonPositiveFrequency indicates a frequency at or below zero.
var ErrNonPositiveFrequency = errors.New("delta: frequencies must be positive")

// Observable returns ln(freqA/freqB) for two proper frequencies in Hz.
func Observable(freqA, freqB float64) (float64, error) {
	if freqA <= 0 || freqB <= 0 {
		return 0, ErrNonPositiveFrequency
	}
	return math.Log(freqA / freqB), nil
}

// FromPositions returns the delta observable between two clocks at rest at
// radii rA and rB under the model's time dilation:
//
//	delta = ln(D(rA) / D(rB))
//
// A DomainError from the model propagates; the returned value is then
// computed from the model's saturation factor and still usable if the caller
// accepts the saturation policy.
func FromPositions(m metric.Model, rA, rB float64) (float64, error) {
	dA, errA := m.TimeDilation(rA)
	dB, errB := m.TimeDilation(rB)
	err := errA
	if err == nil {
		err = errB
	}
	if dA <= 0 || dB <= 0 {
		// exactly on the GR boundary the factor is zero and no finite
		// logarithm exists
		return 0, err
	}
	return math.Log(dA / dB), err
}

// WeakShift returns the first-order weak-field frequency shift between radii
// r1 and r2,
//
//	GM/c^2 * (1/r1 - 1/r2)
//
// the closed form the historical redshift experiments are quoted against.
func WeakShift(cst phys.Constants, mass, r1, r2 float64) (float64, error) {
	if r1 <= 0 || r2 <= 0 {
		return 0, metric.ErrNonPositiveRadius
	}
	return cst.G * mass / (cst.C * cst.C) * (1/r1 - 1/r2), nil
}
