// Public domain.

// Package metric implements the interchangeable spacetime models behind the
// frequency comparisons: the Schwarzschild (GR) factor and the segmented
// spacetime (SSZ) factor in its exponential and hyperbolic forms.
//
// A model is parametrized by a single central mass.  All positions are scalar
// radii measured from that mass center.
package metric

import "github.com/sszlab/freqloop/phys"

// Model is the capability set every spacetime variant provides.  Comparator,
// loop and decomposition code depend only on this interface, so adding a
// further variant touches nothing downstream.
type Model interface {
	// TimeDilation returns the dimensionless factor D(r) in (0,1].
	// D is non-decreasing in r and approaches 1 as r grows.  A model whose
	// formula breaks down at r reports a *DomainError along with its
	// saturation value, so downstream arithmetic stays finite.
	TimeDilation(r float64) (float64, error)

	// CharacteristicRadius returns the mass-dependent length scale r_s.
	CharacteristicRadius() float64

	// SegmentDensity returns the model's non-removable gravitational
	// strength at r.  For the SSZ variants this is Xi(r); the GR variant
	// returns the algebraically equivalent weak-field surrogate r_s/(2r).
	SegmentDensity(r float64) float64

	// Name identifies the variant in reports.
	Name() string
}

// SchwarzschildRadius returns r_s = 2GM/c^2.
func SchwarzschildRadius(cst phys.Constants, mass float64) float64 {
	return 2 * cst.G * mass / (cst.C * cst.C)
}

// Redshift returns z = 1/D(r) - 1 for the model.
func Redshift(m Model, r float64) (float64, error) {
	d, err := m.TimeDilation(r)
	if err != nil {
		return 0, err
	}
	return 1/d - 1, nil
}
