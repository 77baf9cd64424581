// Public domain.

package metric

import (
	"math"

	"github.com/sszlab/freqloop/phys"
)

// Fixed constants of the segmented spacetime framework.
const XiMax = 0.8 // maximum segment density

// Phi is the golden ratio, the natural scale of the exponential segment
// density.
var Phi = (1 + math.Sqrt(5)) / 2

// SSZ is the segmented spacetime model with exponential segment density
//
//	Xi(r) = Xi_max * (1 - exp(-phi*r_s/r))
//	D(r)  = 1 / (1 + Xi(r))
//
// D is defined and strictly positive for all r > 0, including r = r_s.
// That absence of a singular boundary is the variant's defining divergence
// from GR.
type SSZ struct {
	mass  float64
	rs    float64
	xiMax float64
	phi   float64
}

// NewSSZ returns the exponential SSZ model for a central mass in kg.
func NewSSZ(cst phys.Constants, mass float64) *SSZ {
	return &SSZ{
		mass:  mass,
		rs:    SchwarzschildRadius(cst, mass),
		xiMax: XiMax,
		phi:   Phi,
	}
}

func (s *SSZ) TimeDilation(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrNonPositiveRadius
	}
	return 1 / (1 + s.SegmentDensity(r)), nil
}

func (s *SSZ) CharacteristicRadius() float64 { return s.rs }

// SegmentDensity returns Xi(r).  Non-positive r saturates at Xi_max.
func (s *SSZ) SegmentDensity(r float64) float64 {
	if r <= 0 {
		return s.xiMax
	}
	return s.xiMax * (1 - math.Exp(-s.phi*s.rs/r))
}

func (s *SSZ) Name() string { return "SSZ" }

// SSZTanh is the hyperbolic segment-density variant
//
//	Xi(r) = Xi_max * tanh(alpha*r_s/r)
//
// with the same D(r) = 1/(1+Xi) dilation law as SSZ.
type SSZTanh struct {
	mass  float64
	rs    float64
	xiMax float64
	alpha float64
}

// NewSSZTanh returns the hyperbolic variant.  alpha scales the density
// falloff; 1 reproduces the documented form.
func NewSSZTanh(cst phys.Constants, mass, alpha float64) *SSZTanh {
	return &SSZTanh{
		mass:  mass,
		rs:    SchwarzschildRadius(cst, mass),
		xiMax: XiMax,
		alpha: alpha,
	}
}

func (s *SSZTanh) TimeDilation(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrNonPositiveRadius
	}
	return 1 / (1 + s.SegmentDensity(r)), nil
}

func (s *SSZTanh) CharacteristicRadius() float64 { return s.rs }

func (s *SSZTanh) SegmentDensity(r float64) float64 {
	if r <= 0 {
		return s.xiMax
	}
	return s.xiMax * math.Tanh(s.alpha*s.rs/r)
}

func (s *SSZTanh) Name() string { return "SSZ-tanh" }
