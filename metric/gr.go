// Public domain.

package metric

import (
	"math"

	"github.com/sszlab/freqloop/phys"
)

// GRFloor is the saturation value the GR model reports strictly inside r_s,
// where sqrt(1-r_s/r) has no real value.  Returning a small positive floor
// instead of NaN keeps downstream logarithms finite; the accompanying
// DomainError keeps the breakdown visible.
const GRFloor = 0.01

// GR is the Schwarzschild time-dilation model D(r) = sqrt(1 - r_s/r).
type GR struct {
	mass float64
	rs   float64
}

// NewGR returns the GR model for a central mass in kg.
func NewGR(cst phys.Constants, mass float64) *GR {
	return &GR{mass: mass, rs: SchwarzschildRadius(cst, mass)}
}

// TimeDilation returns sqrt(1 - r_s/r) for r > r_s.  At r = r_s the factor
// is exactly zero; strictly inside it saturates at GRFloor.  Both boundary
// cases carry a *DomainError.
func (g *GR) TimeDilation(r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrNonPositiveRadius
	}
	if r < g.rs {
		return GRFloor, &DomainError{R: r, RS: g.rs}
	}
	if r == g.rs {
		return 0, &DomainError{R: r, RS: g.rs}
	}
	return math.Sqrt(1 - g.rs/r), nil
}

func (g *GR) CharacteristicRadius() float64 { return g.rs }

// SegmentDensity returns the weak-field surrogate r_s/(2r), the GR
// counterpart of the SSZ segment density for comparison purposes.
func (g *GR) SegmentDensity(r float64) float64 {
	return g.rs / (2 * r)
}

func (g *GR) Name() string { return "GR" }
