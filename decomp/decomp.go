// Public domain.

// Package decomp splits a total frequency offset into its frame-removable
// kinematic part and its frame-independent gravitational part,
//
//	N_total = N_SR + N_GR
//
// N_SR depends only on speed and vanishes in the object's own rest frame.
// N_GR depends only on position in the chosen spacetime model and is
// invariant under any choice of observer velocity.
package decomp

import (
	"fmt"
	"math"

	"github.com/sszlab/freqloop/delta"
	"github.com/sszlab/freqloop/metric"
	"github.com/sszlab/freqloop/phys"
)

// VelocityError reports a speed at or above c.
type VelocityError struct {
	V float64
	C float64
}

func (e *VelocityError) Error() string {
	return fmt.Sprintf("decomp: speed %g m/s is not below c (%g m/s)", e.V, e.C)
}

// NSR returns the removable special-relativistic contribution
//
//	gamma(v) - 1,  gamma = 1/sqrt(1-(v/c)^2)
//
// NSR(cst, 0) is exactly zero: boosting to the object's rest frame removes
// the whole term.
func NSR(cst phys.Constants, v float64) (float64, error) {
	beta := v / cst.C
	if beta*beta >= 1 {
		return math.Inf(1), &VelocityError{V: v, C: cst.C}
	}
	return 1/math.Sqrt(1-beta*beta) - 1, nil
}

// NGR returns the non-removable gravitational contribution in the model's
// own formulation: its segment density (Xi for the SSZ variants, r_s/(2r)
// for GR).  It takes no velocity argument; there is nothing a frame choice
// could do to it.
func NGR(m metric.Model, r float64) float64 {
	return m.SegmentDensity(r)
}

// NGRDeficit returns the alternative formulation 1 - D(r), the time-dilation
// deficit.  Numerically distinct from NGR in general, it represents the same
// non-removable quantity; callers pick whichever form a comparison calls for.
func NGRDeficit(m metric.Model, r float64) (float64, error) {
	d, err := m.TimeDilation(r)
	if err != nil {
		return 0, err
	}
	return 1 - d, nil
}

// Decomposition is the additive split of a total frequency offset.
type Decomposition struct {
	Total float64
	SR    float64 // removable, kinematic
	GR    float64 // non-removable, positional
}

// Decompose returns the split for a clock at radius r moving at speed v.
func Decompose(m metric.Model, cst phys.Constants, r, v float64) (Decomposition, error) {
	sr, err := NSR(cst, v)
	if err != nil {
		return Decomposition{}, err
	}
	gr := NGR(m, r)
	return Decomposition{Total: sr + gr, SR: sr, GR: gr}, nil
}

// Split separates the pairwise delta observable between two moving clocks
// into a kinematic part and a positional part:
//
//	delta_SR = ln((1-N_SR_A)/(1-N_SR_B))
//	delta_GR = ln(D(rA)/D(rB))
//
// with total = delta_SR + delta_GR.
func Split(m metric.Model, cst phys.Constants, rA, rB, vA, vB float64) (total, sr, gr float64, err error) {
	nA, err := NSR(cst, vA)
	if err != nil {
		return 0, 0, 0, err
	}
	nB, err := NSR(cst, vB)
	if err != nil {
		return 0, 0, 0, err
	}
	if nA < 1 && nB < 1 {
		sr = math.Log((1 - nA) / (1 - nB))
	}
	// past gamma = 2 the log form loses meaning; the kinematic part is
	// then reported as zero
	gr, err = delta.FromPositions(m, rA, rB)
	if err != nil {
		return 0, 0, 0, err
	}
	return sr + gr, sr, gr, nil
}
