// Public domain.

package decomp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sszlab/freqloop/decomp"
	"github.com/sszlab/freqloop/metric"
	"github.com/sszlab/freqloop/phys"
)

func TestNSR(t *testing.T) {
	cst := phys.Default()

	// at rest the kinematic term is exactly zero
	n, err := decomp.NSR(cst, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, n)

	n, err = decomp.NSR(cst, cst.C/2)
	require.NoError(t, err)
	require.InDelta(t, 2/math.Sqrt(3)-1, n, 1e-12)

	// orbital speeds give the familiar ~1e-10 order
	n, err = decomp.NSR(cst, 7660)
	require.NoError(t, err)
	require.InEpsilon(t, 0.5*7660*7660/(cst.C*cst.C), n, 1e-5)
}

func TestNSRSpeedLimit(t *testing.T) {
	cst := phys.Default()
	var ve *decomp.VelocityError
	n, err := decomp.NSR(cst, cst.C)
	require.ErrorAs(t, err, &ve)
	require.True(t, math.IsInf(n, 1))
	require.Equal(t, cst.C, ve.V)

	_, err = decomp.NSR(cst, 2*cst.C)
	require.ErrorAs(t, err, &ve)
}

func TestNGRFrameInvariance(t *testing.T) {
	cst := phys.Default()
	m := metric.NewSSZ(cst, phys.MEarth)
	r := phys.REarth + 400e3

	want := decomp.NGR(m, r)
	// the positional term sees no velocity at all: identical for any
	// observer motion
	for _, v := range []float64{0, 1000, 7660, 0.9 * cst.C} {
		d, err := decomp.Decompose(m, cst, r, v)
		require.NoError(t, err)
		require.Equal(t, want, d.GR, "v=%g", v)
	}
}

func TestNGRDeficit(t *testing.T) {
	cst := phys.Default()
	g := metric.NewGR(cst, phys.MEarth)
	rs := g.CharacteristicRadius()

	def, err := decomp.NGRDeficit(g, 2*rs)
	require.NoError(t, err)
	require.InDelta(t, 1-math.Sqrt(0.5), def, 1e-12)

	// weak field: deficit and segment density agree to first order
	def, err = decomp.NGRDeficit(g, phys.REarth)
	require.NoError(t, err)
	require.InEpsilon(t, decomp.NGR(g, phys.REarth), def, 1e-3)

	_, err = decomp.NGRDeficit(g, rs)
	require.Error(t, err)
}

func TestDecompose(t *testing.T) {
	cst := phys.Default()
	m := metric.NewGR(cst, phys.MEarth)
	r := phys.REarth + 400e3
	v := 7660.0

	d, err := decomp.Decompose(m, cst, r, v)
	require.NoError(t, err)
	require.Equal(t, d.Total, d.SR+d.GR)
	require.Greater(t, d.SR, 0.0)
	require.Greater(t, d.GR, 0.0)
	// both parts are of the familiar 1e-10 order for a low orbit
	require.InEpsilon(t, 3.3e-10, d.SR, 0.1)
	require.InEpsilon(t, 6.9e-10, d.GR, 0.1)

	_, err = decomp.Decompose(m, cst, r, cst.C)
	require.Error(t, err)
}

func TestSplit(t *testing.T) {
	cst := phys.Default()
	m := metric.NewGR(cst, phys.MEarth)
	rA := phys.REarth
	rB := phys.REarth + 400e3

	total, sr, gr, err := decomp.Split(m, cst, rA, rB, 0, 7660)
	require.NoError(t, err)
	require.Equal(t, total, sr+gr)
	// the orbiting clock runs slow kinematically, fast gravitationally
	require.Greater(t, sr, 0.0)
	require.Less(t, gr, 0.0)

	// swap antisymmetry
	rTotal, rSR, rGR, err := decomp.Split(m, cst, rB, rA, 7660, 0)
	require.NoError(t, err)
	require.InDelta(t, -total, rTotal, 1e-15)
	require.InDelta(t, -sr, rSR, 1e-15)
	require.InDelta(t, -gr, rGR, 1e-15)

	_, _, _, err = decomp.Split(m, cst, rA, rB, cst.C, 0)
	require.Error(t, err)
	_, _, _, err = decomp.Split(m, cst, rA, rB, 0, cst.C)
	require.Error(t, err)
}

func TestVelocityErrorMessage(t *testing.T) {
	err := &decomp.VelocityError{V: 3e8, C: 299792458}
	require.Contains(t, err.Error(), "not below c")
}
