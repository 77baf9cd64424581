// Public domain.

package loop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sszlab/freqloop/delta"
	"github.com/sszlab/freqloop/loop"
	"github.com/sszlab/freqloop/metric"
	"github.com/sszlab/freqloop/orbit"
	"github.com/sszlab/freqloop/phys"
)

func models() []metric.Model {
	cst := phys.Default()
	return []metric.Model{
		metric.NewGR(cst, phys.MEarth),
		metric.NewSSZ(cst, phys.MEarth),
		metric.NewSSZTanh(cst, phys.MEarth, 1),
	}
}

func TestStaticClosure(t *testing.T) {
	rA := phys.REarth
	rB := phys.REarth + 20200e3
	rC := 384400e3 // the Moon
	for _, m := range models() {
		c, err := loop.Static(m, rA, rB, rC)
		require.NoError(t, err, m.Name())
		require.InDelta(t, 0, c, 1e-13, m.Name())
	}
}

func TestStaticClosureStrongField(t *testing.T) {
	// the identity is algebraic; it holds arbitrarily close to r_s too
	for _, m := range models() {
		rs := m.CharacteristicRadius()
		c, err := loop.Static(m, 1.01*rs, 2*rs, 10*rs)
		require.NoError(t, err, m.Name())
		require.InDelta(t, 0, c, 1e-13, m.Name())
	}
}

func TestStaticDomainError(t *testing.T) {
	cst := phys.Default()
	g := metric.NewGR(cst, phys.MEarth)
	_, err := loop.Static(g, g.CharacteristicRadius(), phys.REarth, 2*phys.REarth)
	require.Error(t, err)
}

func TestDynamicSuborbital(t *testing.T) {
	cst := phys.Default()
	m := metric.NewGR(cst, phys.MEarth)
	grav := orbit.SurfaceGravity(cst, phys.MEarth, phys.REarth)

	ground := orbit.Static(phys.REarth)
	rocket := orbit.Ballistic(phys.REarth, 7000, grav)
	gps := orbit.Circular(cst, phys.MEarth, phys.REarth+20200e3)

	samples, err := loop.Dynamic(m, ground, rocket, gps, 0, 2*3600, 50)
	require.NoError(t, err)
	require.Len(t, samples, 50)
	require.Equal(t, 0.0, samples[0].T)
	require.InDelta(t, 2*3600, samples[49].T, 1e-9)

	// the ground-rocket delta swings from zero to its apex value while the
	// closure column stays flat at numerical zero
	var maxAB float64
	for _, s := range samples {
		if a := math.Abs(s.DeltaAB); a > maxAB {
			maxAB = a
		}
	}
	require.Greater(t, maxAB, 1e-11)
	require.Less(t, loop.MaxClosure(samples), 1e-14)
}

func TestDynamicEccentric(t *testing.T) {
	cst := phys.Default()
	m := metric.NewSSZ(cst, phys.MEarth)

	a := 26000e3 + phys.REarth
	galileo := orbit.Eccentric(cst, phys.MEarth, a, 0.162)
	period := orbit.Period(cst, phys.MEarth, a)
	ground := orbit.Static(phys.REarth)
	gps := orbit.Circular(cst, phys.MEarth, phys.REarth+20200e3)

	samples, err := loop.Dynamic(m, ground, galileo, gps, 0, period, 101)
	require.NoError(t, err)
	require.Less(t, loop.MaxClosure(samples), 1e-14)

	// perigee-apogee modulation shows up in the ground-satellite column
	var min, max float64 = math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		if s.DeltaAB < min {
			min = s.DeltaAB
		}
		if s.DeltaAB > max {
			max = s.DeltaAB
		}
	}
	require.Greater(t, max-min, 1e-11)
}

func TestDynamicSampleCount(t *testing.T) {
	m := models()[0]
	s := orbit.Static(phys.REarth)
	_, err := loop.Dynamic(m, s, s, s, 0, 10, 1)
	require.ErrorIs(t, err, loop.ErrSampleCount)
	_, err = loop.Dynamic(m, s, s, s, 0, 10, 0)
	require.ErrorIs(t, err, loop.ErrSampleCount)
}

func TestPathIntegralTelescopes(t *testing.T) {
	rA := phys.REarth
	rB := phys.REarth + 20200e3
	for _, m := range models() {
		direct, err := delta.FromPositions(m, rA, rB)
		require.NoError(t, err)
		for _, steps := range []int{2, 10, 100, 1000} {
			sum, err := loop.PathIntegral(m, rA, rB, steps)
			require.NoError(t, err)
			require.InDelta(t, direct, sum, 1e-12, m.Name())
		}
	}
}

func TestPathIndependence(t *testing.T) {
	rA := phys.REarth
	rB := phys.REarth + 20200e3
	rVia := phys.REarth + 10000e3
	for _, m := range models() {
		direct, err := delta.FromPositions(m, rA, rB)
		require.NoError(t, err)
		detour, err := loop.PathIntegralVia(m, rA, rVia, rB, 100)
		require.NoError(t, err)
		require.InDelta(t, direct, detour, 1e-12, m.Name())

		// a detour past the endpoint cancels on the way back
		detour, err = loop.PathIntegralVia(m, rA, 2*rB, rB, 100)
		require.NoError(t, err)
		require.InDelta(t, direct, detour, 1e-12, m.Name())
	}
}

func TestPathIntegralStepCount(t *testing.T) {
	m := models()[0]
	_, err := loop.PathIntegral(m, phys.REarth, 2*phys.REarth, 1)
	require.ErrorIs(t, err, loop.ErrStepCount)
	_, err = loop.PathIntegralVia(m, phys.REarth, 1.5*phys.REarth, 2*phys.REarth, 0)
	require.ErrorIs(t, err, loop.ErrStepCount)
}

func TestMaxClosure(t *testing.T) {
	samples := []loop.Sample{{Closure: 1e-16}, {Closure: -3e-15}, {Closure: 2e-16}}
	require.Equal(t, 3e-15, loop.MaxClosure(samples))
	require.Equal(t, 0.0, loop.MaxClosure(nil))
}
