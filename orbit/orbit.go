// Public domain.

// Package orbit generates time-parametrized measurement points for the named
// trajectory archetypes: static ground stations, ballistic suborbital
// flights, circular orbits, and eccentric orbits via Kepler's equation.
//
// A Trajectory is a pure function of time.  Nothing is shared between
// invocations, so a trajectory may be evaluated at arbitrary, repeated, or
// out-of-order times, from any number of goroutines.
package orbit

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/kepler"
	"github.com/soniakeys/unit"

	"github.com/sszlab/freqloop/phys"
)

// Point is a single measurement point along a trajectory.
type Point struct {
	T     float64    // time, s
	R     float64    // radius from the mass center, m
	V     float64    // scalar speed relative to the center's rest frame, m/s
	Theta unit.Angle // angular position in the orbital plane
}

// Trajectory maps a time to a measurement point.
type Trajectory func(t float64) Point

// Static returns a trajectory fixed at radius r with zero speed, the usual
// ground-station endpoint of a comparison triangle.
func Static(r float64) Trajectory {
	return func(t float64) Point {
		return Point{T: t, R: r}
	}
}

// SurfaceGravity returns g = GM/r^2.
func SurfaceGravity(cst phys.Constants, mass, r float64) float64 {
	return cst.G * mass / (r * r)
}

// Ballistic returns a suborbital trajectory launched radially from r0 at
// speed v0 under constant gravity g.  Height clamps at zero once the flight
// is back on the surface; speed is the magnitude of v0 - g*t.
func Ballistic(r0, v0, g float64) Trajectory {
	return func(t float64) Point {
		h := v0*t - 0.5*g*t*t
		if h < 0 {
			h = 0
		}
		return Point{T: t, R: r0 + h, V: math.Abs(v0 - g*t)}
	}
}

// Circular returns a circular orbit of radius a around a central mass.
// Speed comes from the vis-viva equation at r = a, the period from Kepler's
// third law.
func Circular(cst phys.Constants, mass, a float64) Trajectory {
	mu := cst.G * mass
	v := math.Sqrt(mu / a)
	period := Period(cst, mass, a)
	return func(t float64) Point {
		return Point{
			T:     t,
			R:     a,
			V:     v,
			Theta: unit.Angle(2 * math.Pi * t / period),
		}
	}
}

// Eccentric returns an elliptical orbit with semimajor axis a and
// eccentricity e.  At each instant the mean anomaly advances linearly,
// Kepler's equation yields the eccentric anomaly by fixed-point iteration,
// and radius and speed follow from r = a(1 - e cos E) and vis-viva.
func Eccentric(cst phys.Constants, mass, a, e float64) Trajectory {
	mu := cst.G * mass
	period := Period(cst, mass, a)
	return func(t float64) Point {
		ma := unit.Angle(2 * math.Pi * t / period)
		ea, err := kepler.Kepler1(e, ma, 12)
		if err != nil {
			// Kepler1 gave up before reaching 12 places.  The plain
			// fixed-point iterate is still plenty for the modest
			// eccentricities used here.
			x := ma.Rad()
			for i := 0; i < 10; i++ {
				x = ma.Rad() + e*math.Sin(x)
			}
			ea = unit.Angle(x)
		}
		r := kepler.Radius(ea, e, a)
		return Point{
			T:     t,
			R:     r,
			V:     math.Sqrt(mu * (2/r - 1/a)),
			Theta: kepler.True(ea, e),
		}
	}
}

// Period returns the Keplerian orbital period 2*pi*sqrt(a^3/GM).
func Period(cst phys.Constants, mass, a float64) float64 {
	mu := cst.G * mass
	return 2 * math.Pi * math.Sqrt(a*a*a/mu)
}

// Separation returns the in-plane Cartesian distance between two points
// measured from the same mass center.
func Separation(p, q Point) float64 {
	sp, cp := math.Sincos(p.Theta.Rad())
	sq, cq := math.Sincos(q.Theta.Rad())
	a := coord.Cart{X: p.R * cp, Y: p.R * sp}
	b := coord.Cart{X: q.R * cq, Y: q.R * sq}
	var d coord.Cart
	d.Sub(&a, &b)
	return math.Sqrt(d.Square())
}
