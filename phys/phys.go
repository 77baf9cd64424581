// Public domain.

// Package phys holds the physical constants shared by the frequency
// comparison models.
//
// Constants are process-wide read-only configuration.  Model constructors
// take a Constants value rather than reading ambient globals, so a test can
// run with altered constants without touching anything shared.
package phys

// Constants is the immutable set of fundamental constants a scenario runs
// under.
type Constants struct {
	C float64 // speed of light, m/s
	G float64 // gravitational constant, m^3/(kg s^2)
}

// Default returns the standard values.
func Default() Constants {
	return Constants{
		C: 299792458, // exact
		G: 6.67430e-11,
	}
}

// Reference bodies used by the built-in scenarios.
const (
	MEarth = 5.972e24   // kg
	REarth = 6.371e6    // m
	MSun   = 1.98847e30 // kg
	RSun   = 6.957e8    // m
)
