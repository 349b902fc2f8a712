package orbitalgenesis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// keplerε is the Newton-Raphson convergence threshold on |ΔE|.
	keplerε = 1e-6
	// maxKeplerIters bounds the solve. Convergence slows as e approaches 1
	// but the solver sits on the per-frame path and must never spin.
	maxKeplerIters = 30
)

// Orbit defines a closed planar orbit via its orbital elements: semi-major
// axis a, eccentricity e, argument of periapsis ω, orbital period and mean
// anomaly at epoch. Angles are in radians, distances and times in render
// units. An Orbit is immutable once constructed.
type Orbit struct {
	a, e, ω, period, m0 float64
}

// NewOrbit returns the orbit for the given elements. It panics if the
// elements do not describe a closed ellipse: the generator is the sole
// producer of orbits, so a violation here is a programming error and is
// caught at construction rather than on the per-frame path.
func NewOrbit(a, e, ω, period, m0 float64) Orbit {
	if a <= 0 {
		panic(fmt.Errorf("orbit: semi-major axis must be positive (a=%f)", a))
	}
	if e < 0 || e >= 1 {
		panic(fmt.Errorf("orbit: only closed ellipses are supported (e=%f)", e))
	}
	if period <= 0 {
		panic(fmt.Errorf("orbit: period must be positive (T=%f)", period))
	}
	return Orbit{a, e, wrapTau(ω), period, m0}
}

// Elements returns the five orbital elements.
func (o Orbit) Elements() (a, e, ω, period, m0 float64) {
	return o.a, o.e, o.ω, o.period, o.m0
}

// Apoapsis returns the farthest distance from the focus.
func (o Orbit) Apoapsis() float64 {
	return o.a * (1 + o.e)
}

// Periapsis returns the closest distance from the focus.
func (o Orbit) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// Period returns the orbital period.
func (o Orbit) Period() float64 {
	return o.period
}

// MeanMotion returns the angular rate n of the mean anomaly.
func (o Orbit) MeanMotion() float64 {
	return tau / o.period
}

// MeanAnomalyAt returns the mean anomaly at time t, reduced modulo 2π.
func (o Orbit) MeanAnomalyAt(t float64) float64 {
	return wrapTau(o.m0 + o.MeanMotion()*t)
}

// eccentricAnomaly solves Kepler's equation M = E - e·sinE for E via
// Newton-Raphson with initial guess E₀ = M.
func (o Orbit) eccentricAnomaly(M float64) float64 {
	E := M
	for i := 0; i < maxKeplerIters; i++ {
		δ := (E - o.e*math.Sin(E) - M) / (1 - o.e*math.Cos(E))
		E -= δ
		if math.Abs(δ) <= keplerε {
			break
		}
	}
	return E
}

// PositionAt returns the position at time t relative to the orbital focus,
// periapsis rotated by ω. Pure and total for any constructed Orbit: same
// inputs always yield the same vector, no state is touched.
func (o Orbit) PositionAt(t float64) r2.Vec {
	E := o.eccentricAnomaly(o.MeanAnomalyAt(t))
	sinE, cosE := math.Sincos(E)
	p := o.a * (cosE - o.e)
	q := o.a * math.Sqrt(1-o.e*o.e) * sinE
	sinω, cosω := math.Sincos(o.ω)
	return r2.Vec{X: p*cosω - q*sinω, Y: p*sinω + q*cosω}
}

// String implements the Stringer interface. Angles print in degrees.
func (o Orbit) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f ω=%.3f T=%.1f M0=%.3f", o.a, o.e, Rad2deg(o.ω), o.period, Rad2deg(o.m0))
}
