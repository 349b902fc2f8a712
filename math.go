package orbitalgenesis

import (
	"math"
)

const tau = 2 * math.Pi

// Source yields uniform variates in [0, 1). It is the only randomness the
// generator ever consumes, so a scripted stream can drive every branch of a
// generation deterministically. *rand.Rand from golang.org/x/exp/rand
// satisfies this interface.
type Source interface {
	Float64() float64
}

// uniform draws a variate from [low, high).
func uniform(src Source, low, high float64) float64 {
	return low + src.Float64()*(high-low)
}

// intRange draws an integer from [low, high], both bounds included.
func intRange(src Source, low, high int) int {
	return low + int(src.Float64()*float64(high-low+1))
}

// shuffle applies a Fisher-Yates permutation, built on Float64 draws only.
func shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		swap(i, j)
	}
}

// wrapTau reduces an angle modulo 2π. The sign of math.Mod is kept: sin and
// cos are periodic, so the reduction is numerical hygiene, not correctness.
func wrapTau(a float64) float64 {
	return math.Mod(a, tau)
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*math.Pi/180, tau)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += tau
	}
	return math.Mod(a*180/math.Pi, 360)
}
