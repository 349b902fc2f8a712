package orbitalgenesis

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hue bands per planet class, in HSL degrees. Tuned for contrast on a dark
// starfield, not for physical realism.
const (
	starHueMin, starHueMax = 38.0, 55.0

	gasGiantHueMin, gasGiantHueMax = 20.0, 50.0
	iceGiantHueMin, iceGiantHueMax = 185.0, 230.0

	earthlikeHueMin, earthlikeHueMax = 95.0, 145.0
	marslikeHueMin, marslikeHueMax   = 10.0, 30.0
)

// starColor draws from a warm white-yellow family.
func starColor(src Source) colorful.Color {
	return colorful.Hsl(uniform(src, starHueMin, starHueMax), uniform(src, 0.75, 0.95), uniform(src, 0.72, 0.85))
}

// planetColor draws a color within the class band. Rocky worlds split evenly
// between an Earth-like and a Mars-like hue band.
func planetColor(src Source, t PlanetType) colorful.Color {
	switch t {
	case GasGiant:
		return colorful.Hsl(uniform(src, gasGiantHueMin, gasGiantHueMax), uniform(src, 0.45, 0.75), uniform(src, 0.55, 0.70))
	case IceGiant:
		return colorful.Hsl(uniform(src, iceGiantHueMin, iceGiantHueMax), uniform(src, 0.50, 0.80), uniform(src, 0.55, 0.70))
	case Dwarf:
		return colorful.Hsl(uniform(src, 0, 360), uniform(src, 0.05, 0.20), uniform(src, 0.45, 0.65))
	default:
		if src.Float64() < 0.5 {
			return colorful.Hsl(uniform(src, earthlikeHueMin, earthlikeHueMax), uniform(src, 0.35, 0.60), uniform(src, 0.40, 0.55))
		}
		return colorful.Hsl(uniform(src, marslikeHueMin, marslikeHueMax), uniform(src, 0.50, 0.80), uniform(src, 0.45, 0.60))
	}
}

// moonColor draws a desaturated gray.
func moonColor(src Source) colorful.Color {
	return colorful.Hsl(uniform(src, 0, 360), uniform(src, 0.0, 0.08), uniform(src, 0.55, 0.80))
}
