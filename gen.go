package orbitalgenesis

import (
	"math"

	"github.com/google/uuid"
)

// Generation policy constants. The exact values are tuned for a readable
// on-screen layout; the invariants (orbits never touch, belts only in
// provably free gaps) hold for any values satisfying the comments.
const (
	defaultMinPlanets = 7
	defaultMaxPlanets = 12

	starRadiusMin = 14.0
	starRadiusMax = 22.0
	// starClearance is how far beyond the star surface the first perihelion
	// must sit.
	starClearance = 40.0

	// innerSystemCount planets use the tight gap range, the rest the wide one.
	innerSystemCount = 4
	innerGapMin      = 28.0
	innerGapMax      = 55.0
	outerGapMin      = 60.0
	outerGapMax      = 130.0

	planetEccMin = 0.01
	planetEccMax = 0.2

	// frostLine is the semi-major axis beyond which giant classes dominate;
	// frostIndex triggers the same bias deep in the system regardless of a.
	frostLine  = 340.0
	frostIndex = 4

	// period = a^1.5 × scale: Kepler's third law on a render timescale, not
	// calibrated to physical units. The moon constant is much smaller so
	// moons orbit much faster relative to their distance than planets do.
	planetPeriodScale = 0.05
	moonPeriodScale   = 0.01

	moonEccMax     = 0.06
	moonBaseOffset = 6.0
	moonStepOffset = 6.0
	moonJitterMax  = 1.5

	// beltMargin keeps every belt edge clear of the neighbouring orbits; a
	// gap qualifies for a belt only when it fits the margin twice plus the
	// minimum width.
	beltMargin   = 12.0
	beltMinWidth = 14.0
	// beltDensity scales particle population with radial width.
	beltDensity = 18.0

	// Cumulative probability bands for the inner belt count: 5% → 3 belts,
	// next 20% → 2 belts, remainder → 1 belt.
	beltThreeBand = 0.05
	beltTwoBand   = 0.25

	outerBeltClearance = 60.0
	outerBeltWidthMin  = 40.0
	outerBeltWidthMax  = 90.0
	outerBeltParticles = 2500

	// Particle angular speed = scale / √radius: slower further out, without
	// paying for a full Kepler solve per particle.
	particleSpeedScale = 4.0
	particleSizeMin    = 0.4
	particleSizeMax    = 1.6
)

var typeDescriptions = map[PlanetType][]string{
	Rocky: {
		"A dense terrestrial world with a cratered crust.",
		"A temperate rocky world streaked with cloud bands.",
		"A dry rocky world of canyons and dust storms.",
	},
	GasGiant: {
		"A massive gas giant wrapped in banded storms.",
		"A swollen hydrogen giant with a faint ring shadow.",
	},
	IceGiant: {
		"A cold ice giant with a methane-tinted atmosphere.",
		"A slushy ice giant under a featureless haze.",
	},
	Dwarf: {
		"A dwarf world, barely rounded by its own gravity.",
		"A frozen dwarf world on a lonely orbit.",
	},
}

// Generate builds a complete planetary system from the provided randomness
// source. It is total: any stream of variates yields a valid system, and the
// layout is deterministic for a given stream. The returned value is never
// mutated afterwards; regeneration builds a fresh one.
func Generate(src Source) *SolarSystem {
	conf := genesisConfig()
	sys := &SolarSystem{Star: Star{
		ID:     uuid.New(),
		Name:   newName(src),
		Radius: uniform(src, starRadiusMin, starRadiusMax),
		Color:  starColor(src),
		Mass:   1,
	}}

	count := intRange(src, conf.minPlanets, conf.maxPlanets)
	// Running boundary: every new perihelion must clear the previous
	// aphelion by the drawn gap, so adjacent orbits can never cross.
	aphelion := sys.Star.Radius + starClearance
	for i := 0; i < count; i++ {
		p := nextPlanet(src, i, aphelion)
		aphelion = p.Orbit.Apoapsis()
		sys.Planets = append(sys.Planets, p)
	}

	sys.Belts = placeBelts(src, sys.Planets)
	return sys
}

// nextPlanet lays out planet i just outside the previous aphelion. The
// semi-major axis is derived from the required perihelion, a = rP / (1-e).
func nextPlanet(src Source, i int, prevAphelion float64) Planet {
	var gap float64
	if i < innerSystemCount {
		gap = uniform(src, innerGapMin, innerGapMax)
	} else {
		gap = uniform(src, outerGapMin, outerGapMax)
	}
	e := uniform(src, planetEccMin, planetEccMax)
	a := (prevAphelion + gap) / (1 - e)
	typ := classify(src, i, a)

	p := Planet{
		ID:          uuid.New(),
		Name:        newName(src),
		Type:        typ,
		Radius:      planetRadius(src, typ),
		Color:       planetColor(src, typ),
		Orbit:       NewOrbit(a, e, Deg2rad(uniform(src, 0, 360)), math.Pow(a, 1.5)*planetPeriodScale, uniform(src, 0, tau)),
		Description: describe(src, typ),
	}
	for m, count := 0, moonCount(src, typ); m < count; m++ {
		p.Moons = append(p.Moons, nextMoon(src, &p, m))
	}
	return p
}

// classify biases the type roll on the frost line: beyond it, or deep in the
// system by index, giants dominate with the odd dwarf; inside it, rocky
// worlds dominate.
func classify(src Source, i int, a float64) PlanetType {
	roll := src.Float64()
	if a > frostLine || i > frostIndex {
		switch {
		case roll < 0.45:
			return GasGiant
		case roll < 0.90:
			return IceGiant
		default:
			return Dwarf
		}
	}
	if roll < 0.85 {
		return Rocky
	}
	return Dwarf
}

func planetRadius(src Source, t PlanetType) float64 {
	switch t {
	case GasGiant:
		return uniform(src, 7.0, 11.0)
	case IceGiant:
		return uniform(src, 5.5, 8.0)
	case Dwarf:
		return uniform(src, 1.2, 2.2)
	default:
		return uniform(src, 2.5, 4.5)
	}
}

// moonCount draws a class-dependent moon count. Dwarf planets get none.
func moonCount(src Source, t PlanetType) int {
	switch t {
	case GasGiant:
		return intRange(src, 2, 5)
	case IceGiant:
		return intRange(src, 1, 4)
	case Dwarf:
		return 0
	default:
		return intRange(src, 0, 2)
	}
}

func describe(src Source, t PlanetType) string {
	opts := typeDescriptions[t]
	return opts[intRange(src, 0, len(opts)-1)]
}

// nextMoon stacks moon m outward from the planet surface with an increasing
// per-index offset, so sibling moons never share an orbit.
func nextMoon(src Source, p *Planet, m int) Moon {
	r := p.Radius + moonBaseOffset + float64(m)*moonStepOffset + uniform(src, 0, moonJitterMax)
	e := uniform(src, 0, moonEccMax)
	return Moon{
		ID:     uuid.New(),
		Name:   moonName(p.Name, m),
		Radius: uniform(src, 0.5, math.Min(1.8, p.Radius*0.45)),
		Color:  moonColor(src),
		Orbit:  NewOrbit(r, e, Deg2rad(uniform(src, 0, 360)), math.Pow(r, 1.5)*moonPeriodScale, uniform(src, 0, tau)),
		Parent: p.ID,
	}
}

// beltGap is a candidate annulus between two adjacent planet orbits, bounded
// by the inner planet's aphelion and the outer planet's perihelion.
type beltGap struct {
	inner, outer float64
}

// validGaps returns the inter-planet gaps wide enough for a belt that clears
// both neighbouring orbits by beltMargin.
func validGaps(planets []Planet) []beltGap {
	var gaps []beltGap
	for i := 0; i+1 < len(planets); i++ {
		in := planets[i].Orbit.Apoapsis()
		out := planets[i+1].Orbit.Periapsis()
		if out-in > 2*beltMargin+beltMinWidth {
			gaps = append(gaps, beltGap{in, out})
		}
	}
	return gaps
}

// placeBelts picks up to three valid inter-planet gaps for belts, then
// always closes the system with an outer belt beyond the last planet. With
// zero valid gaps, zero inner belts are placed; the outer belt remains.
func placeBelts(src Source, planets []Planet) []AsteroidBelt {
	gaps := validGaps(planets)
	want := 1
	switch roll := src.Float64(); {
	case roll < beltThreeBand:
		want = 3
	case roll < beltTwoBand:
		want = 2
	}
	if want > len(gaps) {
		want = len(gaps)
	}
	shuffle(src, len(gaps), func(i, j int) { gaps[i], gaps[j] = gaps[j], gaps[i] })

	belts := make([]AsteroidBelt, 0, want+1)
	for _, g := range gaps[:want] {
		belts = append(belts, populateBelt(src, g.inner+beltMargin, g.outer-beltMargin, 0))
	}

	outerMin := planets[len(planets)-1].Orbit.Apoapsis() + outerBeltClearance
	outerMax := outerMin + uniform(src, outerBeltWidthMin, outerBeltWidthMax)
	return append(belts, populateBelt(src, outerMin, outerMax, outerBeltParticles))
}

// populateBelt fills [minR, maxR] with particles. A zero count scales the
// population with the belt's radial width.
func populateBelt(src Source, minR, maxR float64, count int) AsteroidBelt {
	if count == 0 {
		count = int(beltDensity * (maxR - minR))
	}
	belt := AsteroidBelt{MinRadius: minR, MaxRadius: maxR, Particles: make([]BeltParticle, count)}
	for i := range belt.Particles {
		r := uniform(src, minR, maxR)
		belt.Particles[i] = BeltParticle{
			Angle:  uniform(src, 0, tau),
			Radius: r,
			Speed:  particleSpeedScale / math.Sqrt(r),
			Size:   uniform(src, particleSizeMin, particleSizeMax),
		}
	}
	return belt
}
