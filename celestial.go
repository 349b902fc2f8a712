package orbitalgenesis

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// PlanetType classifies a planet. The class drives the radius band, the
// color band and the moon policy during generation.
type PlanetType uint8

// The supported planet classes.
const (
	Rocky PlanetType = iota
	GasGiant
	IceGiant
	Dwarf
)

// String implements the Stringer interface.
func (t PlanetType) String() string {
	switch t {
	case GasGiant:
		return "gas giant"
	case IceGiant:
		return "ice giant"
	case Dwarf:
		return "dwarf"
	default:
		return "rocky"
	}
}

// Star sits at the system origin. Mass is a placeholder for the renderer's
// tooltip, the solver never reads it.
type Star struct {
	ID     uuid.UUID
	Name   string
	Radius float64
	Color  colorful.Color
	Mass   float64
}

// String implements the Stringer interface.
func (s Star) String() string {
	return s.Name + " star"
}

// Moon orbits a planet. Parent is a non-owning back-reference resolved via
// SolarSystem.PlanetByID: a moon's position is always relative to its
// parent's current position, never stored absolutely.
type Moon struct {
	ID     uuid.UUID
	Name   string
	Radius float64
	Color  colorful.Color
	Orbit  Orbit
	Parent uuid.UUID
}

// Planet orbits the star and exclusively owns its moons: moon lifetime is
// planet lifetime.
type Planet struct {
	ID          uuid.UUID
	Name        string
	Type        PlanetType
	Radius      float64
	Color       colorful.Color
	Orbit       Orbit
	Description string
	Moons       []Moon
}

// String implements the Stringer interface.
func (p Planet) String() string {
	return fmt.Sprintf("%s (%s, %d moons, %s)", p.Name, p.Type, len(p.Moons), p.Orbit)
}

// BeltParticle is an independent point on a circular path. Belts skip the
// Kepler solver on purpose: with thousands of particles per frame the hot
// path must stay O(1) per particle.
type BeltParticle struct {
	Angle  float64 // initial phase
	Radius float64 // fixed, within the owning belt's bounds
	Speed  float64 // angular rate multiplier
	Size   float64 // render radius
}

// PositionAt returns the particle position at time t.
func (p BeltParticle) PositionAt(t float64) r2.Vec {
	sinθ, cosθ := math.Sincos(p.Angle + p.Speed*t)
	return r2.Vec{X: p.Radius * cosθ, Y: p.Radius * sinθ}
}

// AsteroidBelt is an annulus of particles on circular paths.
type AsteroidBelt struct {
	MinRadius float64
	MaxRadius float64
	Particles []BeltParticle
}

// Width returns the radial width of the belt.
func (b AsteroidBelt) Width() float64 {
	return b.MaxRadius - b.MinRadius
}

// SolarSystem is the aggregate produced by Generate: one star, planets in
// increasing orbital distance order, and asteroid belts. It is built
// atomically and immutable thereafter; a regenerate action replaces the
// whole value.
type SolarSystem struct {
	Star    Star
	Planets []Planet
	Belts   []AsteroidBelt
}

// PlanetByID resolves a planet, typically from a moon's Parent reference.
func (s *SolarSystem) PlanetByID(id uuid.UUID) (*Planet, error) {
	for i := range s.Planets {
		if s.Planets[i].ID == id {
			return &s.Planets[i], nil
		}
	}
	return nil, fmt.Errorf("no planet with id %s", id)
}

// MoonCount returns the number of moons across all planets.
func (s *SolarSystem) MoonCount() (n int) {
	for _, p := range s.Planets {
		n += len(p.Moons)
	}
	return
}

// ParticleCount returns the number of belt particles across all belts.
func (s *SolarSystem) ParticleCount() (n int) {
	for _, b := range s.Belts {
		n += len(b.Particles)
	}
	return
}

// String implements the Stringer interface.
func (s *SolarSystem) String() string {
	return fmt.Sprintf("%s: %d planets, %d moons, %d belts", s.Star.Name, len(s.Planets), s.MoonCount(), len(s.Belts))
}
