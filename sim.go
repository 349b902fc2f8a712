package orbitalgenesis

import (
	kitlog "github.com/go-kit/kit/log"
	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// BodyKind tags the entries of a Frame.
type BodyKind uint8

// The supported body kinds.
const (
	KindStar BodyKind = iota
	KindPlanet
	KindMoon
)

// BodyState is one body's snapshot within a frame. Positions are in system
// coordinates with the star at the origin; the renderer applies its own
// pan/zoom transform to reach screen coordinates.
type BodyState struct {
	ID     uuid.UUID
	Name   string
	Kind   BodyKind
	Pos    r2.Vec
	Radius float64
	Color  colorful.Color
}

// Frame is a complete snapshot of the system at one simulated instant. Its
// slices alias buffers owned by the Simulation and are only valid until the
// next Frame call; callers needing longer-lived data must copy.
type Frame struct {
	Elapsed   float64
	Bodies    []BodyState
	Particles []r2.Vec
}

// Simulation owns the simulated clock and projects a SolarSystem into
// frames. Pausing stops the clock accumulation only: the solver itself is
// stateless and the system is never mutated.
type Simulation struct {
	System  *SolarSystem
	elapsed float64
	speed   float64
	paused  bool
	logger  kitlog.Logger

	bodyBuf     []BodyState
	particleBuf []r2.Vec
}

// NewSimulation wraps a generated system. A nil logger disables logging.
func NewSimulation(sys *SolarSystem, logger kitlog.Logger) *Simulation {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Simulation{System: sys, speed: 1, logger: logger}
}

// Advance accumulates realDt × speed of simulated time. A paused simulation
// holds its clock.
func (s *Simulation) Advance(realDt float64) {
	if s.paused {
		return
	}
	s.elapsed += realDt * s.speed
}

// Elapsed returns the accumulated simulated time.
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// SetSpeed changes the speed multiplier. Non-positive multipliers are
// ignored; use Pause to stop time.
func (s *Simulation) SetSpeed(mult float64) {
	if mult <= 0 {
		s.logger.Log("event", "setspeed", "ignored", mult)
		return
	}
	s.speed = mult
}

// Speed returns the current speed multiplier.
func (s *Simulation) Speed() float64 {
	return s.speed
}

// Pause stops the clock.
func (s *Simulation) Pause() {
	s.paused = true
}

// Resume restarts the clock.
func (s *Simulation) Resume() {
	s.paused = false
}

// Paused returns whether the clock is stopped.
func (s *Simulation) Paused() bool {
	return s.paused
}

// Regenerate swaps in a freshly generated system and resets the clock.
func (s *Simulation) Regenerate(src Source) {
	s.System = Generate(src)
	s.elapsed = 0
	s.logger.Log("event", "regenerate", "planets", len(s.System.Planets), "belts", len(s.System.Belts))
}

// Frame projects every body and particle at the current simulated time.
// A moon's position composes its parent planet's position with the moon's
// own orbit around that parent. Particles use the O(1) circular formula.
func (s *Simulation) Frame() Frame {
	s.bodyBuf = s.bodyBuf[:0]
	s.particleBuf = s.particleBuf[:0]
	t := s.elapsed
	sys := s.System

	s.bodyBuf = append(s.bodyBuf, BodyState{
		ID: sys.Star.ID, Name: sys.Star.Name, Kind: KindStar,
		Radius: sys.Star.Radius, Color: sys.Star.Color,
	})
	for _, p := range sys.Planets {
		pos := p.Orbit.PositionAt(t)
		s.bodyBuf = append(s.bodyBuf, BodyState{
			ID: p.ID, Name: p.Name, Kind: KindPlanet,
			Pos: pos, Radius: p.Radius, Color: p.Color,
		})
		for _, m := range p.Moons {
			s.bodyBuf = append(s.bodyBuf, BodyState{
				ID: m.ID, Name: m.Name, Kind: KindMoon,
				Pos: r2.Add(pos, m.Orbit.PositionAt(t)), Radius: m.Radius, Color: m.Color,
			})
		}
	}
	for _, b := range sys.Belts {
		for _, pt := range b.Particles {
			s.particleBuf = append(s.particleBuf, pt.PositionAt(t))
		}
	}
	return Frame{Elapsed: t, Bodies: s.bodyBuf, Particles: s.particleBuf}
}
