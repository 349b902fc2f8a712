package orbitalgenesis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const dateFormatFilename = "2006-01-02-15.04.05"

// ExportConfig configures a system export.
type ExportConfig struct {
	Filename  string // defaults to "system"
	Pretty    bool   // indent the JSON output
	Timestamp bool   // append a timestamp to the file name
}

// SystemExport is the renderer-facing JSON shape of a generated system.
type SystemExport struct {
	Star    StarExport   `json:"star"`
	Planets []BodyExport `json:"planets"`
	Belts   []BeltExport `json:"belts"`
}

// StarExport definition.
type StarExport struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
	Mass   float64 `json:"mass"`
}

// BodyExport covers planets and moons.
type BodyExport struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type,omitempty"`
	Radius      float64      `json:"radius"`
	Color       string       `json:"color"`
	Description string       `json:"description,omitempty"`
	Parent      string       `json:"parent,omitempty"`
	Orbit       OrbitExport  `json:"orbit"`
	Moons       []BodyExport `json:"moons,omitempty"`
}

// OrbitExport spells out the five orbital elements.
type OrbitExport struct {
	A      float64 `json:"a"`
	E      float64 `json:"e"`
	Omega  float64 `json:"omega"`
	Period float64 `json:"period"`
	M0     float64 `json:"meanAnomaly0"`
}

// BeltExport definition.
type BeltExport struct {
	MinRadius float64          `json:"minRadius"`
	MaxRadius float64          `json:"maxRadius"`
	Particles []ParticleExport `json:"particles"`
}

// ParticleExport definition.
type ParticleExport struct {
	Angle  float64 `json:"angle"`
	Radius float64 `json:"radius"`
	Speed  float64 `json:"speed"`
	Size   float64 `json:"size"`
}

func exportOrbit(o Orbit) OrbitExport {
	a, e, ω, period, m0 := o.Elements()
	return OrbitExport{A: a, E: e, Omega: ω, Period: period, M0: m0}
}

func exportSystem(sys *SolarSystem) SystemExport {
	out := SystemExport{Star: StarExport{
		ID:     sys.Star.ID.String(),
		Name:   sys.Star.Name,
		Radius: sys.Star.Radius,
		Color:  sys.Star.Color.Hex(),
		Mass:   sys.Star.Mass,
	}}
	for _, p := range sys.Planets {
		pe := BodyExport{
			ID:          p.ID.String(),
			Name:        p.Name,
			Type:        p.Type.String(),
			Radius:      p.Radius,
			Color:       p.Color.Hex(),
			Description: p.Description,
			Orbit:       exportOrbit(p.Orbit),
		}
		for _, m := range p.Moons {
			pe.Moons = append(pe.Moons, BodyExport{
				ID:     m.ID.String(),
				Name:   m.Name,
				Radius: m.Radius,
				Color:  m.Color.Hex(),
				Parent: m.Parent.String(),
				Orbit:  exportOrbit(m.Orbit),
			})
		}
		out.Planets = append(out.Planets, pe)
	}
	for _, b := range sys.Belts {
		be := BeltExport{MinRadius: b.MinRadius, MaxRadius: b.MaxRadius}
		for _, pt := range b.Particles {
			be.Particles = append(be.Particles, ParticleExport{
				Angle: pt.Angle, Radius: pt.Radius, Speed: pt.Speed, Size: pt.Size,
			})
		}
		out.Belts = append(out.Belts, be)
	}
	return out
}

// ExportSystem writes the system as JSON into the configured output
// directory and returns the file path.
func ExportSystem(sys *SolarSystem, conf ExportConfig) (string, error) {
	name := conf.Filename
	if name == "" {
		name = "system"
	}
	if conf.Timestamp {
		name += "-" + time.Now().Format(dateFormatFilename)
	}
	path := filepath.Join(genesisConfig().outputDir, name+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	if conf.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(exportSystem(sys)); err != nil {
		f.Close()
		return "", fmt.Errorf("could not encode system: %w", err)
	}
	return path, f.Close()
}
