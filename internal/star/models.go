package star

import (
	"cosmos-server/internal/planet"
	"cosmos-server/internal/spectral"
)

// DefaultGalaxySize is the cube side used when a star is regenerated without its galaxy.
const DefaultGalaxySize = 100000

type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

type Star struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Seed          uint32          `json:"seed" yaml:"seed"`
	Index         int             `json:"index" yaml:"index"`
	SpectralClass spectral.Class  `json:"spectral_class" yaml:"spectral_class"`
	Mass          float64         `json:"mass" yaml:"mass"`
	Luminosity    float64         `json:"luminosity" yaml:"luminosity"`
	Radius        float64         `json:"radius" yaml:"radius"`
	Size          float64         `json:"size" yaml:"size"`
	Position      Position        `json:"position" yaml:"position"`
	NumPlanets    int             `json:"num_planets" yaml:"num_planets"`
	Planets       []planet.Planet `json:"planets" yaml:"planets"`
}

func (s Star) Clone() Star {
	if s.Planets != nil {
		planets := make([]planet.Planet, len(s.Planets))
		for i, p := range s.Planets {
			planets[i] = p.Clone()
		}
		s.Planets = planets
	}
	return s
}

// Summary is a star without its planets. Regenerate the full star from Seed and Index.
type Summary struct {
	ID            string         `json:"id" yaml:"id"`
	Seed          uint32         `json:"seed" yaml:"seed"`
	Index         int            `json:"index" yaml:"index"`
	SpectralClass spectral.Class `json:"spectral_class" yaml:"spectral_class"`
	Size          float64        `json:"size" yaml:"size"`
	Position      Position       `json:"position" yaml:"position"`
	NumPlanets    int            `json:"num_planets" yaml:"num_planets"`
}

type ParentGalaxy struct {
	Size float64
	Age  float64
}

type Params struct {
	Seed   uint32
	Index  int
	Parent ParentGalaxy
}

func (p Params) resolve() Params {
	if p.Parent.Size <= 0 {
		p.Parent.Size = DefaultGalaxySize
	}
	return p
}
