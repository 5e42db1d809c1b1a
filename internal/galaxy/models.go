package galaxy

import (
	"cosmos-server/internal/phenomenon"
	"cosmos-server/internal/spatial"
	"cosmos-server/internal/spectral"
	"cosmos-server/internal/star"
	"cosmos-server/internal/structure"
)

const (
	DefaultSizeMin = 40000
	DefaultSizeMax = 300000
)

type Type string

const (
	TypeSpiral     Type = "spiral"
	TypeBarred     Type = "barred"
	TypeElliptical Type = "elliptical"
	TypeIrregular  Type = "irregular"
	TypeDwarf      Type = "dwarf"
)

// Types is the draw order of galaxy types.
var Types = []Type{TypeSpiral, TypeBarred, TypeElliptical, TypeIrregular, TypeDwarf}

type Galaxy struct {
	ID               string                  `json:"id" yaml:"id"`
	Seed             uint32                  `json:"seed" yaml:"seed"`
	Type             Type                    `json:"type" yaml:"type"`
	Size             float64                 `json:"size" yaml:"size"`
	Age              float64                 `json:"age" yaml:"age"`
	NumSystems       int                     `json:"num_systems" yaml:"num_systems"`
	DominantSpectral spectral.Class          `json:"dominant_spectral" yaml:"dominant_spectral"`
	Cell             spatial.Cell            `json:"position_cell" yaml:"position_cell"`
	Stars            []star.Star             `json:"stars" yaml:"stars"`
	Phenomena        []phenomenon.Phenomenon `json:"phenomena" yaml:"phenomena"`
	Structures       []structure.Structure   `json:"structures" yaml:"structures"`
}

// Clone returns a deep copy of g. Mutating the copy leaves g untouched.
func (g Galaxy) Clone() Galaxy {
	g.Stars = cloneAll(g.Stars, star.Star.Clone)
	g.Phenomena = cloneAll(g.Phenomena, phenomenon.Phenomenon.Clone)
	g.Structures = cloneAll(g.Structures, structure.Structure.Clone)
	return g
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}

// Summary is a galaxy whose stars carry no planets.
type Summary struct {
	ID               string                  `json:"id" yaml:"id"`
	Seed             uint32                  `json:"seed" yaml:"seed"`
	Type             Type                    `json:"type" yaml:"type"`
	Size             float64                 `json:"size" yaml:"size"`
	Age              float64                 `json:"age" yaml:"age"`
	NumSystems       int                     `json:"num_systems" yaml:"num_systems"`
	DominantSpectral spectral.Class          `json:"dominant_spectral" yaml:"dominant_spectral"`
	Cell             spatial.Cell            `json:"position_cell" yaml:"position_cell"`
	Stars            []star.Summary          `json:"stars" yaml:"stars"`
	Phenomena        []phenomenon.Phenomenon `json:"phenomena" yaml:"phenomena"`
	Structures       []structure.Structure   `json:"structures" yaml:"structures"`
}

// Params selects one galaxy. A zero SizeMin or SizeMax stands for its default, so a
// minimum size of exactly zero cannot be requested.
type Params struct {
	UniverseSeed uint32
	Cell         spatial.Cell
	SizeMin      float64
	SizeMax      float64
}

func (p Params) resolve() Params {
	if p.SizeMin == 0 {
		p.SizeMin = DefaultSizeMin
	}
	if p.SizeMax == 0 {
		p.SizeMax = DefaultSizeMax
	}
	return p
}
