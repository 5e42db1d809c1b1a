package phenomenon

import "maps"

type Type string

const (
	TypeNebula            Type = "nebula"
	TypeBlackHole         Type = "black_hole"
	TypePulsar            Type = "pulsar"
	TypeAnomaly           Type = "anomaly"
	TypeSupernovaRemnant  Type = "supernova_remnant"
	TypeGravitationalLens Type = "gravitational_lens"
)

// Types is the draw order of phenomenon types.
var Types = []Type{
	TypeNebula,
	TypeBlackHole,
	TypePulsar,
	TypeAnomaly,
	TypeSupernovaRemnant,
	TypeGravitationalLens,
}

type Phenomenon struct {
	ID        string             `json:"id" yaml:"id"`
	Type      Type               `json:"type" yaml:"type"`
	Intensity float64            `json:"intensity" yaml:"intensity"`
	RadiusLy  float64            `json:"radius_ly" yaml:"radius_ly"`
	Effects   map[string]float64 `json:"effects" yaml:"effects"`
}

func (p Phenomenon) Clone() Phenomenon {
	p.Effects = maps.Clone(p.Effects)
	return p
}

// ParentGalaxy scales the phenomenon radius. A zero size counts as absent.
type ParentGalaxy struct {
	Size float64
}

type Params struct {
	Seed   uint32
	Index  int
	Parent *ParentGalaxy
}
