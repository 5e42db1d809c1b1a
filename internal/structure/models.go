package structure

import (
	"fmt"
	"slices"
)

type Type string

const (
	TypeStation          Type = "station"
	TypeRuins            Type = "ruins"
	TypeBeacon           Type = "beacon"
	TypeDerelict         Type = "derelict"
	TypeMiningOutpost    Type = "mining_outpost"
	TypeResearchFacility Type = "research_facility"
)

// Types is the draw order of structure types.
var Types = []Type{
	TypeStation,
	TypeRuins,
	TypeBeacon,
	TypeDerelict,
	TypeMiningOutpost,
	TypeResearchFacility,
}

// ParseType accepts the wire name of a structure type.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown structure type %q", s)
}

type Structure struct {
	ID         string   `json:"id" yaml:"id"`
	Type       Type     `json:"type" yaml:"type"`
	TechLevel  int      `json:"tech_level" yaml:"tech_level"`
	Intactness float64  `json:"intactness" yaml:"intactness"`
	Potential  float64  `json:"potential" yaml:"potential"`
	Loot       []string `json:"loot" yaml:"loot"`
}

// Clone returns a copy that shares no slices with s.
func (s Structure) Clone() Structure {
	s.Loot = slices.Clone(s.Loot)
	return s
}

type Params struct {
	Seed     uint32
	Index    int
	TypeHint *Type
}
