package structure

import (
	"fmt"

	"cosmos-server/internal/prng"
)

const streamStride = 1021

// Generate builds the structure described by p. A type hint skips the type draw.
func Generate(p Params) Structure {
	local := prng.New(prng.Offset(p.Seed, p.Index, streamStride))

	var kind Type
	if p.TypeHint != nil {
		kind = *p.TypeHint
	} else {
		kind = prng.Pick(local, Types)
	}

	techLevel := max(0, local.Intn(10))
	intactness := prng.Round2(local.Float64())

	return Structure{
		ID:         fmt.Sprintf("STR-%d-%d", p.Seed, p.Index),
		Type:       kind,
		TechLevel:  techLevel,
		Intactness: intactness,
		Potential:  prng.Round2(float64(techLevel) * intactness),
		Loot:       Loot(kind),
	}
}

// Loot returns the loot categories of a structure type.
func Loot(t Type) []string {
	switch t {
	case TypeStation:
		return []string{"supplies", "trade_goods", "blueprints"}
	case TypeRuins:
		return []string{"artifacts", "data_shards", "unknown_tech"}
	case TypeBeacon:
		return []string{"navigation_data", "signal_logs"}
	case TypeDerelict:
		return []string{"ship_parts", "salvage_metal"}
	case TypeMiningOutpost:
		return []string{"ore", "machinery"}
	case TypeResearchFacility:
		return []string{"research_notes", "experimental_cores"}
	default:
		return []string{}
	}
}
