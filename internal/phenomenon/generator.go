package phenomenon

import (
	"fmt"
	"math"

	"cosmos-server/internal/prng"
)

const (
	streamStride     = 719
	fallbackRadiusLy = 1000
	galaxyShare      = 0.02
)

// Generate builds the phenomenon described by p.
func Generate(p Params) Phenomenon {
	local := prng.New(prng.Offset(p.Seed, p.Index, streamStride))

	kind := prng.Pick(local, Types)
	intensity := prng.Round2(local.Between(0.1, 1.0))

	upper := float64(fallbackRadiusLy)
	if p.Parent != nil && p.Parent.Size > 0 {
		upper = math.Max(1, p.Parent.Size*galaxyShare)
	}
	radiusLy := prng.Round(local.Between(1, upper))

	return Phenomenon{
		ID:        fmt.Sprintf("PH-%d-%d", p.Seed, p.Index),
		Type:      kind,
		Intensity: intensity,
		RadiusLy:  radiusLy,
		Effects:   Effects(kind),
	}
}

// Effects returns a fresh copy of the gameplay knobs of a phenomenon type.
func Effects(t Type) map[string]float64 {
	switch t {
	case TypeNebula:
		return map[string]float64{"visibility": 0.7, "navigationPenalty": 0.2}
	case TypeBlackHole:
		return map[string]float64{"danger": 0.95, "warpRisk": 0.9}
	case TypePulsar:
		return map[string]float64{"radiation": 0.8}
	case TypeAnomaly:
		return map[string]float64{"mystery": 1.0, "commsDistortion": 0.6}
	case TypeSupernovaRemnant:
		return map[string]float64{"radiation": 0.7, "salvage": 0.5}
	case TypeGravitationalLens:
		return map[string]float64{"timeDilation": 0.3}
	default:
		return map[string]float64{}
	}
}
