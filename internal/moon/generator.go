package moon

import (
	"fmt"
	"math"

	"cosmos-server/internal/prng"
)

const (
	fallbackMaxRadiusKm = 3000
	hostRadiusShare     = 0.27
	visualKmPerUnit     = 8000
)

// Generate builds the moon described by p. The stream is seeded from p.Seed alone.
func Generate(p Params) Moon {
	local := prng.New(p.Seed)

	kind := prng.Pick(local, Kinds)

	minRadius := minRadiusKm(kind)
	maxRadius := float64(fallbackMaxRadiusKm)
	hostScale := 1.0
	if p.Host != nil && p.Host.RadiusKm > 0 {
		maxRadius = math.Max(minRadius+50, p.Host.RadiusKm*hostRadiusShare)
		hostScale = math.Max(0.5, p.Host.RadiusKm/visualKmPerUnit)
	}
	radiusKm := prng.Round(local.Between(minRadius, maxRadius))

	metalsCap, volatileCap := resourceCaps(kind)
	resources := Resources{
		Metals:   int(prng.Round(local.Float64() * metalsCap)),
		Volatile: int(prng.Round(local.Float64() * volatileCap)),
	}

	distance := hostScale * local.Between(2.5, 8)
	orbitSpeed := local.Between(0.0005, 0.004)
	orbitPhase := local.Float64() * math.Pi * 2

	return Moon{
		ID:         fmt.Sprintf("MOON-%d-%d", p.Seed, p.Index),
		Seed:       p.Seed,
		Index:      p.Index,
		Kind:       kind,
		RadiusKm:   radiusKm,
		Size:       math.Max(0.05, radiusKm/visualKmPerUnit),
		Color:      color(kind),
		Resources:  resources,
		Distance:   distance,
		OrbitSpeed: orbitSpeed,
		OrbitPhase: orbitPhase,
	}
}

func minRadiusKm(kind Kind) float64 {
	switch kind {
	case KindAsteroid:
		return 20
	case KindSmall:
		return 80
	case KindIcy:
		return 250
	case KindRocky:
		return 300
	default:
		return 100
	}
}

func resourceCaps(kind Kind) (metals, volatile float64) {
	switch kind {
	case KindAsteroid:
		return 120, 10
	case KindRocky:
		return 100, 20
	case KindIcy:
		return 30, 80
	case KindSmall:
		return 60, 25
	default:
		return 50, 20
	}
}

func color(kind Kind) string {
	switch kind {
	case KindAsteroid:
		return "#7d7468"
	case KindRocky:
		return "#9a9a9a"
	case KindIcy:
		return "#dfefff"
	case KindSmall:
		return "#b8a890"
	default:
		return "#999999"
	}
}
