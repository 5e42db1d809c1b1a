package planet

import (
	"fmt"
	"math"

	"cosmos-server/internal/moon"
	"cosmos-server/internal/prng"
	"cosmos-server/internal/spectral"
	"cosmos-server/internal/structure"
)

const (
	streamStride       = 911
	moonSeedStride     = 0x27d4eb2d
	structureSeedSalt  = 0x85ebca6b
	earthRadiusKm      = 6371
	visualKmPerUnit    = 8000
	referenceStarTempK = 5800
)

// Generate builds the planet described by p. Every draw comes from one local stream
// in a fixed order; reordering them changes every planet in the universe.
func Generate(p Params) Planet {
	local := prng.New(prng.Offset(p.Seed, p.Index, streamStride))

	var class spectral.Class
	if p.Host != nil {
		class = p.Host.SpectralClass
	}

	planetType := prng.Pick(local, PlanetTypes)
	if class.Cool() && local.Float64() > 0.6 {
		planetType = PlanetTypeHabitable
	}
	gaseous := planetType == PlanetTypeGaseous

	minRadius, maxRadius := 1500.0, 12000.0
	if gaseous {
		minRadius, maxRadius = 25000, 70000
	}
	radiusKm := prng.Round(local.Between(minRadius, maxRadius))
	gravityG := math.Max(0.05, radiusKm/earthRadiusKm*local.Between(0.4, 2.0))

	atmosphereChance := local.Float64()
	atmosphere := AtmosphereNone
	switch {
	case planetType == PlanetTypeHabitable:
		atmosphere = prng.Pick(local, []Atmosphere{AtmosphereThin, AtmosphereBreathable, AtmosphereDense})
	case atmosphereChance > 0.85:
		atmosphere = prng.Pick(local, []Atmosphere{AtmosphereThin, AtmosphereToxic, AtmosphereThin})
	}

	gasCap, exoticCap := 60.0, 8.0
	if gaseous {
		gasCap = 500
	}
	if planetType == PlanetTypeVolcanic {
		exoticCap = 40
	}
	resources := Resources{
		Metals: int(prng.Round(local.Float64() * 100)),
		Gas:    int(prng.Round(local.Float64() * gasCap)),
		Exotic: int(prng.Round(local.Float64() * exoticCap)),
	}

	habitability := habitabilityScore(planetType, atmosphere, class)

	moonCap := 4.0
	if gaseous {
		moonCap = 10
	}
	numMoons := int(local.Float64() * moonCap)
	moons := make([]moon.Moon, 0, numMoons)
	for m := 0; m < numMoons; m++ {
		moons = append(moons, moon.Generate(moon.Params{
			Seed:  prng.Derive(p.Seed, m+1, moonSeedStride),
			Index: m,
			Host:  &moon.Host{RadiusKm: radiusKm},
		}))
	}

	minDistance, maxDistance := 30.0, 400.0
	if planetType == PlanetTypeHabitable {
		minDistance = 100
	}
	if gaseous {
		maxDistance = 800
	}
	distance := local.Between(minDistance, maxDistance)
	orbitSpeed := local.Between(0.00002, 0.00012)
	orbitPhase := local.Float64() * math.Pi * 2
	orbitEccentricity := local.Between(0, 0.4)
	orbitInclination := local.Between(0, math.Pi/8)

	selfRotationSpeed := local.Between(0.0005, 0.01)
	selfTilt := local.Between(0, math.Pi/5)

	// temperature uses the planet's own distance even when a slot replaces it below
	distanceFactor := 1 / math.Sqrt(distance/100)
	temperature := prng.Round(referenceStarTempK * temperatureFactor(class) * distanceFactor * local.Between(0.7, 1.3))

	biome := prng.Pick(local, biomeCandidates(planetType))

	structures := []structure.Structure{}
	if habitability > 0.5 && local.Float64() > 0.8 {
		station := structure.TypeStation
		structures = append(structures, structure.Generate(structure.Params{
			Seed:     p.Seed ^ structureSeedSalt,
			Index:    p.Index,
			TypeHint: &station,
		}))
	}

	tags := []string{}
	if habitability > 0.7 {
		tags = append(tags, TagTerraformable)
	}
	if planetType == PlanetTypeVolcanic {
		tags = append(tags, TagUnstable)
	}
	if local.Float64() > 0.9 {
		tags = append(tags, TagAncient)
	}

	if p.Slot != nil {
		distance = p.Slot.Distance
		orbitEccentricity = p.Slot.Eccentricity
		orbitInclination = p.Slot.Inclination
		orbitSpeed = SlotOrbitSpeed(p.Slot.Distance)
		selfRotationSpeed = p.Slot.SelfRotationSpeed
		selfTilt = p.Slot.SelfTilt
	}

	return Planet{
		ID:                fmt.Sprintf("PL-%d-%d", p.Seed, p.Index),
		Seed:              p.Seed,
		Index:             p.Index,
		Name:              fmt.Sprintf("Planet-%d", p.Index+1),
		Type:              planetType,
		Size:              math.Max(0.5, radiusKm/visualKmPerUnit),
		Color:             color(planetType),
		RadiusKm:          radiusKm,
		GravityG:          prng.Round2(gravityG),
		Atmosphere:        atmosphere,
		Biome:             biome,
		Resources:         resources,
		Habitability:      habitability,
		Temperature:       temperature,
		Distance:          distance,
		OrbitSpeed:        orbitSpeed,
		OrbitPhase:        orbitPhase,
		OrbitEccentricity: orbitEccentricity,
		OrbitInclination:  orbitInclination,
		SelfRotationSpeed: selfRotationSpeed,
		SelfTilt:          selfTilt,
		Moons:             moons,
		Structures:        structures,
		Tags:              tags,
	}
}

// SlotOrbitSpeed is the angular speed of a slotted orbit: farther is slower.
func SlotOrbitSpeed(distance float64) float64 {
	return math.Max(0.001, 0.05/math.Sqrt(distance))
}

func habitabilityScore(t PlanetType, atmosphere Atmosphere, class spectral.Class) float64 {
	score := 0.0
	if t == PlanetTypeHabitable {
		score += 0.6
	}
	if atmosphere == AtmosphereBreathable {
		score += 0.25
	}
	switch class {
	case spectral.G:
		score += 0.1
	case spectral.M:
		score += 0.02
	}
	return math.Min(1, prng.Round2(score))
}

func temperatureFactor(class spectral.Class) float64 {
	switch class {
	case spectral.M:
		return 0.5
	case spectral.K:
		return 0.8
	case spectral.F:
		return 1.2
	default:
		return 1
	}
}

func color(t PlanetType) string {
	switch t {
	case PlanetTypeRocky:
		return "#a0704b"
	case PlanetTypeGaseous:
		return "#d6c682"
	case PlanetTypeIcy:
		return "#c9e8ff"
	case PlanetTypeVolcanic:
		return "#ff6b3d"
	case PlanetTypeHabitable:
		return "#4fa05f"
	case PlanetTypeBarren:
		return "#888888"
	default:
		return "#aaaaaa"
	}
}

func biomeCandidates(t PlanetType) []Biome {
	switch t {
	case PlanetTypeRocky:
		return []Biome{BiomeMountain, BiomeDesert, BiomeCanyon}
	case PlanetTypeGaseous:
		return []Biome{BiomeStorm, BiomeBands, BiomeClouds}
	case PlanetTypeIcy:
		return []Biome{BiomeIce, BiomeSnow, BiomeGlacier}
	case PlanetTypeVolcanic:
		return []Biome{BiomeLava, BiomeAsh, BiomeBasalt}
	case PlanetTypeHabitable:
		return []Biome{BiomeForest, BiomeOceanic, BiomeContinental}
	default:
		return []Biome{BiomeDust, BiomeCratered, BiomeWasteland}
	}
}
