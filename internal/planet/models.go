package planet

import (
	"slices"

	"cosmos-server/internal/moon"
	"cosmos-server/internal/spectral"
	"cosmos-server/internal/structure"
)

type PlanetType string

const (
	PlanetTypeRocky     PlanetType = "rocky"
	PlanetTypeGaseous   PlanetType = "gaseous"
	PlanetTypeIcy       PlanetType = "icy"
	PlanetTypeVolcanic  PlanetType = "volcanic"
	PlanetTypeHabitable PlanetType = "habitable"
	PlanetTypeBarren    PlanetType = "barren"
)

// PlanetTypes is the draw order of planet types.
var PlanetTypes = []PlanetType{
	PlanetTypeRocky,
	PlanetTypeGaseous,
	PlanetTypeIcy,
	PlanetTypeVolcanic,
	PlanetTypeHabitable,
	PlanetTypeBarren,
}

type Atmosphere string

const (
	AtmosphereNone       Atmosphere = "none"
	AtmosphereThin       Atmosphere = "thin"
	AtmosphereBreathable Atmosphere = "breathable"
	AtmosphereToxic      Atmosphere = "toxic"
	AtmosphereDense      Atmosphere = "dense"
)

type Biome string

const (
	BiomeMountain    Biome = "mountain"
	BiomeDesert      Biome = "desert"
	BiomeCanyon      Biome = "canyon"
	BiomeStorm       Biome = "storm"
	BiomeBands       Biome = "bands"
	BiomeClouds      Biome = "clouds"
	BiomeIce         Biome = "ice"
	BiomeSnow        Biome = "snow"
	BiomeGlacier     Biome = "glacier"
	BiomeLava        Biome = "lava"
	BiomeAsh         Biome = "ash"
	BiomeBasalt      Biome = "basalt"
	BiomeForest      Biome = "forest"
	BiomeOceanic     Biome = "oceanic"
	BiomeContinental Biome = "continental"
	BiomeDust        Biome = "dust"
	BiomeCratered    Biome = "cratered"
	BiomeWasteland   Biome = "wasteland"
)

const (
	TagTerraformable = "terraformable"
	TagUnstable      = "unstable"
	TagAncient       = "ancient"
)

type Resources struct {
	Metals int `json:"metals" yaml:"metals"`
	Gas    int `json:"gas" yaml:"gas"`
	Exotic int `json:"exotic" yaml:"exotic"`
}

type Planet struct {
	ID                string                `json:"id" yaml:"id"`
	Seed              uint32                `json:"seed" yaml:"seed"`
	Index             int                   `json:"index" yaml:"index"`
	Name              string                `json:"name" yaml:"name"`
	Type              PlanetType            `json:"type" yaml:"type"`
	Size              float64               `json:"size" yaml:"size"`
	Color             string                `json:"color" yaml:"color"`
	RadiusKm          float64               `json:"radius_km" yaml:"radius_km"`
	GravityG          float64               `json:"gravity_g" yaml:"gravity_g"`
	Atmosphere        Atmosphere            `json:"atmosphere" yaml:"atmosphere"`
	Biome             Biome                 `json:"biome" yaml:"biome"`
	Resources         Resources             `json:"resources" yaml:"resources"`
	Habitability      float64               `json:"habitability" yaml:"habitability"`
	Temperature       float64               `json:"temperature" yaml:"temperature"`
	Distance          float64               `json:"distance" yaml:"distance"`
	OrbitSpeed        float64               `json:"orbit_speed" yaml:"orbit_speed"`
	OrbitPhase        float64               `json:"orbit_phase" yaml:"orbit_phase"`
	OrbitEccentricity float64               `json:"orbit_eccentricity" yaml:"orbit_eccentricity"`
	OrbitInclination  float64               `json:"orbit_inclination" yaml:"orbit_inclination"`
	SelfRotationSpeed float64               `json:"self_rotation_speed" yaml:"self_rotation_speed"`
	SelfTilt          float64               `json:"self_tilt" yaml:"self_tilt"`
	Moons             []moon.Moon           `json:"moons" yaml:"moons"`
	Structures        []structure.Structure `json:"structures" yaml:"structures"`
	Tags              []string              `json:"tags" yaml:"tags"`
}

// Clone returns a deep copy of p.
func (p Planet) Clone() Planet {
	p.Moons = slices.Clone(p.Moons)
	p.Tags = slices.Clone(p.Tags)
	if p.Structures != nil {
		structures := make([]structure.Structure, len(p.Structures))
		for i, s := range p.Structures {
			structures[i] = s.Clone()
		}
		p.Structures = structures
	}
	return p
}

// HostStar is the star context a planet is generated under.
type HostStar struct {
	SpectralClass spectral.Class
	Mass          float64
	Luminosity    float64
}

// OrbitalSlot carries the orbit a star assigns to one of its planets. When present it
// replaces the planet's own orbital draws, except the orbit phase.
type OrbitalSlot struct {
	Distance          float64
	Eccentricity      float64
	Inclination       float64
	SelfRotationSpeed float64
	SelfTilt          float64
}

type Params struct {
	Seed  uint32
	Index int
	Host  *HostStar
	Slot  *OrbitalSlot
}
