package moon

type Kind string

const (
	KindAsteroid Kind = "asteroid"
	KindRocky    Kind = "rocky"
	KindIcy      Kind = "icy"
	KindSmall    Kind = "small"
)

// Kinds is the draw order of moon kinds.
var Kinds = []Kind{KindAsteroid, KindRocky, KindIcy, KindSmall}

type Resources struct {
	Metals   int `json:"metals" yaml:"metals"`
	Volatile int `json:"volatile" yaml:"volatile"`
}

type Moon struct {
	ID         string    `json:"id" yaml:"id"`
	Seed       uint32    `json:"seed" yaml:"seed"`
	Index      int       `json:"index" yaml:"index"`
	Kind       Kind      `json:"kind" yaml:"kind"`
	RadiusKm   float64   `json:"radius_km" yaml:"radius_km"`
	Size       float64   `json:"size" yaml:"size"`
	Color      string    `json:"color" yaml:"color"`
	Resources  Resources `json:"resources" yaml:"resources"`
	Distance   float64   `json:"distance" yaml:"distance"`
	OrbitSpeed float64   `json:"orbit_speed" yaml:"orbit_speed"`
	OrbitPhase float64   `json:"orbit_phase" yaml:"orbit_phase"`
}

// Host is the planet a moon orbits.
type Host struct {
	RadiusKm float64
}

type Params struct {
	Seed  uint32
	Index int
	Host  *Host
}
