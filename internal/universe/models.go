package universe

import (
	"time"
)

// MaxSize caps the galaxy size range of a registered universe.
const MaxSize = 10_000_000

// Record is one registered universe. Everything it generates follows from Seed and the
// size range.
type Record struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Seed        uint32    `json:"seed"`
	SizeMin     float64   `json:"size_min"`
	SizeMax     float64   `json:"size_max"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Record) Config() Config {
	return Config{Seed: r.Seed, SizeMin: r.SizeMin, SizeMax: r.SizeMax}
}

type CreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Seed        *int64   `json:"seed,omitempty"`
	SizeMin     *float64 `json:"size_min,omitempty"`
	SizeMax     *float64 `json:"size_max,omitempty"`
}

type AmbientColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func NewAmbientColor(rgb [3]uint8) AmbientColor {
	return AmbientColor{R: rgb[0], G: rgb[1], B: rgb[2]}
}
