package star

import (
	"fmt"
	"math"

	"cosmos-server/internal/planet"
	"cosmos-server/internal/prng"
	"cosmos-server/internal/spectral"
)

const (
	planetIndexStride = 131
	planetSlotStride  = 977
)

// header holds everything the star draws before its planet loop.
type header struct {
	class      spectral.Class
	size       float64
	luminosity float64
	mass       float64
	position   Position
	numPlanets int
}

func drawHeader(s *prng.Stream, galaxySize float64) header {
	class := prng.Pick(s, spectral.Classes)
	size := math.Max(0.5, s.Float64()*4+0.5)
	h := header{
		class:      class,
		size:       size,
		luminosity: size * size * size,
		mass:       size * 2,
	}
	h.position = Position{
		X: (s.Float64() - 0.5) * galaxySize,
		Y: (s.Float64() - 0.5) * galaxySize,
		Z: (s.Float64() - 0.5) * galaxySize,
	}
	extra := 1
	if class == spectral.G {
		extra = 3
	}
	h.numPlanets = s.Intn(6) + extra
	return h
}

func (h header) host() *planet.HostStar {
	return &planet.HostStar{SpectralClass: h.class, Mass: h.mass, Luminosity: h.luminosity}
}

// drawSlot consumes the five star draws that belong to planet i.
func drawSlot(s *prng.Stream, i int) *planet.OrbitalSlot {
	slot := &planet.OrbitalSlot{}
	slot.Distance = float64(i+1) * (20 + s.Float64()*30)
	slot.Eccentricity = math.Min(0.4, s.Float64()*0.3)
	slot.Inclination = (s.Float64() - 0.5) * 15
	slot.SelfRotationSpeed = 0.1 + s.Float64()*0.3
	slot.SelfTilt = (s.Float64() - 0.5) * 45
	return slot
}

// PlanetSeed is the seed of planet i of the star (seed, index).
func PlanetSeed(seed uint32, index, i int) uint32 {
	return seed ^ uint32(index*planetIndexStride) ^ uint32(i*planetSlotStride)
}

func Generate(p Params) Star {
	p = p.resolve()
	s := prng.New(p.Seed)
	h := drawHeader(s, p.Parent.Size)

	planets := make([]planet.Planet, 0, h.numPlanets)
	host := h.host()
	for i := 0; i < h.numPlanets; i++ {
		planets = append(planets, planet.Generate(planet.Params{
			Seed:  PlanetSeed(p.Seed, p.Index, i),
			Index: i,
			Host:  host,
			Slot:  drawSlot(s, i),
		}))
	}

	id := fmt.Sprintf("STAR-%d-%d", p.Seed, p.Index)
	return Star{
		ID:            id,
		Name:          id,
		Seed:          p.Seed,
		Index:         p.Index,
		SpectralClass: h.class,
		Mass:          h.mass,
		Luminosity:    h.luminosity,
		Radius:        h.size * 20,
		Size:          h.size,
		Position:      h.position,
		NumPlanets:    len(planets),
		Planets:       planets,
	}
}

// PlanetAt regenerates planet i of the star without generating its siblings. It
// returns false when the star has no planet i.
func PlanetAt(p Params, i int) (planet.Planet, bool) {
	p = p.resolve()
	s := prng.New(p.Seed)
	h := drawHeader(s, p.Parent.Size)
	if i < 0 || i >= h.numPlanets {
		return planet.Planet{}, false
	}

	var slot *planet.OrbitalSlot
	for j := 0; j <= i; j++ {
		slot = drawSlot(s, j)
	}
	return planet.Generate(planet.Params{
		Seed:  PlanetSeed(p.Seed, p.Index, i),
		Index: i,
		Host:  h.host(),
		Slot:  slot,
	}), true
}

// Summarize drops the planets of st.
func Summarize(st Star) Summary {
	return Summary{
		ID:            st.ID,
		Seed:          st.Seed,
		Index:         st.Index,
		SpectralClass: st.SpectralClass,
		Size:          st.Size,
		Position:      st.Position,
		NumPlanets:    st.NumPlanets,
	}
}
