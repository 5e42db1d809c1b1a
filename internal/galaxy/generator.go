package galaxy

import (
	"fmt"
	"math"

	"cosmos-server/internal/phenomenon"
	"cosmos-server/internal/prng"
	"cosmos-server/internal/spectral"
	"cosmos-server/internal/star"
	"cosmos-server/internal/structure"
)

const (
	featureStreamSalt   = 0x9e3779b9
	phenomenonSeedPrime = 7919
	structureSeedPrime  = 104729
)

// CombinedSeed is the seed of the galaxy at cell in the universe with root seed.
func CombinedSeed(p Params) uint32 {
	return prng.Mix(p.UniverseSeed, p.Cell.X, p.Cell.Y, p.Cell.Z)
}

// Generate builds the galaxy for p.Cell. Stars come from the galaxy stream; phenomena and
// structures from a separate feature stream, so adding features never moves a star.
func Generate(p Params) Galaxy {
	p = p.resolve()
	combined := CombinedSeed(p)
	local := prng.New(combined)

	galaxyType := prng.Pick(local, Types)
	size := prng.Round(local.Between(p.SizeMin, p.SizeMax))
	age := prng.Round(local.Between(2e9, 13.5e9))
	numSystems := int(math.Max(20, math.Floor(size/1000*local.Between(0.2, 1.2))))

	parent := star.ParentGalaxy{Size: size, Age: age}
	stars := make([]star.Star, 0, numSystems)
	for i := 0; i < numSystems; i++ {
		seed := uint32(math.Floor(local.Float64()*1e9)) ^ combined ^ uint32(i)
		stars = append(stars, star.Generate(star.Params{Seed: seed, Index: i, Parent: parent}))
	}

	features := prng.New(prng.Derive(combined, 1, featureStreamSalt))
	numPhenomena := 1 + features.Intn(4)
	numStructures := features.Intn(6)

	phenomena := make([]phenomenon.Phenomenon, 0, numPhenomena)
	for j := 0; j < numPhenomena; j++ {
		phenomena = append(phenomena, phenomenon.Generate(phenomenon.Params{
			Seed:   prng.Derive(combined, j, phenomenonSeedPrime),
			Index:  j,
			Parent: &phenomenon.ParentGalaxy{Size: size},
		}))
	}

	structures := make([]structure.Structure, 0, numStructures)
	for k := 0; k < numStructures; k++ {
		structures = append(structures, structure.Generate(structure.Params{
			Seed:  prng.Derive(combined, k, structureSeedPrime),
			Index: k,
		}))
	}

	return Galaxy{
		ID:               fmt.Sprintf("GAL-%d-%d-%d-%d", combined, p.Cell.X, p.Cell.Y, p.Cell.Z),
		Seed:             combined,
		Type:             galaxyType,
		Size:             size,
		Age:              age,
		NumSystems:       len(stars),
		DominantSpectral: DominantClass(stars),
		Cell:             p.Cell,
		Stars:            stars,
		Phenomena:        phenomena,
		Structures:       structures,
	}
}

// DominantClass is the most frequent spectral class among stars.
func DominantClass(stars []star.Star) spectral.Class {
	counts := make(map[spectral.Class]int, len(spectral.Classes))
	for _, st := range stars {
		counts[st.SpectralClass]++
	}
	return spectral.Dominant(counts)
}

func Summarize(g Galaxy) Summary {
	stars := make([]star.Summary, 0, len(g.Stars))
	for _, st := range g.Stars {
		stars = append(stars, star.Summarize(st))
	}
	return Summary{
		ID:               g.ID,
		Seed:             g.Seed,
		Type:             g.Type,
		Size:             g.Size,
		Age:              g.Age,
		NumSystems:       g.NumSystems,
		DominantSpectral: g.DominantSpectral,
		Cell:             g.Cell,
		Stars:            stars,
		Phenomena:        g.Phenomena,
		Structures:       g.Structures,
	}
}
