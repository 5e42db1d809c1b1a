package star_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmos-server/internal/planet"
	"cosmos-server/internal/spectral"
	"cosmos-server/internal/star"
)

type planetWant struct {
	seed        uint32
	typ         planet.PlanetType
	radiusKm    float64
	gravityG    float64
	moons       int
	distance    float64
	orbitSpeed  float64
	orbitPhase  float64
	temperature float64
	biome       planet.Biome
}

func TestGenerate_Golden(t *testing.T) {
	t.Run("FirstStarOfGalaxy12345", func(t *testing.T) {
		got := star.Generate(star.Params{Seed: 509440680, Index: 0, Parent: star.ParentGalaxy{Size: 119756}})

		assert.Equal(t, "STAR-509440680-0", got.ID)
		assert.Equal(t, spectral.O, got.SpectralClass)
		assert.InDelta(t, 0.6657368205487728, got.Size, 1e-15)
		assert.InDelta(t, 1.3314736410975456, got.Mass, 1e-15)
		assert.InDelta(t, 0.295058229896086, got.Luminosity, 1e-14)
		assert.InDelta(t, 30529.681157077663, got.Position.X, 1e-9)
		assert.InDelta(t, -9970.966505933553, got.Position.Y, 1e-9)
		assert.InDelta(t, 20121.227288582362, got.Position.Z, 1e-9)
		require.Equal(t, 5, got.NumPlanets)
		require.Len(t, got.Planets, 5)

		wants := []planetWant{
			{509440680, planet.PlanetTypeRocky, 1935, 0.49, 3, 28.215144774876535, 0.009413017429064066, 3.2036651703135535, 6260, planet.BiomeCanyon},
			{509440377, planet.PlanetTypeGaseous, 38789, 6.53, 6, 44.21705593355, 0.0075192598406937025, 5.5213102491453245, 2748, planet.BiomeBands},
			{509441290, planet.PlanetTypeRocky, 4009, 0.48, 3, 135.3996185422875, 0.0042969597331340235, 4.391146515552307, 3539, planet.BiomeMountain},
			{509442523, planet.PlanetTypeGaseous, 25076, 4.15, 5, 135.1712321024388, 0.004300588290551856, 5.628871750039293, 2590, planet.BiomeBands},
			{509443564, planet.PlanetTypeRocky, 4325, 0.9, 0, 146.35830173501745, 0.004132961156294397, 3.3663530129723567, 3935, planet.BiomeMountain},
		}
		assertPlanets(t, wants, got.Planets)

		first := got.Planets[0]
		assert.InDelta(t, 0.2664985706331208, first.OrbitEccentricity, 1e-15)
		assert.InDelta(t, -5.3611557791009545, first.OrbitInclination, 1e-14)
		assert.InDelta(t, 0.1264611564576626, first.SelfRotationSpeed, 1e-15)
		assert.InDelta(t, 0.444561654003337, first.SelfTilt, 1e-14)
		assert.Equal(t, []string{planet.TagAncient}, first.Tags)
		assert.Equal(t, planet.AtmosphereThin, got.Planets[2].Atmosphere)
	})

	t.Run("StarSeven", func(t *testing.T) {
		got := star.Generate(star.Params{Seed: 123456789, Index: 7, Parent: star.ParentGalaxy{Size: 50000}})

		assert.Equal(t, spectral.B, got.SpectralClass)
		assert.InDelta(t, 4.383088446222246, got.Size, 1e-15)
		assert.InDelta(t, 84.20554732846819, got.Luminosity, 1e-11)
		assert.InDelta(t, 14266.400714404881, got.Position.X, 1e-9)

		wants := []planetWant{
			{123457152, planet.PlanetTypeHabitable, 10562, 2.24, 3, 43.362009562551975, 0.007593033289063769, 1.8175517282563918, 3965, planet.BiomeContinental},
			{123456849, planet.PlanetTypeVolcanic, 4283, 0.7, 0, 65.85145325865597, 0.00616151233807895, 0.37192425081220093, 2447, planet.BiomeBasalt},
			{123455778, planet.PlanetTypeGaseous, 55235, 11.78, 2, 113.58937189215794, 0.00469138586830605, 1.3614249629857684, 2751, planet.BiomeClouds},
			{123454963, planet.PlanetTypeGaseous, 50778, 9.06, 4, 127.1733748819679, 0.004433757192910373, 1.5794525900830079, 3320, planet.BiomeBands},
			{123453892, planet.PlanetTypeBarren, 8892, 2.72, 0, 143.33358290605247, 0.004176341711990795, 1.3444069627806083, 2665, planet.BiomeCratered},
		}
		assertPlanets(t, wants, got.Planets)

		assert.Equal(t, 0.85, got.Planets[0].Habitability)
		assert.Equal(t, planet.AtmosphereBreathable, got.Planets[0].Atmosphere)
		assert.Equal(t, []string{planet.TagTerraformable}, got.Planets[0].Tags)
		assert.Equal(t, []string{planet.TagUnstable}, got.Planets[1].Tags)
	})
}

func assertPlanets(t *testing.T, wants []planetWant, got []planet.Planet) {
	t.Helper()
	for i, w := range wants {
		p := got[i]
		assert.Equal(t, w.seed, p.Seed, "planet %d seed", i)
		assert.Equal(t, i, p.Index)
		assert.Equal(t, w.typ, p.Type, "planet %d type", i)
		assert.Equal(t, w.radiusKm, p.RadiusKm, "planet %d radius", i)
		assert.Equal(t, w.gravityG, p.GravityG, "planet %d gravity", i)
		assert.Len(t, p.Moons, w.moons, "planet %d moons", i)
		assert.InDelta(t, w.distance, p.Distance, 1e-12, "planet %d distance", i)
		assert.InDelta(t, w.orbitSpeed, p.OrbitSpeed, 1e-15, "planet %d orbit speed", i)
		assert.InDelta(t, w.orbitPhase, p.OrbitPhase, 1e-12, "planet %d orbit phase", i)
		assert.Equal(t, w.temperature, p.Temperature, "planet %d temperature", i)
		assert.Equal(t, w.biome, p.Biome, "planet %d biome", i)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := star.Params{Seed: 99, Index: 4, Parent: star.ParentGalaxy{Size: 80000, Age: 5e9}}
	assert.Equal(t, star.Generate(p), star.Generate(p))
}

func TestGenerate_Invariants(t *testing.T) {
	const size = 60000.0
	for seed := uint32(0); seed < 2000; seed++ {
		st := star.Generate(star.Params{Seed: seed * 2654435761, Index: int(seed % 50), Parent: star.ParentGalaxy{Size: size}})

		require.InDelta(t, math.Pow(st.Size, 3), st.Luminosity, 1e-9)
		require.Equal(t, st.Size*2, st.Mass)
		require.Equal(t, st.Size*20, st.Radius)
		require.GreaterOrEqual(t, st.Size, 0.5)
		require.Less(t, st.Size, 4.5)
		for _, c := range []float64{st.Position.X, st.Position.Y, st.Position.Z} {
			require.GreaterOrEqual(t, c, -size/2)
			require.Less(t, c, size/2)
		}

		require.Equal(t, st.NumPlanets, len(st.Planets))
		minPlanets, maxPlanets := 1, 6
		if st.SpectralClass == spectral.G {
			minPlanets, maxPlanets = 3, 8
		}
		require.GreaterOrEqual(t, st.NumPlanets, minPlanets)
		require.LessOrEqual(t, st.NumPlanets, maxPlanets)

		for i, p := range st.Planets {
			require.Equal(t, star.PlanetSeed(st.Seed, st.Index, i), p.Seed)
			require.LessOrEqual(t, p.OrbitEccentricity, 0.4)
			require.GreaterOrEqual(t, p.OrbitInclination, -7.5)
			require.LessOrEqual(t, p.OrbitInclination, 7.5)
			require.Equal(t, planet.SlotOrbitSpeed(p.Distance), p.OrbitSpeed)
		}
	}
}

func TestGenerate_DefaultParent(t *testing.T) {
	implicit := star.Generate(star.Params{Seed: 7, Index: 1})
	explicit := star.Generate(star.Params{Seed: 7, Index: 1, Parent: star.ParentGalaxy{Size: star.DefaultGalaxySize}})
	assert.Equal(t, explicit, implicit)
}

func TestPlanetAt(t *testing.T) {
	for seed := uint32(1); seed < 300; seed++ {
		p := star.Params{Seed: seed * 7919, Index: int(seed), Parent: star.ParentGalaxy{Size: 120000}}
		full := star.Generate(p)
		for i := range full.Planets {
			got, ok := star.PlanetAt(p, i)
			require.True(t, ok)
			require.Equal(t, full.Planets[i], got, "seed %d planet %d", p.Seed, i)
		}

		_, ok := star.PlanetAt(p, len(full.Planets))
		assert.False(t, ok)
		_, ok = star.PlanetAt(p, -1)
		assert.False(t, ok)
	}
}

func TestSummarize(t *testing.T) {
	st := star.Generate(star.Params{Seed: 509440680, Parent: star.ParentGalaxy{Size: 119756}})
	s := star.Summarize(st)

	assert.Equal(t, st.ID, s.ID)
	assert.Equal(t, st.Seed, s.Seed)
	assert.Equal(t, st.Index, s.Index)
	assert.Equal(t, st.SpectralClass, s.SpectralClass)
	assert.Equal(t, st.Position, s.Position)
	assert.Equal(t, 5, s.NumPlanets)

	reopened := star.Generate(star.Params{Seed: s.Seed, Index: s.Index, Parent: star.ParentGalaxy{Size: 119756}})
	assert.Equal(t, st, reopened)
}
