package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmos-server/internal/spectral"
)

func TestParse(t *testing.T) {
	for _, c := range spectral.Classes {
		got, err := spectral.Parse(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := spectral.Parse("Q")
	assert.Error(t, err)
}

func TestCool(t *testing.T) {
	cool := map[spectral.Class]bool{spectral.G: true, spectral.K: true, spectral.M: true}
	for _, c := range spectral.Classes {
		assert.Equal(t, cool[c], c.Cool(), "class %s", c)
	}
}

func TestDominant(t *testing.T) {
	cases := []struct {
		name   string
		counts map[spectral.Class]int
		want   spectral.Class
	}{
		{"Empty", map[spectral.Class]int{}, spectral.G},
		{"MajorityM", map[spectral.Class]int{spectral.M: 40, spectral.G: 3, spectral.O: 1}, spectral.M},
		{"TieEarlierWins", map[spectral.Class]int{spectral.O: 11, spectral.G: 11, spectral.M: 7}, spectral.O},
		{"TieKM", map[spectral.Class]int{spectral.K: 5, spectral.M: 5}, spectral.K},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, spectral.Dominant(tc.counts))
		})
	}
}

func TestRGB_UnknownFallsBackToG(t *testing.T) {
	assert.Equal(t, spectral.G.RGB(), spectral.Class("X").RGB())
}
