// Package params reads path and query values of API requests. Seeds and indexes follow
// the permissive policy: negatives fold to their absolute value and textual seeds are
// hashed, so any identifier a client holds addresses something.
package params

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"cosmos-server/internal/prng"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/spatial"
)

// Seed reads path value name as a seed.
func Seed(r *http.Request, name string) (uint32, error) {
	seed, ok := ParseSeed(r.PathValue(name))
	if !ok {
		return 0, errors.Validationf("%s is required", name)
	}
	return seed, nil
}

// ParseSeed normalizes integers and hashes anything else. Blank input is rejected.
func ParseSeed(raw string) (uint32, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return prng.NormalizeSeed(v), true
	}
	return prng.HashString(raw), true
}

// Index reads path value name as a child index.
func Index(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errors.WrapValidation("invalid "+name+" format", err)
	}
	return prng.NormalizeIndex(v), nil
}

// ID reads a positive registry id.
func ID(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, errors.Validationf("%s is required", name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapValidation("invalid "+name+" format", err)
	}
	if id <= 0 {
		return 0, errors.Validationf("%s must be positive", name)
	}
	return id, nil
}

// Cell reads the x, y and z path values.
func Cell(r *http.Request) (spatial.Cell, error) {
	var coords [3]int
	for i, name := range []string{"x", "y", "z"} {
		v, err := strconv.ParseInt(r.PathValue(name), 10, 32)
		if err != nil {
			return spatial.Cell{}, errors.WrapValidation("invalid "+name+" coordinate", err)
		}
		coords[i] = int(v)
	}
	return spatial.Cell{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// QueryFloat returns fallback when key is absent. Present values must be finite.
func QueryFloat(r *http.Request, key string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Validationf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func QueryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapValidation("invalid "+key, err)
	}
	return v, nil
}
