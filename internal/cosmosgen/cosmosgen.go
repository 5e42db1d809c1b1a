// Package cosmosgen prints generated galaxies and stars, and mints admin tokens, from the
// command line.
package cosmosgen

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"cosmos-server/internal/auth"
	"cosmos-server/internal/galaxy"
	"cosmos-server/internal/prng"
	"cosmos-server/internal/shared/config"
	"cosmos-server/internal/shared/params"
	"cosmos-server/internal/spatial"
	"cosmos-server/internal/star"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	ViewFull    = "full"
	ViewSummary = "summary"
)

type Config struct {
	Seed    string
	X, Y, Z int
	SizeMin float64
	SizeMax float64
	Format  string
	View    string

	StarSeed   string
	StarIndex  int
	GalaxySize float64

	MintToken bool
	Subject   string
}

func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		SizeMin: galaxy.DefaultSizeMin,
		SizeMax: galaxy.DefaultSizeMax,
		Format:  FormatJSON,
		View:    ViewFull,
	}
	fs.StringVar(&cfg.Seed, "seed", "", "universe seed, an integer or any text")
	fs.IntVar(&cfg.X, "x", 0, "galaxy cell x")
	fs.IntVar(&cfg.Y, "y", 0, "galaxy cell y")
	fs.IntVar(&cfg.Z, "z", 0, "galaxy cell z")
	fs.Float64Var(&cfg.SizeMin, "size-min", cfg.SizeMin, "smallest galaxy size")
	fs.Float64Var(&cfg.SizeMax, "size-max", cfg.SizeMax, "largest galaxy size")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: json or yaml")
	fs.StringVar(&cfg.View, "view", cfg.View, "full or summary")
	fs.StringVar(&cfg.StarSeed, "star-seed", "", "print one star tree with this seed instead of a galaxy")
	fs.IntVar(&cfg.StarIndex, "star-index", 0, "index of the star in its galaxy")
	fs.Float64Var(&cfg.GalaxySize, "galaxy-size", 0, "size of the star's galaxy (default 100000)")
	fs.BoolVar(&cfg.MintToken, "mint-token", false, "print an admin token signed with JWT_SECRET")
	fs.StringVar(&cfg.Subject, "subject", "", "subject of the minted token")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the requested document to out. authCfg is only read with MintToken.
func Run(cfg Config, authCfg config.AuthConfig, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.MintToken {
		return mintToken(cfg, authCfg, out)
	}
	if cfg.Format != FormatJSON && cfg.Format != FormatYAML {
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.View != ViewFull && cfg.View != ViewSummary {
		return fmt.Errorf("unknown view %q", cfg.View)
	}

	doc, err := document(cfg)
	if err != nil {
		return err
	}
	return encode(out, cfg.Format, doc)
}

func document(cfg Config) (any, error) {
	if cfg.StarSeed != "" {
		seed, ok := params.ParseSeed(cfg.StarSeed)
		if !ok {
			return nil, errors.New("star-seed must not be blank")
		}
		st := star.Generate(star.Params{
			Seed:   seed,
			Index:  prng.NormalizeIndex(int64(cfg.StarIndex)),
			Parent: star.ParentGalaxy{Size: cfg.GalaxySize},
		})
		if cfg.View == ViewSummary {
			return star.Summarize(st), nil
		}
		return st, nil
	}

	seed, ok := params.ParseSeed(cfg.Seed)
	if !ok {
		return nil, errors.New("seed is required")
	}
	if cfg.SizeMin <= 0 || cfg.SizeMin >= cfg.SizeMax {
		return nil, fmt.Errorf("size-min must be positive and below size-max")
	}

	g := galaxy.Generate(galaxy.Params{
		UniverseSeed: seed,
		Cell:         spatial.Cell{X: cfg.X, Y: cfg.Y, Z: cfg.Z},
		SizeMin:      cfg.SizeMin,
		SizeMax:      cfg.SizeMax,
	})
	if cfg.View == ViewSummary {
		return galaxy.Summarize(g), nil
	}
	return g, nil
}

func encode(out io.Writer, format string, doc any) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func mintToken(cfg Config, authCfg config.AuthConfig, out io.Writer) error {
	if cfg.Subject == "" {
		return errors.New("subject is required to mint a token")
	}
	tokens, err := auth.NewTokens(authCfg)
	if err != nil {
		return err
	}
	token, err := tokens.Generate(cfg.Subject, auth.RoleAdmin)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
