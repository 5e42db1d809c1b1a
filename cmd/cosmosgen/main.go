package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"cosmos-server/internal/cosmosgen"
	"cosmos-server/internal/shared/config"
)

func main() {
	cfg, err := cosmosgen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("parse flags: %v", err)
	}

	var authCfg config.AuthConfig
	if cfg.MintToken {
		// a missing .env is fine, JWT_SECRET may come from the environment
		_ = godotenv.Load()
		authCfg = config.Load().Auth
	}

	if err := cosmosgen.Run(cfg, authCfg, os.Stdout); err != nil {
		exitf("cosmosgen: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
