// Package config resolves environment defaults for the CLI. A .env
// file in the working directory is honored when present; explicit
// flags always win over these values.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds the environment-sourced defaults.
type Env struct {
	Column     string
	ErrorToken string
	Out        string
	Verbose    bool
}

// Load reads the process environment, after merging an optional .env
// file. Unset variables fall back to the given defaults.
func Load(defaultColumn, defaultErrorToken string) Env {
	_ = godotenv.Load()

	return Env{
		Column:     getEnv("TRIGRAPH_COLUMN", defaultColumn),
		ErrorToken: getEnv("TRIGRAPH_ERROR_TOKEN", defaultErrorToken),
		Out:        getEnv("TRIGRAPH_OUT", ""),
		Verbose:    getEnvBool("TRIGRAPH_VERBOSE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
