package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environment variables consumed when building the version switcher.
const (
	EnvStableVersion  = "STABLE_VERSION"
	EnvCurrentVersion = "CURRENT_VERSION"
)

// Environment holds the build-time variables read from the process environment.
type Environment struct {
	StableVersion  string `env:"STABLE_VERSION"`
	CurrentVersion string `env:"CURRENT_VERSION"`

	// CurrentVersionSet distinguishes an unset CURRENT_VERSION from an empty one.
	CurrentVersionSet bool
}

// LoadDotEnv loads .env and .env.local from dir into the process environment.
// Variables already set are not overridden. Missing files are skipped; the
// names of files that were loaded are returned.
func LoadDotEnv(dir string) ([]string, error) {
	var loaded []string
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("load %s: %w", path, err)
		}
		slog.Debug("Loaded environment variables", "path", path)
		loaded = append(loaded, path)
	}
	return loaded, nil
}

// ParseEnvironment binds vars to an Environment. A nil map reads the process environment.
func ParseEnvironment(vars map[string]string) (Environment, error) {
	if vars == nil {
		vars = env.ToMap(os.Environ())
	}

	var e Environment
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Environment{}, fmt.Errorf("error getting env configs: %w", err)
	}
	_, e.CurrentVersionSet = vars[EnvCurrentVersion]
	return e, nil
}
