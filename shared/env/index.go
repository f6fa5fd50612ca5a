package env

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	envparse "github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Env holds the environment variables the cli reads.
type Env struct {
	// NODE_ENV decides which Python API the cli talks to. Only "production"
	// is special, anything else means development.
	NODE_ENV string `env:"NODE_ENV"`
	// QUIZ_CONFIG_DIR overrides the directory that holds the credentials file.
	QUIZ_CONFIG_DIR string `env:"QUIZ_CONFIG_DIR"`
}

var (
	values   Env
	loadOnce sync.Once
)

// Load reads an optional .env file in the cwd and parses the environment.
// Variables already set in the process are never overwritten by the file.
// A malformed .env is reported but the process environment is still parsed.
func Load() (Env, error) {
	var dotenvErr error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		dotenvErr = fmt.Errorf("failed to read .env: %w", err)
	}
	v, err := envparse.ParseAs[Env]()
	return v, errors.Join(dotenvErr, err)
}

// Values returns the environment loaded on first use.
func Values() *Env {
	loadOnce.Do(func() {
		v, err := Load()
		if err != nil {
			log.Warnf("Failed to load env, using the process environment: %v\n", err)
		}
		values = v
	})
	return &values
}
