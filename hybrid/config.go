// Package hybrid - environment-driven configuration.

package hybrid

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by LoadConfig.
const (
	EnvTimeLimit = "QUNFOLD_HYBRID_TIME_LIMIT" // Go duration, e.g. "3s"
	EnvWindow    = "QUNFOLD_HYBRID_WINDOW"     // positive integer
	EnvEndpoint  = "QUNFOLD_HYBRID_ENDPOINT"   // managed-solver URL
	EnvToken     = "QUNFOLD_HYBRID_TOKEN"      // API token for Endpoint
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	// DefaultTimeLimit bounds one Sample call's local search.
	DefaultTimeLimit = 3 * time.Second

	// DefaultWindow is the sub-problem size; each window costs 2^Window
	// energy evaluations, so values much above ~20 are impractical.
	DefaultWindow = 12

	// maxWindow caps enumeration cost regardless of configuration.
	maxWindow = 24
)

var (
	// ErrInvalidTimeLimit indicates a negative time budget.
	ErrInvalidTimeLimit = errors.New("hybrid: time limit must be >= 0")

	// ErrInvalidWindow indicates a window size outside [1, 24].
	ErrInvalidWindow = errors.New("hybrid: window size out of range")
)

// Config controls the hybrid sampler.
//
// Endpoint/Token select a managed remote solver; when Endpoint is empty
// the built-in local decomposition search is used. Zero TimeLimit and
// Window take the package defaults.
type Config struct {
	TimeLimit time.Duration
	Window    int
	Endpoint  string
	Token     string
}

// LoadConfig builds a Config from the environment. A .env file in the
// working directory is honored when present (existing environment
// variables win, per godotenv semantics); a missing file is not an
// error. Malformed values fall back to the zero value so New can apply
// defaults.
func LoadConfig() Config {
	_ = godotenv.Load()

	var cfg Config
	if v := os.Getenv(EnvTimeLimit); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TimeLimit = d
		}
	}
	if v := os.Getenv(EnvWindow); v != "" {
		if w, err := strconv.Atoi(v); err == nil {
			cfg.Window = w
		}
	}
	cfg.Endpoint = os.Getenv(EnvEndpoint)
	cfg.Token = os.Getenv(EnvToken)
	return cfg
}

// withDefaults fills zero fields and validates the result.
func (c Config) withDefaults() (Config, error) {
	if c.TimeLimit == 0 {
		c.TimeLimit = DefaultTimeLimit
	}
	if c.Window == 0 {
		c.Window = DefaultWindow
	}
	if c.TimeLimit < 0 {
		return Config{}, ErrInvalidTimeLimit
	}
	if c.Window < 1 || c.Window > maxWindow {
		return Config{}, ErrInvalidWindow
	}
	return c, nil
}
