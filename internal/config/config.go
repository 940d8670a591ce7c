package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const devJWTSecret = "dev-secret-change-in-production"

// Estimator names accepted in ESTIMATOR.
const (
	EstimatorZxcvbn    = "zxcvbn"
	EstimatorHeuristic = "heuristic"
)

var (
	ErrInsecureSecret   = errors.New("JWT_SECRET must be set in production environment")
	ErrUnknownEstimator = errors.New("ESTIMATOR must be zxcvbn or heuristic")
)

type Config struct {
	Port              string        `env:"PORT" envDefault:"8080"`
	Env               string        `env:"ENV" envDefault:"development"`
	DatabaseDSN       string        `env:"DATABASE_DSN"`
	JWTSecret         string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiry         time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	Estimator         string        `env:"ESTIMATOR" envDefault:"zxcvbn"`
	SuggestEntropy    bool          `env:"SUGGEST_ENTROPY" envDefault:"true"`
	RateLimitRPS      float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst    int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	MaxPasswordLength int           `env:"MAX_PASSWORD_LENGTH" envDefault:"256"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrInsecureSecret
	}
	if cfg.Estimator != EstimatorZxcvbn && cfg.Estimator != EstimatorHeuristic {
		return Config{}, ErrUnknownEstimator
	}

	return cfg, nil
}

// StatsEnabled reports whether a statistics database is configured.
func (c Config) StatsEnabled() bool {
	return c.DatabaseDSN != ""
}
