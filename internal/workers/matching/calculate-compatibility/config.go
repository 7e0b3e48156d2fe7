// internal/workers/matching/calculate-compatibility/config.go
package calculatecompatibility

import (
	"time"

	"nexo-workers/internal/matching"
)

type Config struct {
	CacheTTL time.Duration
	Timeout  time.Duration
	Weights  matching.Weights
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: 10 * time.Minute,
		Timeout:  10 * time.Second,
		Weights:  matching.DefaultWeights(),
	}
}
