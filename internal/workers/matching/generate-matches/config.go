// internal/workers/matching/generate-matches/config.go
package generatematches

import (
	"time"

	"nexo-workers/internal/matching"
)

type Config struct {
	Timeout      time.Duration
	MeetingQuota int
	Weights      matching.Weights
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		MeetingQuota: matching.DefaultMeetingQuota,
		Weights:      matching.DefaultWeights(),
	}
}
