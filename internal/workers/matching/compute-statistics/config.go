// internal/workers/matching/compute-statistics/config.go
package computestatistics

import (
	"time"

	"nexo-workers/internal/matching"
)

type Config struct {
	Timeout      time.Duration
	MeetingQuota int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      10 * time.Second,
		MeetingQuota: matching.DefaultMeetingQuota,
	}
}
