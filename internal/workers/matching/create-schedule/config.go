// internal/workers/matching/create-schedule/config.go
package createschedule

import "time"

type Config struct {
	Timeout      time.Duration
	MeetingIndex string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		MeetingIndex: "nexo-meetings",
	}
}
