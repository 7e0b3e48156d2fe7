// internal/workers/notification/send-schedule/config.go
package sendschedule

import "time"

type Config struct {
	Timeout      time.Duration
	SenderEmail  string
	SNSTopicARN  string
	EmailEnabled bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		EmailEnabled: true,
	}
}
