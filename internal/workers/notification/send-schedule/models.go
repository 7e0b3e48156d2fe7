// internal/workers/notification/send-schedule/models.go
package sendschedule

type Input struct {
	RunID      string   `json:"runId,omitempty"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject,omitempty"`
	CSV        string   `json:"csv,omitempty"`
}

type Output struct {
	RunID          string `json:"runId,omitempty"`
	EmailsSent     int    `json:"emailsSent"`
	EventPublished bool   `json:"eventPublished"`
}
