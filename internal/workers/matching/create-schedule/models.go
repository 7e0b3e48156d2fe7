// internal/workers/matching/create-schedule/models.go
package createschedule

import "nexo-workers/internal/models"

type Input struct {
	RunID string `json:"runId,omitempty"`

	// Inline payloads take precedence over the stored run / roster agenda.
	Matches   []*models.Match   `json:"matches,omitempty"`
	TimeSlots []models.TimeSlot `json:"timeSlots,omitempty"`
}

type Output struct {
	RunID              string            `json:"runId,omitempty"`
	Meetings           []*models.Meeting `json:"meetings"`
	ScheduledMeetings  int               `json:"scheduledMeetings"`
	UnscheduledMatches int               `json:"unscheduledMatches"`
}
