// internal/workers/matching/compute-statistics/models.go
package computestatistics

import "nexo-workers/internal/models"

type Input struct {
	RunID string `json:"runId,omitempty"`

	Matches  []*models.Match   `json:"matches,omitempty"`
	Meetings []*models.Meeting `json:"meetings,omitempty"`
}

type Output struct {
	RunID string            `json:"runId,omitempty"`
	Stats models.MatchStats `json:"stats"`
}
