// internal/workers/matching/export-schedule/models.go
package exportschedule

import "nexo-workers/internal/models"

type Input struct {
	RunID string `json:"runId,omitempty"`

	Meetings []*models.Meeting `json:"meetings,omitempty"`
	Buyers   []*models.Buyer   `json:"buyers,omitempty"`
	Sellers  []*models.Seller  `json:"sellers,omitempty"`
}

type Output struct {
	RunID    string `json:"runId,omitempty"`
	CSV      string `json:"csv"`
	Meetings int    `json:"meetings"`
}
