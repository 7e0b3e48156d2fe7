// internal/workers/matching/generate-matches/models.go
package generatematches

import (
	"nexo-workers/internal/matching"
	"nexo-workers/internal/models"
)

type Input struct {
	// Inline rosters take precedence; when absent the worker loads the
	// registered participants from the roster store.
	Buyers  []*models.Buyer  `json:"buyers,omitempty"`
	Sellers []*models.Seller `json:"sellers,omitempty"`

	// Optional per-run overrides for the compatibility weighting.
	Weights *matching.Weights `json:"weights,omitempty"`
}

type Output struct {
	RunID         string          `json:"runId"`
	Matches       []*models.Match `json:"matches"`
	TotalMatches  int             `json:"totalMatches"`
	DoubleMatches int             `json:"doubleMatches"`
	SellerChoices int             `json:"sellerChoices"`
	AISuggestions int             `json:"aiSuggestions"`
}
