// internal/workers/matching/calculate-compatibility/models.go
package calculatecompatibility

import (
	"nexo-workers/internal/matching"
	"nexo-workers/internal/models"
)

type Input struct {
	BuyerID  string `json:"buyerId,omitempty"`
	SellerID string `json:"sellerId,omitempty"`

	// Inline records take precedence over roster lookups by id.
	Buyer  *models.Buyer  `json:"buyer,omitempty"`
	Seller *models.Seller `json:"seller,omitempty"`
}

type Output struct {
	BuyerID            string                `json:"buyerId"`
	SellerID           string                `json:"sellerId"`
	CompatibilityScore float64               `json:"compatibilityScore"`
	Factors            matching.ScoreFactors `json:"factors"`
}
