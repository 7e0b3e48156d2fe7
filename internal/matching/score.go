// internal/matching/score.go
package matching

import (
	"math"

	"nexo-workers/internal/models"
)

// Weights configures the five compatibility sub-scores. Values that do
// not sum to 1 are re-normalized before scoring.
type Weights struct {
	InterestAlignment float64 `json:"interestAlignment" mapstructure:"interest_alignment"`
	InvestmentFactor  float64 `json:"investmentFactor" mapstructure:"investment_factor"`
	CompanySize       float64 `json:"companySize" mapstructure:"company_size"`
	FacilityType      float64 `json:"facilityType" mapstructure:"facility_type"`
	ExistingClient    float64 `json:"existingClient" mapstructure:"existing_client"`
}

// DefaultWeights returns the event's standard weighting.
func DefaultWeights() Weights {
	return Weights{
		InterestAlignment: 0.40,
		InvestmentFactor:  0.25,
		CompanySize:       0.20,
		FacilityType:      0.10,
		ExistingClient:    0.05,
	}
}

// WeightsFromMap builds Weights from the flat config map. An empty map
// yields DefaultWeights.
func WeightsFromMap(m map[string]float64) Weights {
	if len(m) == 0 {
		return DefaultWeights()
	}
	return Weights{
		InterestAlignment: m["interest_alignment"],
		InvestmentFactor:  m["investment_factor"],
		CompanySize:       m["company_size"],
		FacilityType:      m["facility_type"],
		ExistingClient:    m["existing_client"],
	}
}

func (w Weights) sum() float64 {
	return w.InterestAlignment + w.InvestmentFactor + w.CompanySize + w.FacilityType + w.ExistingClient
}

func (w Weights) normalized() Weights {
	s := w.sum()
	if s <= 0 {
		return DefaultWeights()
	}
	return Weights{
		InterestAlignment: w.InterestAlignment / s,
		InvestmentFactor:  w.InvestmentFactor / s,
		CompanySize:       w.CompanySize / s,
		FacilityType:      w.FacilityType / s,
		ExistingClient:    w.ExistingClient / s,
	}
}

// ScoreFactors exposes the normalized sub-scores behind a final score,
// for the dashboard's match explanations.
type ScoreFactors struct {
	InterestAlignment float64 `json:"interestAlignment"`
	InvestmentFactor  float64 `json:"investmentFactor"`
	CompanySize       float64 `json:"companySize"`
	FacilityFit       float64 `json:"facilityFit"`
	RelationshipBonus float64 `json:"relationshipBonus"`
}

// facilityProductFit maps a buyer facility type to the seller product
// that lifts the facility sub-score from its 0.5 base to 1.0.
var facilityProductFit = map[string]string{
	"Gym Chain":          "Equipment",
	"Premium Gym":        "Equipment",
	"Wellness Center":    "Wellness",
	"Corporate Wellness": "Wellness",
	"Boutique Studio":    "Technology",
}

// relationshipBonus is a fixed stand-in until real existing-client data
// is available from the CRM import.
const relationshipBonus = 0.5

// Scorer computes buyer/seller compatibility as a 0-100 percentage.
// It is pure: no I/O, deterministic for a given pair, and tolerant of
// missing optional fields (empty tag sets, zero investment, one location).
type Scorer struct {
	weights Weights
}

// NewScorer builds a Scorer with the given weights, re-normalized to sum
// to 1. Zero-valued weights fall back to DefaultWeights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w.normalized()}
}

// Score returns the weighted compatibility percentage for one pair.
func (s *Scorer) Score(buyer *models.Buyer, seller *models.Seller) float64 {
	f := s.Factors(buyer, seller)
	total := f.InterestAlignment*s.weights.InterestAlignment +
		f.InvestmentFactor*s.weights.InvestmentFactor +
		f.CompanySize*s.weights.CompanySize +
		f.FacilityFit*s.weights.FacilityType +
		f.RelationshipBonus*s.weights.ExistingClient
	return math.Min(total*100, 100)
}

// Factors returns the raw sub-scores, each in [0,1].
func (s *Scorer) Factors(buyer *models.Buyer, seller *models.Seller) ScoreFactors {
	return ScoreFactors{
		InterestAlignment: interestAlignment(buyer.Interests, seller.Products),
		InvestmentFactor:  investmentFactor(buyer.InvestmentAmount),
		CompanySize:       companySizeFactor(buyer.Locations),
		FacilityFit:       facilityFit(buyer.FacilityType, seller.Products),
		RelationshipBonus: relationshipBonus,
	}
}

func interestAlignment(interests, products []string) float64 {
	productSet := make(map[string]struct{}, len(products))
	for _, p := range products {
		productSet[p] = struct{}{}
	}
	overlap := 0
	seen := make(map[string]struct{}, len(interests))
	for _, in := range interests {
		if _, dup := seen[in]; dup {
			continue
		}
		seen[in] = struct{}{}
		if _, ok := productSet[in]; ok {
			overlap++
		}
	}
	max := len(seen)
	if len(productSet) > max {
		max = len(productSet)
	}
	if max < 1 {
		max = 1
	}
	return float64(overlap) / float64(max)
}

func investmentFactor(amount int64) float64 {
	switch {
	case amount >= 100_000_000:
		return 1.0
	case amount >= 50_000_000:
		return 0.8
	case amount >= 10_000_000:
		return 0.6
	case amount >= 1_000_000:
		return 0.4
	default:
		return 0.2
	}
}

func companySizeFactor(locations int) float64 {
	switch {
	case locations >= 5:
		return 1.0
	case locations >= 3:
		return 0.8
	case locations >= 2:
		return 0.6
	default:
		return 0.4
	}
}

func facilityFit(facilityType string, products []string) float64 {
	required, ok := facilityProductFit[facilityType]
	if !ok {
		return 0.5
	}
	for _, p := range products {
		if p == required {
			return 1.0
		}
	}
	return 0.5
}
