// internal/models/match.go
package models

// MatchType classifies how a buyer/seller pairing came to exist.
type MatchType string

const (
	MatchTypeDouble       MatchType = "double_match"
	MatchTypeSellerChoice MatchType = "seller_choice"
	MatchTypeAISuggestion MatchType = "ai_suggestion"
)

// Priority returns the scheduling priority rank for the match type
// (1 is highest). Priority is strictly derived from the type.
func (t MatchType) Priority() int {
	switch t {
	case MatchTypeDouble:
		return 1
	case MatchTypeSellerChoice:
		return 2
	default:
		return 3
	}
}

// Match is one generated buyer/seller pairing. The Scheduled flag and
// TimeSlotID are set only by the scheduler pass.
type Match struct {
	BuyerID            string    `json:"buyerId"`
	SellerID           string    `json:"sellerId"`
	Type               MatchType `json:"matchType"`
	CompatibilityScore float64   `json:"compatibilityScore"`
	Priority           int       `json:"priority"`
	Scheduled          bool      `json:"scheduled"`
	TimeSlotID         string    `json:"timeSlotId,omitempty"`
}

// Meeting is the scheduled realization of a Match.
type Meeting struct {
	BuyerID            string    `json:"buyerId"`
	SellerID           string    `json:"sellerId"`
	TimeSlotID         string    `json:"timeSlotId"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	Duration           int       `json:"duration"`
	MatchType          MatchType `json:"matchType"`
	CompatibilityScore float64   `json:"compatibilityScore"`
	Priority           int       `json:"priority"`
}

// MatchStats summarizes a matching run for the dashboard.
type MatchStats struct {
	TotalMatches          int               `json:"totalMatches"`
	ScheduledMeetings     int               `json:"scheduledMeetings"`
	UnscheduledMatches    int               `json:"unscheduledMatches"`
	SchedulingEfficiency  float64           `json:"schedulingEfficiency"`
	AverageCompatibility  float64           `json:"averageCompatibility"`
	MatchTypeDistribution map[MatchType]int `json:"matchTypeDistribution"`
	PriorityDistribution  map[int]int       `json:"priorityDistribution"`
	UniqueBuyersMatched   int               `json:"uniqueBuyersMatched"`
	UniqueSellersMatched  int               `json:"uniqueSellersMatched"`
	UnderQuotaBuyers      []string          `json:"underQuotaBuyers,omitempty"`
}
