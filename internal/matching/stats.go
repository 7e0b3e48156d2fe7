// internal/matching/stats.go
package matching

import (
	"math"
	"sort"

	"nexo-workers/internal/models"
)

// Aggregator derives run summary metrics from matches and meetings.
type Aggregator struct {
	quota int
}

func NewAggregator(quota int) *Aggregator {
	if quota <= 0 {
		quota = DefaultMeetingQuota
	}
	return &Aggregator{quota: quota}
}

// Summarize never fails: an empty match list yields a zero-valued stats
// record with initialized maps.
func (a *Aggregator) Summarize(matches []*models.Match, meetings []*models.Meeting) models.MatchStats {
	stats := models.MatchStats{
		MatchTypeDistribution: make(map[models.MatchType]int),
		PriorityDistribution:  make(map[int]int),
	}
	if len(matches) == 0 {
		return stats
	}

	buyerCounts := make(map[string]int)
	sellers := make(map[string]struct{})
	var scoreSum float64
	for _, m := range matches {
		stats.MatchTypeDistribution[m.Type]++
		stats.PriorityDistribution[m.Priority]++
		buyerCounts[m.BuyerID]++
		sellers[m.SellerID] = struct{}{}
		scoreSum += m.CompatibilityScore
	}

	stats.TotalMatches = len(matches)
	stats.ScheduledMeetings = len(meetings)
	stats.UnscheduledMatches = stats.TotalMatches - stats.ScheduledMeetings
	stats.SchedulingEfficiency = round2(float64(stats.ScheduledMeetings) / float64(stats.TotalMatches) * 100)
	stats.AverageCompatibility = round2(scoreSum / float64(stats.TotalMatches))
	stats.UniqueBuyersMatched = len(buyerCounts)
	stats.UniqueSellersMatched = len(sellers)

	for buyerID, n := range buyerCounts {
		if n < a.quota {
			stats.UnderQuotaBuyers = append(stats.UnderQuotaBuyers, buyerID)
		}
	}
	sort.Strings(stats.UnderQuotaBuyers)

	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
