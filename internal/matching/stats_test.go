// internal/matching/stats_test.go
package matching

import (
	"testing"

	"nexo-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmptyRun(t *testing.T) {
	stats := NewAggregator(5).Summarize(nil, nil)

	assert.Equal(t, 0, stats.TotalMatches)
	assert.Equal(t, 0.0, stats.SchedulingEfficiency)
	assert.Equal(t, 0.0, stats.AverageCompatibility)
	assert.NotNil(t, stats.MatchTypeDistribution)
	assert.NotNil(t, stats.PriorityDistribution)
	assert.Empty(t, stats.UnderQuotaBuyers)
}

func TestSummarizeDistributionsAndAverages(t *testing.T) {
	matches := []*models.Match{
		makeMatch("b1", "s1", models.MatchTypeDouble, 80),
		makeMatch("b1", "s2", models.MatchTypeDouble, 70),
		makeMatch("b1", "s3", models.MatchTypeSellerChoice, 60),
		makeMatch("b2", "s1", models.MatchTypeAISuggestion, 50.5),
	}
	meetings := []*models.Meeting{
		{BuyerID: "b1", SellerID: "s1"},
		{BuyerID: "b1", SellerID: "s2"},
		{BuyerID: "b2", SellerID: "s1"},
	}

	stats := NewAggregator(5).Summarize(matches, meetings)

	assert.Equal(t, 4, stats.TotalMatches)
	assert.Equal(t, 3, stats.ScheduledMeetings)
	assert.Equal(t, 1, stats.UnscheduledMatches)
	assert.Equal(t, 75.0, stats.SchedulingEfficiency)
	// (80 + 70 + 60 + 50.5) / 4 = 65.125 rounded to 65.13
	assert.Equal(t, 65.13, stats.AverageCompatibility)
	assert.Equal(t, 2, stats.MatchTypeDistribution[models.MatchTypeDouble])
	assert.Equal(t, 1, stats.MatchTypeDistribution[models.MatchTypeSellerChoice])
	assert.Equal(t, 1, stats.MatchTypeDistribution[models.MatchTypeAISuggestion])
	assert.Equal(t, 2, stats.PriorityDistribution[1])
	assert.Equal(t, 1, stats.PriorityDistribution[2])
	assert.Equal(t, 1, stats.PriorityDistribution[3])
	assert.Equal(t, 2, stats.UniqueBuyersMatched)
	assert.Equal(t, 3, stats.UniqueSellersMatched)
}

func TestSummarizeUnderQuotaBuyersSorted(t *testing.T) {
	matches := []*models.Match{
		makeMatch("b3", "s1", models.MatchTypeAISuggestion, 50),
		makeMatch("b1", "s1", models.MatchTypeAISuggestion, 50),
		makeMatch("b1", "s2", models.MatchTypeAISuggestion, 50),
		makeMatch("b2", "s1", models.MatchTypeAISuggestion, 50),
		makeMatch("b2", "s2", models.MatchTypeAISuggestion, 50),
	}

	stats := NewAggregator(2).Summarize(matches, nil)

	assert.Equal(t, []string{"b3"}, stats.UnderQuotaBuyers)
}

func TestSummarizeFullQuotaHasNoUnderQuotaBuyers(t *testing.T) {
	matches := []*models.Match{
		makeMatch("b1", "s1", models.MatchTypeDouble, 50),
		makeMatch("b1", "s2", models.MatchTypeDouble, 50),
	}

	stats := NewAggregator(2).Summarize(matches, nil)

	assert.Empty(t, stats.UnderQuotaBuyers)
}

func TestSummarizeEfficiencyRounding(t *testing.T) {
	matches := []*models.Match{
		makeMatch("b1", "s1", models.MatchTypeDouble, 50),
		makeMatch("b1", "s2", models.MatchTypeDouble, 50),
		makeMatch("b1", "s3", models.MatchTypeDouble, 50),
	}
	meetings := []*models.Meeting{{BuyerID: "b1", SellerID: "s1"}}

	stats := NewAggregator(3).Summarize(matches, meetings)

	// 1/3 scheduled = 33.333... rounded to 33.33
	assert.Equal(t, 33.33, stats.SchedulingEfficiency)
}
