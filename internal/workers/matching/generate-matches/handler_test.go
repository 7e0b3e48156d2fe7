// internal/workers/matching/generate-matches/handler_test.go
package generatematches

import (
	"context"
	"testing"
	"time"

	"nexo-workers/internal/common/logger"
	"nexo-workers/internal/matching"
	"nexo-workers/internal/models"
	"nexo-workers/internal/runstore"
	"nexo-workers/pkg/registry"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		MeetingQuota: 2,
		Weights:      matching.DefaultWeights(),
	}
}

func testRosters() ([]*models.Buyer, []*models.Seller) {
	buyers := []*models.Buyer{
		{
			ID: "b1", Name: "Buyer One", Company: "One Co",
			InvestmentAmount: 20_000_000, Locations: 2, FacilityType: "Gym Chain",
			Interests:       []string{"Equipment"},
			SelectedSellers: []string{"s1"},
		},
		{
			ID: "b2", Name: "Buyer Two", Company: "Two Co",
			InvestmentAmount: 5_000_000, Locations: 1, FacilityType: "Wellness Center",
			Interests: []string{"Wellness"},
		},
	}
	sellers := []*models.Seller{
		{ID: "s1", Name: "Seller One", Company: "S1 Co", Products: []string{"Equipment"}, SelectedBuyers: []string{"b1"}},
		{ID: "s2", Name: "Seller Two", Company: "S2 Co", Products: []string{"Wellness"}, SelectedBuyers: []string{"b2"}},
		{ID: "s3", Name: "Seller Three", Company: "S3 Co", Products: []string{"Technology"}},
	}
	return buyers, sellers
}

func TestExecuteInlineRosters(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, logger.NewNoOpLogger())

	buyers, sellers := testRosters()
	output, err := handler.Execute(context.Background(), &Input{Buyers: buyers, Sellers: sellers})

	require.NoError(t, err)
	assert.NotEmpty(t, output.RunID)
	assert.Equal(t, 4, output.TotalMatches)
	assert.Equal(t, 1, output.DoubleMatches)
	assert.Equal(t, 1, output.SellerChoices)
	assert.Equal(t, 2, output.AISuggestions)
	assert.Len(t, output.Matches, 4)
}

func TestExecuteQuotaPerBuyer(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, logger.NewNoOpLogger())

	buyers, sellers := testRosters()
	output, err := handler.Execute(context.Background(), &Input{Buyers: buyers, Sellers: sellers})
	require.NoError(t, err)

	perBuyer := make(map[string]int)
	for _, m := range output.Matches {
		perBuyer[m.BuyerID]++
	}
	assert.Equal(t, 2, perBuyer["b1"])
	assert.Equal(t, 2, perBuyer["b2"])
}

func TestExecuteWeightOverride(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, logger.NewNoOpLogger())

	buyers, sellers := testRosters()
	weights := matching.Weights{InterestAlignment: 1}
	output, err := handler.Execute(context.Background(), &Input{
		Buyers: buyers, Sellers: sellers, Weights: &weights,
	})
	require.NoError(t, err)

	// With interest alignment as the only factor, the b1/s1 double match
	// scores a perfect 100.
	for _, m := range output.Matches {
		if m.BuyerID == "b1" && m.SellerID == "s1" {
			assert.InDelta(t, 100, m.CompatibilityScore, 1e-9)
		}
	}
}

func TestExecutePersistsRunState(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	runs := runstore.New(rdb, time.Hour)

	handler := NewHandler(createTestConfig(), nil, runs, logger.NewNoOpLogger())

	buyers, sellers := testRosters()
	ctx := context.Background()
	output, err := handler.Execute(ctx, &Input{Buyers: buyers, Sellers: sellers})
	require.NoError(t, err)

	stored, err := runs.Matches(ctx, output.RunID)
	require.NoError(t, err)
	assert.Len(t, stored, output.TotalMatches)
}

func TestExecuteEmptyRosters(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{})

	require.NoError(t, err)
	assert.Equal(t, 0, output.TotalMatches)
	assert.NotEmpty(t, output.RunID)
}

func TestWithActivityEnforcesInputSchema(t *testing.T) {
	activity := &registry.Activity{
		TaskType: TaskType,
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"runId": map[string]interface{}{"type": "string"},
			},
			"required": []interface{}{"buyers", "sellers"},
		},
	}

	handler := NewHandler(createTestConfig(), nil, nil, logger.NewNoOpLogger()).WithActivity(activity)
	require.NotNil(t, handler.activity)

	assert.NoError(t, handler.activity.ValidateRaw([]byte(`{"buyers":[],"sellers":[]}`)))

	err := handler.activity.ValidateRaw([]byte(`{"runId":"run_1"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buyers")
}
