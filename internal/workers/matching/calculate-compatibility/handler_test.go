// internal/workers/matching/calculate-compatibility/handler_test.go
package calculatecompatibility

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "nexo-workers/internal/common/errors"
	"nexo-workers/internal/common/logger"
	"nexo-workers/internal/matching"
	"nexo-workers/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{
		CacheTTL: 10 * time.Minute,
		Timeout:  10 * time.Second,
		Weights:  matching.DefaultWeights(),
	}
}

func testBuyer() *models.Buyer {
	return &models.Buyer{
		ID: "buyer_001", Name: "Marcos Aguade", Company: "Fitness Group",
		InvestmentAmount: 140_000_000, Locations: 1, FacilityType: "Gym Chain",
		Interests: []string{"Equipment", "Technology", "Supplements"},
	}
}

func testSeller() *models.Seller {
	return &models.Seller{
		ID: "seller_001", Name: "Charly Chagas", Company: "Fitness Emporium",
		Products: []string{"Equipment", "Technology"},
	}
}

func TestExecuteInlinePair(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{
		Buyer:  testBuyer(),
		Seller: testSeller(),
	})

	require.NoError(t, err)
	assert.Equal(t, "buyer_001", output.BuyerID)
	assert.Equal(t, "seller_001", output.SellerID)
	assert.InDelta(t, 72.1667, output.CompatibilityScore, 0.01)
	assert.InDelta(t, 2.0/3.0, output.Factors.InterestAlignment, 1e-9)
	assert.Equal(t, 1.0, output.Factors.InvestmentFactor)
	assert.Equal(t, 1.0, output.Factors.FacilityFit)
}

func TestExecuteMissingBuyer(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, logger.NewNoOpLogger())

	_, err := handler.Execute(context.Background(), &Input{Seller: testSeller()})

	assert.ErrorIs(t, err, ErrBuyerMissing)
}

func TestExecuteMissingSeller(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, logger.NewNoOpLogger())

	_, err := handler.Execute(context.Background(), &Input{Buyer: testBuyer()})

	assert.ErrorIs(t, err, ErrSellerMissing)
}

func TestExecuteCachesScore(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	handler := NewHandler(createTestConfig(), nil, rdb, logger.NewNoOpLogger())
	ctx := context.Background()

	input := &Input{Buyer: testBuyer(), Seller: testSeller()}

	first, err := handler.Execute(ctx, input)
	require.NoError(t, err)
	assert.True(t, srv.Exists("compat:score:buyer_001:seller_001"))

	second, err := handler.Execute(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, first.CompatibilityScore, second.CompatibilityScore)
	assert.Equal(t, first.Factors, second.Factors)
}

func TestScoreBypassesCache(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, logger.NewNoOpLogger())

	score := handler.Score(testBuyer(), testSeller())
	assert.InDelta(t, 72.1667, score, 0.01)
}

func TestErrorCodeMapping(t *testing.T) {
	assert.Equal(t, errs.ErrCodeBuyerNotFound, errorCode(ErrBuyerMissing))
	assert.Equal(t, errs.ErrCodeSellerNotFound, errorCode(ErrSellerMissing))
	assert.Equal(t, errs.ErrCodeCompatibilityFailed, errorCode(errors.New("scorer unavailable")))
}
