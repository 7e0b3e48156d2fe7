// internal/runstore/store_test.go
package runstore

import (
	"context"
	"testing"
	"time"

	"nexo-workers/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	return New(rdb, time.Hour), srv
}

func TestMatchesRoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	matches := []*models.Match{
		{BuyerID: "b1", SellerID: "s1", Type: models.MatchTypeDouble, CompatibilityScore: 80, Priority: 1},
		{BuyerID: "b1", SellerID: "s2", Type: models.MatchTypeAISuggestion, CompatibilityScore: 55.5, Priority: 3},
	}

	require.NoError(t, store.SaveMatches(ctx, "run-1", matches))

	loaded, err := store.Matches(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, *matches[0], *loaded[0])
	assert.Equal(t, *matches[1], *loaded[1])
}

func TestMeetingsRoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	meetings := []*models.Meeting{
		{BuyerID: "b1", SellerID: "s1", TimeSlotID: "slot_001", Date: "2023-05-18", Time: "09:00", Duration: 15},
	}

	require.NoError(t, store.SaveMeetings(ctx, "run-1", meetings))

	loaded, err := store.Meetings(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, *meetings[0], *loaded[0])
}

func TestUnknownRun(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Matches(context.Background(), "missing")
	assert.Error(t, err)
}

func TestRunsAreIsolated(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMatches(ctx, "run-1", []*models.Match{{BuyerID: "b1", SellerID: "s1"}}))
	require.NoError(t, store.SaveMatches(ctx, "run-2", []*models.Match{{BuyerID: "b2", SellerID: "s2"}}))

	first, err := store.Matches(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "b1", first[0].BuyerID)

	second, err := store.Matches(ctx, "run-2")
	require.NoError(t, err)
	assert.Equal(t, "b2", second[0].BuyerID)
}

func TestRunStateExpires(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	store := New(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.SaveMatches(ctx, "run-1", []*models.Match{{BuyerID: "b1"}}))

	srv.FastForward(2 * time.Minute)

	_, err := store.Matches(ctx, "run-1")
	assert.Error(t, err)
}
