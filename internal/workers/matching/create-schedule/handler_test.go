// internal/workers/matching/create-schedule/handler_test.go
package createschedule

import (
	"context"
	"testing"
	"time"

	"nexo-workers/internal/common/logger"
	"nexo-workers/internal/models"
	"nexo-workers/internal/runstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		MeetingIndex: "nexo-meetings",
	}
}

func testMatches() []*models.Match {
	return []*models.Match{
		{BuyerID: "b1", SellerID: "s1", Type: models.MatchTypeDouble, CompatibilityScore: 80, Priority: 1},
		{BuyerID: "b1", SellerID: "s2", Type: models.MatchTypeAISuggestion, CompatibilityScore: 55, Priority: 3},
	}
}

func testSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{ID: "slot_001", Date: "2023-05-18", Time: "09:00", Duration: 15},
		{ID: "slot_002", Date: "2023-05-18", Time: "09:15", Duration: 15},
	}
}

func TestExecuteInlineMatches(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, nil, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{
		Matches:   testMatches(),
		TimeSlots: testSlots(),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.ScheduledMeetings)
	assert.Equal(t, 0, output.UnscheduledMatches)
	require.Len(t, output.Meetings, 2)
	assert.Equal(t, "slot_001", output.Meetings[0].TimeSlotID)
	assert.Equal(t, "s1", output.Meetings[0].SellerID)
}

func TestExecuteUnscheduledCount(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, nil, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{
		Matches:   testMatches(),
		TimeSlots: testSlots()[:1],
	})

	require.NoError(t, err)
	assert.Equal(t, 1, output.ScheduledMeetings)
	assert.Equal(t, 1, output.UnscheduledMatches)
}

func TestExecuteLoadsMatchesFromRunStore(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	runs := runstore.New(rdb, time.Hour)
	ctx := context.Background()

	require.NoError(t, runs.SaveMatches(ctx, "run-1", testMatches()))

	handler := NewHandler(createTestConfig(), nil, runs, nil, logger.NewNoOpLogger())
	output, err := handler.Execute(ctx, &Input{
		RunID:     "run-1",
		TimeSlots: testSlots(),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.ScheduledMeetings)

	// The schedule is persisted back under the same run.
	stored, err := runs.Meetings(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestExecuteUnknownRun(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	runs := runstore.New(rdb, time.Hour)

	handler := NewHandler(createTestConfig(), nil, runs, nil, logger.NewNoOpLogger())
	_, err := handler.Execute(context.Background(), &Input{
		RunID:     "missing",
		TimeSlots: testSlots(),
	})

	assert.Error(t, err)
}

func TestExecuteNoMatches(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, nil, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{TimeSlots: testSlots()})

	require.NoError(t, err)
	assert.Equal(t, 0, output.ScheduledMeetings)
	assert.Empty(t, output.Meetings)
}
