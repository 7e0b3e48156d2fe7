// internal/runstore/store.go
package runstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nexo-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

// Store keeps per-run pipeline state (the generated match list, the
// scheduled meetings) in Redis so the schedule, statistics and export
// workers can pick up a run by id instead of re-sending the full payload
// through process variables.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{redis: rdb, ttl: ttl}
}

func matchesKey(runID string) string  { return "matching:run:" + runID + ":matches" }
func meetingsKey(runID string) string { return "matching:run:" + runID + ":meetings" }

// SaveMatches stores the generated match list for a run.
func (s *Store) SaveMatches(ctx context.Context, runID string, matches []*models.Match) error {
	return s.save(ctx, matchesKey(runID), matches)
}

// Matches loads the match list for a run. Returns redis.Nil via the
// wrapped error when the run is unknown or expired.
func (s *Store) Matches(ctx context.Context, runID string) ([]*models.Match, error) {
	var matches []*models.Match
	if err := s.load(ctx, matchesKey(runID), &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// SaveMeetings stores the scheduled meetings for a run.
func (s *Store) SaveMeetings(ctx context.Context, runID string, meetings []*models.Meeting) error {
	return s.save(ctx, meetingsKey(runID), meetings)
}

// Meetings loads the scheduled meetings for a run.
func (s *Store) Meetings(ctx context.Context, runID string) ([]*models.Meeting, error) {
	var meetings []*models.Meeting
	if err := s.load(ctx, meetingsKey(runID), &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

func (s *Store) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal run state: %w", err)
	}
	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store run state: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, key string, out interface{}) error {
	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("load run state: %w", err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return fmt.Errorf("decode run state: %w", err)
	}
	return nil
}
