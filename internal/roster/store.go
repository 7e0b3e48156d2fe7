// internal/roster/store.go
package roster

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"nexo-workers/internal/common/logger"
	"nexo-workers/internal/models"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyBuyers    = "roster:buyers"
	cacheKeySellers   = "roster:sellers"
	cacheKeyTimeSlots = "roster:timeslots"
)

const buyersQuery = `
	SELECT id, name, company, investment_amount, locations, facility_type,
	       sponsorship_tier, interests, selected_sellers, region
	FROM buyers ORDER BY id`

const sellersQuery = `
	SELECT id, name, company, products, selected_buyers, region
	FROM sellers ORDER BY id`

const timeSlotsQuery = `
	SELECT id, slot_date, slot_time, duration_minutes
	FROM time_slots ORDER BY slot_date, slot_time`

// Store loads participant rosters and the event agenda from Postgres,
// with a Redis read-through cache. Rows come back in a fixed order so
// that a matching run over the same data is reproducible.
type Store struct {
	db       *sql.DB
	redis    *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewStore(db *sql.DB, rdb *redis.Client, cacheTTL time.Duration, log logger.Logger) *Store {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &Store{db: db, redis: rdb, cacheTTL: cacheTTL, logger: log}
}

// Buyers returns all registered buyers in id order.
func (s *Store) Buyers(ctx context.Context) ([]*models.Buyer, error) {
	var cached []*models.Buyer
	if s.fromCache(ctx, cacheKeyBuyers, &cached) {
		return cached, nil
	}

	rows, err := s.db.QueryContext(ctx, buyersQuery)
	if err != nil {
		return nil, fmt.Errorf("query buyers: %w", err)
	}
	defer rows.Close()

	var buyers []*models.Buyer
	for rows.Next() {
		var b models.Buyer
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Company, &b.InvestmentAmount, &b.Locations,
			&b.FacilityType, &b.SponsorshipTier,
			pq.Array(&b.Interests), pq.Array(&b.SelectedSellers), &b.Region,
		); err != nil {
			return nil, fmt.Errorf("scan buyer: %w", err)
		}
		buyers = append(buyers, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate buyers: %w", err)
	}

	s.toCache(ctx, cacheKeyBuyers, buyers)
	return buyers, nil
}

// Sellers returns all registered sellers in id order.
func (s *Store) Sellers(ctx context.Context) ([]*models.Seller, error) {
	var cached []*models.Seller
	if s.fromCache(ctx, cacheKeySellers, &cached) {
		return cached, nil
	}

	rows, err := s.db.QueryContext(ctx, sellersQuery)
	if err != nil {
		return nil, fmt.Errorf("query sellers: %w", err)
	}
	defer rows.Close()

	var sellers []*models.Seller
	for rows.Next() {
		var sl models.Seller
		if err := rows.Scan(
			&sl.ID, &sl.Name, &sl.Company,
			pq.Array(&sl.Products), pq.Array(&sl.SelectedBuyers), &sl.Region,
		); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		sellers = append(sellers, &sl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sellers: %w", err)
	}

	s.toCache(ctx, cacheKeySellers, sellers)
	return sellers, nil
}

// TimeSlots returns the event agenda ordered by date and time.
func (s *Store) TimeSlots(ctx context.Context) ([]models.TimeSlot, error) {
	var cached []models.TimeSlot
	if s.fromCache(ctx, cacheKeyTimeSlots, &cached) {
		return cached, nil
	}

	rows, err := s.db.QueryContext(ctx, timeSlotsQuery)
	if err != nil {
		return nil, fmt.Errorf("query time slots: %w", err)
	}
	defer rows.Close()

	var slots []models.TimeSlot
	for rows.Next() {
		var t models.TimeSlot
		if err := rows.Scan(&t.ID, &t.Date, &t.Time, &t.Duration); err != nil {
			return nil, fmt.Errorf("scan time slot: %w", err)
		}
		slots = append(slots, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time slots: %w", err)
	}

	s.toCache(ctx, cacheKeyTimeSlots, slots)
	return slots, nil
}

// Buyer fetches a single buyer by id. sql.ErrNoRows passes through so
// callers can map it to their own not-found handling.
func (s *Store) Buyer(ctx context.Context, id string) (*models.Buyer, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, company, investment_amount, locations, facility_type,
		       sponsorship_tier, interests, selected_sellers, region
		FROM buyers WHERE id = $1`, id)

	var b models.Buyer
	err := row.Scan(
		&b.ID, &b.Name, &b.Company, &b.InvestmentAmount, &b.Locations,
		&b.FacilityType, &b.SponsorshipTier,
		pq.Array(&b.Interests), pq.Array(&b.SelectedSellers), &b.Region,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Seller fetches a single seller by id.
func (s *Store) Seller(ctx context.Context, id string) (*models.Seller, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, company, products, selected_buyers, region
		FROM sellers WHERE id = $1`, id)

	var sl models.Seller
	err := row.Scan(
		&sl.ID, &sl.Name, &sl.Company,
		pq.Array(&sl.Products), pq.Array(&sl.SelectedBuyers), &sl.Region,
	)
	if err != nil {
		return nil, err
	}
	return &sl, nil
}

// Invalidate drops the cached rosters, e.g. after a re-import.
func (s *Store) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, cacheKeyBuyers, cacheKeySellers, cacheKeyTimeSlots).Err(); err != nil {
		s.logger.Warn("roster cache invalidation failed", map[string]interface{}{"error": err})
	}
}

func (s *Store) fromCache(ctx context.Context, key string, out interface{}) bool {
	if s.redis == nil {
		return false
	}
	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		s.logger.Warn("corrupt roster cache entry", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return false
	}
	return true
}

func (s *Store) toCache(ctx context.Context, key string, v interface{}) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("roster cache write failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
}
