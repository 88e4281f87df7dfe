package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KothuruDhansukh/ECO-MART/business/preference"
	"github.com/KothuruDhansukh/ECO-MART/domain"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// cachedProfile is the value stored under profile:user:<id>.
type cachedProfile struct {
	UserID         uint               `json:"user_id"`
	Weights        map[string]float64 `json:"weights"`
	PriceTolerance float64            `json:"price_tolerance"`
	UpdatedAt      time.Time          `json:"updated_at"`
	CachedAt       time.Time          `json:"cached_at"`
}

type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ preference.ProfileCache = (*ProfileCache)(nil)

func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{
		client: client,
		ttl:    ttl,
	}
}

func profileKey(userID uint) string {
	return fmt.Sprintf("profile:user:%d", userID)
}

func encodeProfile(p domain.UserProfile, now time.Time) ([]byte, error) {
	return json.Marshal(cachedProfile{
		UserID:         p.UserID,
		Weights:        p.Weights,
		PriceTolerance: p.PriceTolerance,
		UpdatedAt:      p.UpdatedAt,
		CachedAt:       now,
	})
}

func decodeProfile(raw []byte) (domain.UserProfile, error) {
	var c cachedProfile
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.UserProfile{}, err
	}
	return domain.UserProfile{
		UserID:         c.UserID,
		Weights:        c.Weights,
		PriceTolerance: c.PriceTolerance,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}

// GetProfile returns false on a cache miss.
func (r *ProfileCache) GetProfile(ctx context.Context, userID uint) (domain.UserProfile, bool, error) {
	val, err := r.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.UserProfile{}, false, nil
		}
		return domain.UserProfile{}, false, fmt.Errorf("failed to get profile from Redis: %w", err)
	}

	profile, err := decodeProfile(val)
	if err != nil {
		return domain.UserProfile{}, false, fmt.Errorf("failed to unmarshal cached profile: %w", err)
	}

	return profile, true, nil
}

func (r *ProfileCache) SetProfile(ctx context.Context, profile domain.UserProfile) error {
	data, err := encodeProfile(profile, time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := r.client.Set(ctx, profileKey(profile.UserID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store profile in Redis: %w", err)
	}

	return nil
}

func (r *ProfileCache) DeleteProfile(ctx context.Context, userID uint) error {
	if err := r.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached profile: %w", err)
	}
	return nil
}
