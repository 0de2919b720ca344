package sections

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"mise/internal/platform/redis"
)

// RedisStore keeps section toggle overrides in a Redis hash per venue, so
// every app instance sees a toggle immediately after it is flipped.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps the shared Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func venueKey(venueID uuid.UUID) string {
	return "sections:" + venueID.String()
}

func (s *RedisStore) Overrides(ctx context.Context, venueID uuid.UUID) (map[string]bool, error) {
	raw, err := s.client.Raw().HGetAll(ctx, venueKey(venueID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read section overrides: %w", err)
	}

	out := make(map[string]bool, len(raw))
	for code, v := range raw {
		out[code] = v == "1"
	}
	return out, nil
}

func (s *RedisStore) SetOverride(ctx context.Context, venueID uuid.UUID, sectionCode string, enabled bool) error {
	v := "0"
	if enabled {
		v = "1"
	}
	if err := s.client.Raw().HSet(ctx, venueKey(venueID), sectionCode, v).Err(); err != nil {
		return fmt.Errorf("write section override: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearOverride(ctx context.Context, venueID uuid.UUID, sectionCode string) error {
	if err := s.client.Raw().HDel(ctx, venueKey(venueID), sectionCode).Err(); err != nil {
		return fmt.Errorf("clear section override: %w", err)
	}
	return nil
}
