package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyGuard remembers Idempotency-Key values for transaction posting.
// Key format: idem:<client-supplied key>
type IdempotencyGuard struct {
	client *redis.Client
}

// NewIdempotencyGuard creates an IdempotencyGuard wrapping the given Redis client.
func NewIdempotencyGuard(client *redis.Client) *IdempotencyGuard {
	return &IdempotencyGuard{client: client}
}

// Seen reports whether this key has already been honored.
func (g *IdempotencyGuard) Seen(ctx context.Context, key string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this key has been honored (expires after idempotencyTTL).
func (g *IdempotencyGuard) Mark(ctx context.Context, key string) error {
	return g.client.Set(ctx, g.key(key), "1", idempotencyTTL).Err()
}

func (g *IdempotencyGuard) key(k string) string {
	return "idem:" + k
}
