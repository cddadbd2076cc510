package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/user/profile-resolver/pkg/utils"
)

const seenKeyPrefix = "resolver:seen:"

// SeenRepoImpl provides a concrete implementation for the SeenRepository
// interface using Redis. Keys expire after the configured TTL, giving runs
// cross-process idempotence without growing forever.
type SeenRepoImpl struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSeenRepo creates a new instance of SeenRepoImpl.
func NewSeenRepo(client *redis.Client, ttl time.Duration) *SeenRepoImpl {
	return &SeenRepoImpl{client: client, ttl: ttl}
}

// generateKey creates a consistent Redis key for a given URL by hashing it.
func (r *SeenRepoImpl) generateKey(normalizedURL string) string {
	return fmt.Sprintf("%s%s", seenKeyPrefix, utils.HashURL(normalizedURL))
}

// Has checks whether the link was recorded before.
func (r *SeenRepoImpl) Has(ctx context.Context, normalizedURL string) (bool, error) {
	val, err := r.client.Exists(ctx, r.generateKey(normalizedURL)).Result()
	if err != nil {
		return false, err
	}
	return val == 1, nil
}

// Add marks the link as recorded with the configured expiry.
func (r *SeenRepoImpl) Add(ctx context.Context, normalizedURL string) error {
	return r.client.Set(ctx, r.generateKey(normalizedURL), "1", r.ttl).Err()
}
