package corpus

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SetReader is the subset of redis.UniversalClient used to read a corpus set.
type SetReader interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// RedisSource reads names from the members of a Redis set.
// A missing key yields an empty list, which Redis reports as an empty set.
func RedisSource(client SetReader, key string) Source {
	return SourceFunc(func(ctx context.Context) ([]string, error) {
		names, err := client.SMembers(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("redis set %q: %w", key, err)
		}
		return names, nil
	})
}
