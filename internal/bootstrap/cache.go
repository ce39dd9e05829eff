package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenCache connects the summary cache. An empty addr disables caching;
// a failed ping is an error so the caller can choose to run uncached.
func OpenCache(ctx context.Context, addr string, pingTO time.Duration) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	if pingTO == 0 {
		pingTO = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	pctx, cancel := context.WithTimeout(ctx, pingTO)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
