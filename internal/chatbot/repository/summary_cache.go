package repository

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	summaryKeyPrefix = "chatbot:summary:" // chatbot:summary:{title}
	summaryTTL       = 24 * time.Hour
)

// SummaryCache is a read-through Redis cache for notice summaries. The
// front requests the AI summary on every notice-detail view, so caching
// saves a full fetch-and-generate round per view. A nil client disables
// the cache without changing caller behavior.
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache wraps a Redis client; client may be nil.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary for title, if any.
func (c *SummaryCache) Get(ctx context.Context, title string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, summaryKeyPrefix+title).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		// Cache trouble must never fail a summary request.
		log.Printf("[warn] summary cache get failed: %v", err)
		return "", false
	}
	return val, true
}

// Set stores a summary for title with the cache TTL.
func (c *SummaryCache) Set(ctx context.Context, title, summary string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, summaryKeyPrefix+title, summary, summaryTTL).Err(); err != nil {
		log.Printf("[warn] summary cache set failed: %v", err)
	}
}
