package repository

import (
	"context"
	"fmt"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
)

// includeAll requests documents, metadata and distances in one round
// trip so downstream components never need a second query.
var includeAll = []string{"documents", "metadatas", "distances"}

// Collection implements domain.Store over one Chroma collection. It is
// created once at startup and shared read-only across requests.
type Collection struct {
	client *ChromaClient
	id     string
	embed  domain.EmbedFunc
}

// NewCollection wraps a resolved collection id with an embedding function.
func NewCollection(client *ChromaClient, id string, embed domain.EmbedFunc) *Collection {
	return &Collection{client: client, id: id, embed: embed}
}

// Client exposes the underlying store client for health checks.
func (c *Collection) Client() *ChromaClient {
	return c.client
}

// SimilaritySearch embeds query and returns the nearest chunk, or nil
// when the store has nothing at all.
func (c *Collection) SimilaritySearch(ctx context.Context, query string, topK int, filter map[string]any) (*domain.RetrievalResult, error) {
	if c == nil || c.client == nil {
		return nil, domain.ErrStoreUnavailable
	}
	vec, err := c.embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	res, err := c.client.Query(ctx, c.id, vec, topK, filter, includeAll)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	if len(res.IDs) == 0 || len(res.IDs[0]) == 0 {
		return nil, nil
	}
	out := &domain.RetrievalResult{ID: res.IDs[0][0]}
	if len(res.Documents) > 0 && len(res.Documents[0]) > 0 {
		out.Document = res.Documents[0][0]
	}
	if len(res.Metadatas) > 0 && len(res.Metadatas[0]) > 0 {
		out.Metadata = res.Metadatas[0][0]
	}
	if len(res.Distances) > 0 && len(res.Distances[0]) > 0 {
		out.Distance = res.Distances[0][0]
	}
	return out, nil
}

// FetchByIDs resolves chunk texts by exact id, silently dropping ids the
// store does not hold. Window expansion at corpus boundaries depends on
// that behavior.
func (c *Collection) FetchByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if c == nil || c.client == nil {
		return nil, domain.ErrStoreUnavailable
	}
	res, err := c.client.Get(ctx, c.id, ids, nil, []string{"documents"})
	if err != nil {
		return nil, fmt.Errorf("fetch by ids: %w", err)
	}
	out := make(map[string]string, len(res.IDs))
	for i, id := range res.IDs {
		if i < len(res.Documents) {
			out[id] = res.Documents[i]
		}
	}
	return out, nil
}

// FetchByMetadata returns the texts of chunks matching filter, capped at
// limit to bound what a single summarization prompt can carry.
func (c *Collection) FetchByMetadata(ctx context.Context, filter map[string]any, limit int) ([]string, error) {
	if c == nil || c.client == nil {
		return nil, domain.ErrStoreUnavailable
	}
	res, err := c.client.Get(ctx, c.id, nil, filter, []string{"documents"})
	if err != nil {
		return nil, fmt.Errorf("fetch by metadata: %w", err)
	}
	docs := res.Documents
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}
