package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
)

// ExpandContext rebuilds a contiguous excerpt around the matched chunk:
// the match plus up to ContextRadius neighbors on each side, joined in
// ascending sequence order with a blank line between chunks. Windows at
// the start or end of a document simply come back shorter; ids the store
// does not hold are dropped without error.
func ExpandContext(ctx context.Context, store domain.Store, bestID string) (string, error) {
	prefix, seq, err := splitChunkID(bestID)
	if err != nil {
		return "", err
	}

	start := seq - ContextRadius
	if start < 1 {
		start = 1
	}
	end := seq + ContextRadius

	ids := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		ids = append(ids, fmt.Sprintf("%s_%d", prefix, i))
	}

	texts, err := store.FetchByIDs(ctx, ids)
	if err != nil {
		return "", err
	}

	// Join in requested order, not retrieval order.
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if text, ok := texts[id]; ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// splitChunkID splits an id on its last underscore into document prefix
// and 1-based sequence number.
func splitChunkID(id string) (string, int, error) {
	i := strings.LastIndex(id, "_")
	if i <= 0 || i == len(id)-1 {
		return "", 0, &domain.MalformedChunkIDError{ID: id}
	}
	seq, err := strconv.Atoi(id[i+1:])
	if err != nil || seq < 1 {
		return "", 0, &domain.MalformedChunkIDError{ID: id}
	}
	return id[:i], seq, nil
}
