package service

import (
	"context"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
)

// fakeStore implements domain.Store over in-memory fixtures.
type fakeStore struct {
	chunks       map[string]string
	searchResult *domain.RetrievalResult
	searchErr    error
	metaTexts    []string

	requestedIDs []string
	lastFilter   map[string]any
	lastLimit    int
}

func (f *fakeStore) SimilaritySearch(_ context.Context, _ string, _ int, filter map[string]any) (*domain.RetrievalResult, error) {
	f.lastFilter = filter
	return f.searchResult, f.searchErr
}

func (f *fakeStore) FetchByIDs(_ context.Context, ids []string) (map[string]string, error) {
	f.requestedIDs = append(f.requestedIDs, ids...)
	out := make(map[string]string)
	for _, id := range ids {
		if text, ok := f.chunks[id]; ok {
			out[id] = text
		}
	}
	return out, nil
}

func (f *fakeStore) FetchByMetadata(_ context.Context, filter map[string]any, limit int) ([]string, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	texts := f.metaTexts
	if limit > 0 && len(texts) > limit {
		texts = texts[:limit]
	}
	return texts, nil
}

// fakeGenerator records prompts and replays canned replies.
type fakeGenerator struct {
	replies []string
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, promptText string, _ *domain.GenerateOptions) string {
	f.prompts = append(f.prompts, promptText)
	reply := "답변입니다."
	if f.calls < len(f.replies) {
		reply = f.replies[f.calls]
	} else if len(f.replies) > 0 {
		reply = f.replies[len(f.replies)-1]
	}
	f.calls++
	return reply
}
