package service

import (
	"context"
	"strings"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/llm"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/prompt"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/repository"
)

const msgNoSummarySource = "죄송합니다. 해당 공고의 내용을 찾을 수 없어 요약을 드릴 수 없습니다."

// SummaryService produces whole-notice summaries: fetch every chunk of
// the notice (capped at ChunkLimit), concatenate, summarize. Results are
// cached per title since the front asks for the same summary on every
// notice-detail view.
type SummaryService struct {
	store    domain.Store
	llm      domain.Generator
	composer *prompt.Composer
	cache    *repository.SummaryCache
}

// NewSummaryService wires the summarize flow; cache may be nil.
func NewSummaryService(store domain.Store, generator domain.Generator, composer *prompt.Composer, cache *repository.SummaryCache) *SummaryService {
	return &SummaryService{store: store, llm: generator, composer: composer, cache: cache}
}

// Summarize returns the summary for the notice published under title.
// Like the chat path, runtime failures come back as user-facing text.
func (s *SummaryService) Summarize(ctx context.Context, title string) (string, error) {
	logger := NewLogger(ctx)

	if cached, ok := s.cache.Get(ctx, title); ok {
		logger.LogInfof("summarize", "cache hit title=%q", title)
		return cached, nil
	}

	if s.store == nil {
		logger.LogWarn("summarize", "vector store handle is absent")
		return msgStoreUnavailable, nil
	}

	texts, err := s.store.FetchByMetadata(ctx, map[string]any{"title": title}, ChunkLimit)
	if err != nil {
		logger.LogError("fetch_by_metadata", err)
		return msgStoreUnavailable, nil
	}
	if len(texts) == 0 {
		return msgNoSummarySource, nil
	}

	system, user, err := s.composer.Compose(prompt.KindSummary, map[string]string{
		"text": strings.Join(texts, "\n\n"),
	})
	if err != nil {
		return "", err
	}

	// nil options on purpose: the summary path lets the generation API
	// apply its server-side defaults.
	summary := s.llm.Generate(ctx, prompt.Join(system, user), nil)

	if !llm.IsFailureMessage(summary) {
		s.cache.Set(ctx, title, summary)
	}
	return summary, nil
}
