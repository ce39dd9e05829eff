package service

import (
	"context"
	"errors"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/prompt"
)

// Fixed user-facing texts carried from the deployed 서울집사 service.
const (
	msgStoreUnavailable = "죄송합니다. 현재 데이터베이스에 연결할 수 없어 답변을 드릴 수 없습니다."
	msgNoMatch          = "죄송합니다. 해당 질문과 관련된 공고 정보를 찾을 수 없습니다."
	unknownSourceName   = "알 수 없는 공고"
)

// MsgOffTopic is the fixed refusal the classifier-gated pipeline uses
// for questions outside the housing domain. Exported because it is
// policy configuration, not router logic.
const MsgOffTopic = "죄송합니다. 저는 서울시 주거 정책, 주택 공급, 청약 관련 질문에 대해서만 답변드릴 수 있습니다. 관련 질문을 해주시겠어요?"

// ChatService runs the retrieval-and-answer pipeline for one configured
// variant. Everything it touches per request is request-scoped; the
// store handle, generator and composer are shared read-only.
type ChatService struct {
	store    domain.Store
	llm      domain.Generator
	composer *prompt.Composer
	gate     *Gate
	policy   domain.Policy
}

// NewChatService wires a pipeline variant. store may be nil when the
// vector store was unreachable at startup; the service then answers with
// a fixed apology without contacting the generation API.
func NewChatService(store domain.Store, llm domain.Generator, composer *prompt.Composer, policy domain.Policy) *ChatService {
	return &ChatService{
		store:    store,
		llm:      llm,
		composer: composer,
		gate:     NewGate(policy, llm, composer),
		policy:   policy,
	}
}

// Answer resolves one question. scopeKey restricts retrieval to a single
// notice when the policy filters by scope; empty means whole-corpus
// search. The returned error is reserved for hard failures (malformed
// chunk ids, unbound template slots); every runtime condition becomes
// plain chat text instead.
func (s *ChatService) Answer(ctx context.Context, question, scopeKey string) (string, error) {
	logger := NewLogger(ctx)

	if s.store == nil {
		logger.LogWarn("answer", "vector store handle is absent")
		return msgStoreUnavailable, nil
	}

	var filter map[string]any
	if s.policy.ScopeFilter && scopeKey != "" {
		filter = map[string]any{"noticeNo": scopeKey}
	}

	result, err := s.store.SimilaritySearch(ctx, question, 1, filter)
	if err != nil {
		logger.LogError("similarity_search", err)
		return msgStoreUnavailable, nil
	}

	if result == nil {
		if s.policy.FallbackOnNoMatch {
			return s.fallback(ctx, question)
		}
		return msgNoMatch, nil
	}

	relevant, err := s.gate.Relevant(ctx, question, result)
	if err != nil {
		return "", err
	}
	if !relevant {
		if s.policy.OffTopicMessage != "" {
			return s.policy.OffTopicMessage, nil
		}
		return s.fallback(ctx, question)
	}

	contextText, err := ExpandContext(ctx, s.store, result.ID)
	if err != nil {
		var malformed *domain.MalformedChunkIDError
		if errors.As(err, &malformed) {
			// Data-integrity problem from ingestion; must reach
			// operators, not the chat window.
			logger.LogError("expand_context", err)
			return "", err
		}
		logger.LogError("expand_context", err)
		return msgStoreUnavailable, nil
	}

	system, user, err := s.composer.Compose(prompt.KindGroundedQA, map[string]string{
		"question":    question,
		"context":     contextText,
		"source_name": s.resolveSource(result, scopeKey),
	})
	if err != nil {
		return "", err
	}
	return s.llm.Generate(ctx, prompt.Join(system, user), qaOptions()), nil
}

// fallback composes the general-knowledge answer with its mandatory
// disclaimer.
func (s *ChatService) fallback(ctx context.Context, question string) (string, error) {
	system, user, err := s.composer.Compose(prompt.KindFallback, map[string]string{
		"question": question,
	})
	if err != nil {
		return "", err
	}
	return s.llm.Generate(ctx, prompt.Join(system, user), qaOptions()), nil
}

// resolveSource picks the citation name: the mapped scope key when the
// request was notice-scoped, otherwise whatever source the matched
// chunk's metadata carries.
func (s *ChatService) resolveSource(result *domain.RetrievalResult, scopeKey string) string {
	if scopeKey != "" {
		return SourceName(scopeKey)
	}
	if result.Metadata != nil {
		if v, ok := result.Metadata["source"].(string); ok && v != "" {
			return v
		}
	}
	return unknownSourceName
}

func qaOptions() *domain.GenerateOptions {
	return &domain.GenerateOptions{
		Temperature:     QATemperature,
		MaxOutputTokens: QAMaxOutputTokens,
	}
}
