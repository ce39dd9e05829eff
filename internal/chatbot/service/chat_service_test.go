package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/prompt"
)

func scopedPolicy() domain.Policy {
	return domain.Policy{
		Gate:              domain.GateThreshold,
		Threshold:         0.6,
		ScopeFilter:       true,
		FallbackOnNoMatch: true,
	}
}

func TestAnswerStoreDown(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewChatService(nil, gen, prompt.NewComposer(prompt.SummaryPlainText), scopedPolicy())

	got, err := svc.Answer(context.Background(), "보증금이 얼마인가요?", "2024-0468")

	require.NoError(t, err)
	assert.Equal(t, msgStoreUnavailable, got)
	assert.Zero(t, gen.calls, "generation API must not be contacted when the store is down")
}

func TestAnswerScopesSearchToNotice(t *testing.T) {
	store := &fakeStore{
		chunks:       map[string]string{"2024-0468_1": "보증금은 500만원입니다."},
		searchResult: &domain.RetrievalResult{ID: "2024-0468_1", Distance: 0.2},
	}
	gen := &fakeGenerator{replies: []string{"보증금은 500만원입니다."}}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), scopedPolicy())

	got, err := svc.Answer(context.Background(), "보증금이 얼마인가요?", "2024-0468")

	require.NoError(t, err)
	assert.Equal(t, "보증금은 500만원입니다.", got)
	require.NotNil(t, store.lastFilter)
	assert.Equal(t, "2024-0468", store.lastFilter["noticeNo"])
}

func TestAnswerGroundedPromptCarriesWindowAndSource(t *testing.T) {
	store := &fakeStore{
		chunks: map[string]string{
			"2024-0468_3": "셋째 단락",
			"2024-0468_4": "넷째 단락",
			"2024-0468_5": "다섯째 단락",
			"2024-0468_6": "여섯째 단락",
			"2024-0468_7": "일곱째 단락",
		},
		searchResult: &domain.RetrievalResult{ID: "2024-0468_5", Distance: 0.3},
	}
	gen := &fakeGenerator{}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), scopedPolicy())

	_, err := svc.Answer(context.Background(), "신청 자격이 어떻게 되나요?", "2024-0468")

	require.NoError(t, err)
	require.Equal(t, 1, gen.calls)
	p := gen.prompts[0]
	assert.Contains(t, p, "셋째 단락\n\n넷째 단락\n\n다섯째 단락\n\n여섯째 단락\n\n일곱째 단락")
	assert.Contains(t, p, "청년안심주택(공공임대) 1차 입주자 모집공고")
	assert.Contains(t, p, "신청 자격이 어떻게 되나요?")
}

func TestAnswerNoMatchFixedMessage(t *testing.T) {
	policy := scopedPolicy()
	policy.FallbackOnNoMatch = false
	store := &fakeStore{}
	gen := &fakeGenerator{}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), policy)

	got, err := svc.Answer(context.Background(), "질문", "2024-0468")

	require.NoError(t, err)
	assert.Equal(t, msgNoMatch, got)
	assert.Zero(t, gen.calls)
}

func TestAnswerNoMatchFallsBack(t *testing.T) {
	store := &fakeStore{}
	gen := &fakeGenerator{replies: []string{"일반 지식 답변"}}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), scopedPolicy())

	got, err := svc.Answer(context.Background(), "전세자금대출 금리가 궁금해요", "")

	require.NoError(t, err)
	assert.Equal(t, "일반 지식 답변", got)
	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], "정확성이 떨어질 수 있습니다")
	assert.Contains(t, gen.prompts[0], "전세자금대출 금리가 궁금해요")
}

func TestAnswerDistantMatchFallsBack(t *testing.T) {
	store := &fakeStore{
		chunks:       map[string]string{"2024-0468_1": "본문"},
		searchResult: &domain.RetrievalResult{ID: "2024-0468_1", Distance: 0.95},
	}
	gen := &fakeGenerator{replies: []string{"일반 지식 답변"}}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), scopedPolicy())

	got, err := svc.Answer(context.Background(), "질문", "2024-0468")

	require.NoError(t, err)
	assert.Equal(t, "일반 지식 답변", got)
	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], "정확성이 떨어질 수 있습니다")
}

func TestAnswerClassifierRejectsOffTopic(t *testing.T) {
	policy := domain.Policy{
		Gate:              domain.GateClassifier,
		FallbackOnNoMatch: true,
		OffTopicMessage:   MsgOffTopic,
	}
	store := &fakeStore{
		chunks:       map[string]string{"P_1": "본문"},
		searchResult: &domain.RetrievalResult{ID: "P_1", Distance: 0.1},
	}
	gen := &fakeGenerator{replies: []string{"0"}}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), policy)

	got, err := svc.Answer(context.Background(), "오늘 점심 메뉴 추천해줘", "")

	require.NoError(t, err)
	assert.Equal(t, MsgOffTopic, got)
	assert.Equal(t, 1, gen.calls, "only the classifier call, no answer generation")
}

func TestAnswerPassesGatewayFailureTextThrough(t *testing.T) {
	store := &fakeStore{
		chunks:       map[string]string{"P_1": "본문"},
		searchResult: &domain.RetrievalResult{ID: "P_1", Distance: 0.2},
	}
	failure := "답변 생성 중 오류가 발생했습니다. (HTTP 상태 코드: 500)"
	gen := &fakeGenerator{replies: []string{failure}}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), scopedPolicy())

	got, err := svc.Answer(context.Background(), "질문", "")

	require.NoError(t, err)
	assert.Equal(t, failure, got)
}

func TestAnswerMalformedChunkIDIsHardError(t *testing.T) {
	store := &fakeStore{
		searchResult: &domain.RetrievalResult{ID: "brokenid", Distance: 0.2},
	}
	gen := &fakeGenerator{}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), scopedPolicy())

	got, err := svc.Answer(context.Background(), "질문", "2024-0468")

	var malformed *domain.MalformedChunkIDError
	require.ErrorAs(t, err, &malformed)
	assert.Empty(t, got)
	assert.Zero(t, gen.calls)
}

func TestResolveSourceUnscopedUsesMetadata(t *testing.T) {
	store := &fakeStore{
		chunks: map[string]string{"P_1": "본문"},
		searchResult: &domain.RetrievalResult{
			ID:       "P_1",
			Distance: 0.2,
			Metadata: map[string]any{"source": "행복주택 2차 입주자 모집공고"},
		},
	}
	gen := &fakeGenerator{}
	policy := domain.Policy{Gate: domain.GateAlways, FallbackOnNoMatch: true}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), policy)

	_, err := svc.Answer(context.Background(), "질문", "")

	require.NoError(t, err)
	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], "행복주택 2차 입주자 모집공고")
}

func TestResolveSourceUnknownFallback(t *testing.T) {
	store := &fakeStore{
		chunks:       map[string]string{"P_1": "본문"},
		searchResult: &domain.RetrievalResult{ID: "P_1", Distance: 0.2},
	}
	gen := &fakeGenerator{}
	policy := domain.Policy{Gate: domain.GateAlways, FallbackOnNoMatch: true}
	svc := NewChatService(store, gen, prompt.NewComposer(prompt.SummaryPlainText), policy)

	_, err := svc.Answer(context.Background(), "질문", "")

	require.NoError(t, err)
	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], unknownSourceName)
}
