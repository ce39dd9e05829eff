package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/prompt"
)

// Gate decides whether a retrieval hit is trustworthy enough to ground
// an answer on. The strategy comes from the pipeline policy.
type Gate struct {
	policy   domain.Policy
	llm      domain.Generator
	composer *prompt.Composer
}

// NewGate builds a gate for one pipeline variant.
func NewGate(policy domain.Policy, llm domain.Generator, composer *prompt.Composer) *Gate {
	return &Gate{policy: policy, llm: llm, composer: composer}
}

// Relevant evaluates the configured policy. A nil result is never
// relevant regardless of strategy.
func (g *Gate) Relevant(ctx context.Context, question string, result *domain.RetrievalResult) (bool, error) {
	if result == nil {
		return false, nil
	}
	switch g.policy.Gate {
	case domain.GateClassifier:
		system, user, err := g.composer.Compose(prompt.KindRelevanceCheck, map[string]string{
			"question": question,
		})
		if err != nil {
			return false, err
		}
		verdict := g.llm.Generate(ctx, prompt.Join(system, user), &domain.GenerateOptions{
			Temperature:     QATemperature,
			MaxOutputTokens: QAMaxOutputTokens,
		})
		return ParseClassifierVerdict(verdict), nil
	case domain.GateAlways:
		return true, nil
	default:
		// Inclusive at the threshold: a distance exactly at the cutoff
		// still grounds an answer.
		return result.Distance <= g.policy.Threshold, nil
	}
}

// ParseClassifierVerdict reads the classifier's free-text reply. The
// model is asked for a bare digit but may wrap it in prose, so the parse
// strips everything that is not a digit and tests for a "1". A reply
// with no digits at all is a rejection.
func ParseClassifierVerdict(reply string) bool {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, reply)
	return strings.Contains(digits, "1")
}
