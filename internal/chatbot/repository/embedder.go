package repository

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
)

// NewOpenAIEmbedder returns an EmbedFunc backed by an OpenAI-compatible
// embeddings endpoint. The deployment serves the Korean sentence
// transformer (jhgan/ko-sroberta-multitask) behind such an endpoint so
// the chatbot process never loads the model itself.
func NewOpenAIEmbedder(baseURL, apiKey, model string) domain.EmbedFunc {
	if apiKey == "" {
		apiKey = "not-needed"
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	client := openai.NewClientWithConfig(cfg)

	return func(ctx context.Context, text string) ([]float32, error) {
		resp, err := client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: openai.EmbeddingModel(model),
			Input: []string{text},
		})
		if err != nil {
			return nil, fmt.Errorf("create embedding: %w", err)
		}
		if len(resp.Data) == 0 {
			return nil, fmt.Errorf("embedding response has no data")
		}
		return resp.Data[0].Embedding, nil
	}
}
