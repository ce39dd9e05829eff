package main

import (
	"context"
	"log"

	"github.com/Mrjeonmacho/HousingSubscription/config"
	"github.com/Mrjeonmacho/HousingSubscription/internal/bootstrap"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/llm"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/prompt"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/repository"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	embed := repository.NewOpenAIEmbedder(cfg.Embedder.BaseURL, cfg.Embedder.APIKey, cfg.Embedder.Model)

	store, err := bootstrap.OpenCollection(ctx, bootstrap.StoreOptions{
		Host:       cfg.Chroma.Host,
		Port:       cfg.Chroma.Port,
		Collection: cfg.Chroma.Collection,
	}, embed)
	if err != nil {
		// Degraded start: chat serves its fixed apology until the store
		// comes back and the process is restarted.
		log.Printf("chroma unavailable, starting degraded: %v", err)
		store = nil
	}

	cache, err := bootstrap.OpenCache(ctx, cfg.Redis.Addr, 0)
	if err != nil {
		log.Printf("redis unavailable, summaries run uncached: %v", err)
		cache = nil
	}

	gemini := llm.NewGemini(cfg.Gemini.URL, cfg.Gemini.Key).
		WithRateLimit(cfg.Gemini.RequestsPerSecond, 3)

	scopedPolicy := domain.Policy{
		Gate:              domain.ParseGateMode(cfg.Chatbot.GateMode),
		Threshold:         cfg.Chatbot.Threshold,
		ScopeFilter:       true,
		FallbackOnNoMatch: cfg.Chatbot.FallbackOnNoMatch,
	}
	generalPolicy := domain.Policy{
		Gate:            domain.GateClassifier,
		OffTopicMessage: service.MsgOffTopic,
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   "housing-chatbot",
		Version:       cfg.App.Version,
		Store:         store,
		Cache:         cache,
		LLM:           gemini,
		ScopedPolicy:  scopedPolicy,
		GeneralPolicy: generalPolicy,
		SummaryFormat: prompt.ParseSummaryFormat(cfg.Chatbot.SummaryFormat),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
