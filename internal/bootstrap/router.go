package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/Mrjeonmacho/HousingSubscription/internal/api/http"
	"github.com/Mrjeonmacho/HousingSubscription/internal/api/http/middleware"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
	chathttp "github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/http"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/prompt"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/repository"
	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string

	// Store is nil when Chroma was unreachable at startup; the chatbot
	// then serves its fixed apology instead of failing requests.
	Store *repository.Collection
	Cache *redis.Client
	LLM   domain.Generator

	ScopedPolicy  domain.Policy
	GeneralPolicy domain.Policy
	SummaryFormat prompt.SummaryFormat
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// The React front runs on a different origin.
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.Cache)
	healthHandler.RegisterRoutes(r)

	composer := prompt.NewComposer(dep.SummaryFormat)
	cache := repository.NewSummaryCache(dep.Cache)

	// A nil *Collection must stay a nil interface for the services'
	// store checks.
	var store domain.Store
	if dep.Store != nil {
		store = dep.Store
	}

	scoped := service.NewChatService(store, dep.LLM, composer, dep.ScopedPolicy)
	general := service.NewChatService(store, dep.LLM, composer, dep.GeneralPolicy)
	summaries := service.NewSummaryService(store, dep.LLM, composer, cache)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	handler := chathttp.NewHandler(scoped, general, summaries)
	handler.Register(api)

	return r
}
