package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GMS_URL", "https://gms.example.com/v1/generate")
	t.Setenv("GMS_KEY", "test-key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Chroma.Host)
	assert.Equal(t, 8000, cfg.Chroma.Port)
	assert.Equal(t, "happy_house_rag", cfg.Chroma.Collection)
	assert.Equal(t, "http://localhost:1234/v1", cfg.Embedder.BaseURL)
	assert.Equal(t, "jhgan/ko-sroberta-multitask", cfg.Embedder.Model)
	assert.Empty(t, cfg.Redis.Addr, "cache disabled unless configured")
	assert.Equal(t, "threshold", cfg.Chatbot.GateMode)
	assert.Equal(t, 0.6, cfg.Chatbot.Threshold)
	assert.Equal(t, "plain", cfg.Chatbot.SummaryFormat)
	assert.True(t, cfg.Chatbot.FallbackOnNoMatch)
	assert.Zero(t, cfg.Gemini.RequestsPerSecond)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GMS_URL", "https://gms.example.com/v1/generate")
	t.Setenv("GMS_KEY", "test-key")
	t.Setenv("GMS_RPS", "2.5")
	t.Setenv("CHROMA_PORT", "9000")
	t.Setenv("GATE_MODE", "classifier")
	t.Setenv("GATE_THRESHOLD", "1.2")
	t.Setenv("SUMMARY_FORMAT", "markdown")
	t.Setenv("FALLBACK_ON_NO_MATCH", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Gemini.RequestsPerSecond)
	assert.Equal(t, 9000, cfg.Chroma.Port)
	assert.Equal(t, "classifier", cfg.Chatbot.GateMode)
	assert.Equal(t, 1.2, cfg.Chatbot.Threshold)
	assert.Equal(t, "markdown", cfg.Chatbot.SummaryFormat)
	assert.False(t, cfg.Chatbot.FallbackOnNoMatch)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("GMS_URL", "https://gms.example.com/v1/generate")
	t.Setenv("GMS_KEY", "test-key")
	t.Setenv("CHROMA_PORT", "not-a-number")
	t.Setenv("GATE_THRESHOLD", "loose")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Chroma.Port)
	assert.Equal(t, 0.6, cfg.Chatbot.Threshold)
}

func TestValidateRequiresGateway(t *testing.T) {
	t.Setenv("GMS_URL", "")
	t.Setenv("GMS_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "GMS_URL")

	t.Setenv("GMS_URL", "https://gms.example.com/v1/generate")
	_, err = Load()
	assert.ErrorContains(t, err, "GMS_KEY")
}
