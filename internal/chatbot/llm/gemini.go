package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/domain"
)

// RequestTimeout bounds a single generation call.
const RequestTimeout = 30 * time.Second

// Soft-failure texts returned in place of model output. The chat front
// shows whatever string comes back, so every failure mode has to read
// like an answer.
const (
	msgEmptyResponse   = "API 응답이 비어있습니다. 다시 시도해주세요."
	msgFailurePrefix   = "답변 생성 중"
	msgHTTPErrorFmt    = "답변 생성 중 오류가 발생했습니다. (HTTP 상태 코드: %d)"
	msgUnexpectedError = "답변 생성 중 예상치 못한 오류가 발생했습니다: %v"
)

// GeminiClient calls the external generation API. Each call is attempted
// exactly once; callers needing resilience wrap it themselves.
type GeminiClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewGemini creates a gateway against the configured endpoint.
func NewGemini(endpoint, apiKey string) *GeminiClient {
	return &GeminiClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// WithRateLimit caps sustained calls at rps with the given burst. Zero
// or negative rps leaves the client unlimited.
func (c *GeminiClient) WithRateLimit(rps float64, burst int) *GeminiClient {
	if rps > 0 {
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return c
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends promptText as a single content block and returns the
// first candidate's text. It never returns an error: HTTP failures,
// transport failures and empty bodies all come back as user-facing text,
// so a chat turn always has something to show.
func (c *GeminiClient) Generate(ctx context.Context, promptText string, opts *domain.GenerateOptions) string {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Sprintf(msgUnexpectedError, err)
		}
	}

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: promptText}}}},
	}
	if opts != nil {
		body.GenerationConfig = &generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxOutputTokens,
		}
	}
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Sprintf(msgUnexpectedError, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return fmt.Sprintf(msgUnexpectedError, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Sprintf(msgUnexpectedError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Sprintf(msgHTTPErrorFmt, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Sprintf(msgUnexpectedError, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return msgEmptyResponse
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
}

// IsFailureMessage reports whether text is one of the gateway's
// soft-failure messages rather than model output. Callers use it to keep
// failures out of caches.
func IsFailureMessage(text string) bool {
	return text == msgEmptyResponse || strings.HasPrefix(text, msgFailurePrefix)
}
