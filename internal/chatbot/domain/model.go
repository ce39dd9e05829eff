package domain

import "context"

// Chunk is one stored unit of notice text. IDs follow the
// <prefix>_<sequence> convention produced by ingestion: the prefix names
// the source notice and the sequence is the 1-based position within it.
type Chunk struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// RetrievalResult is the single best similarity match for a query.
// Distance is the store's L2-like distance: lower means more similar.
type RetrievalResult struct {
	ID       string
	Document string
	Distance float64
	Metadata map[string]any
}

// GenerateOptions tunes a single generation call. A nil options value
// means the generation API applies its own server-side defaults, which
// is what the summarization path relies on.
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int
}

// EmbedFunc turns query text into an embedding vector. The model behind
// it is loaded outside this package and shared read-only across requests.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// Store is the read-only view of the vector collection the pipeline
// retrieves from. Chunks are written by an out-of-process ingestion job;
// nothing here mutates them.
type Store interface {
	// SimilaritySearch embeds query and returns the nearest chunk,
	// optionally restricted to chunks whose metadata matches filter
	// exactly. Returns nil when the store has no match at all.
	SimilaritySearch(ctx context.Context, query string, topK int, filter map[string]any) (*RetrievalResult, error)

	// FetchByIDs resolves chunk texts by exact id. IDs absent from the
	// store are silently dropped from the result map.
	FetchByIDs(ctx context.Context, ids []string) (map[string]string, error)

	// FetchByMetadata returns the texts of chunks matching filter, at
	// most limit of them, in store order.
	FetchByMetadata(ctx context.Context, filter map[string]any, limit int) ([]string, error)
}

// Generator produces text from a composed prompt. Implementations never
// return an error: every failure is converted into user-facing text, so
// a chat turn always has something to show (see the LLM gateway).
type Generator interface {
	Generate(ctx context.Context, promptText string, opts *GenerateOptions) string
}
