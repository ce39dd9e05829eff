package service

// Pipeline limits and tuning shared across the chatbot services.
const (
	// ChunkLimit caps how many chunks feed one summarization prompt.
	ChunkLimit = 15

	// ContextRadius is how many neighbor chunks on each side of a match
	// join the answer context (a 5-chunk window in the common case).
	ContextRadius = 2

	// DefaultThreshold is the inclusive distance cutoff the threshold
	// gate ships with. Deployments override it via GATE_THRESHOLD.
	DefaultThreshold = 0.6

	// QATemperature biases answers toward determinism.
	QATemperature = 0.1

	// QAMaxOutputTokens caps answer length on the Q&A path.
	QAMaxOutputTokens = 3000
)
