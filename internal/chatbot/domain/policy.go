package domain

// GateMode selects how the relevance gate judges a retrieval hit.
type GateMode string

const (
	// GateThreshold accepts a hit whose distance is at or below the
	// configured threshold.
	GateThreshold GateMode = "threshold"
	// GateClassifier asks the generation API a binary question about
	// the user's query and parses its digit verdict.
	GateClassifier GateMode = "classifier"
	// GateAlways treats the top hit as relevant whenever one exists.
	GateAlways GateMode = "always"
)

// ParseGateMode maps a config string to a GateMode, defaulting to
// GateThreshold for anything unrecognized.
func ParseGateMode(s string) GateMode {
	switch GateMode(s) {
	case GateClassifier:
		return GateClassifier
	case GateAlways:
		return GateAlways
	default:
		return GateThreshold
	}
}

// Policy configures one answer-pipeline variant. The deployed service ran
// three near-identical pipelines (notice-scoped with a distance threshold,
// unscoped with a classifier gate, scoped with no gate); a Policy value
// expresses each of them over the same router.
type Policy struct {
	// Gate picks the relevance strategy.
	Gate GateMode
	// Threshold is the inclusive distance cutoff used by GateThreshold.
	Threshold float64
	// ScopeFilter restricts retrieval to the request's notice number
	// when one is supplied.
	ScopeFilter bool
	// FallbackOnNoMatch sends an empty retrieval into the
	// general-knowledge fallback instead of the fixed no-match apology.
	FallbackOnNoMatch bool
	// OffTopicMessage, when non-empty, is returned verbatim if the gate
	// rejects the query, instead of composing a fallback answer.
	OffTopicMessage string
}
