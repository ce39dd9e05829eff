package prompt

import (
	"fmt"
	"strings"
)

// Kind names one of the composer's prompt templates.
type Kind string

const (
	// KindGroundedQA answers strictly from retrieved notice content.
	KindGroundedQA Kind = "grounded_qa"
	// KindFallback answers from general knowledge with a mandatory
	// disclaimer as the first sentence.
	KindFallback Kind = "fallback"
	// KindSummary condenses a whole notice.
	KindSummary Kind = "summary"
	// KindRelevanceCheck is the binary domain classifier used by the
	// classifier gate.
	KindRelevanceCheck Kind = "relevance_check"
)

// SummaryFormat is a named output-format profile for the summary
// template. The service shipped with both at different times; which one
// a deployment uses is an explicit choice, not an accident.
type SummaryFormat string

const (
	// SummaryPlainText forbids markdown, same as the chat answers.
	SummaryPlainText SummaryFormat = "plain"
	// SummaryMarkdown requires markdown with emoji headers and bold
	// emphasis on key figures, for fronts that render it.
	SummaryMarkdown SummaryFormat = "markdown"
)

// ParseSummaryFormat maps a config string to a profile, defaulting to
// plain text.
func ParseSummaryFormat(s string) SummaryFormat {
	if SummaryFormat(s) == SummaryMarkdown {
		return SummaryMarkdown
	}
	return SummaryPlainText
}

// MissingVariableError reports a template slot with no bound value.
type MissingVariableError struct {
	Kind     Kind
	Variable string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("prompt %q: variable %q has no bound value", e.Kind, e.Variable)
}

// requiredVars lists the slots each template must have bound.
var requiredVars = map[Kind][]string{
	KindGroundedQA:     {"question", "context", "source_name"},
	KindFallback:       {"question"},
	KindSummary:        {"text"},
	KindRelevanceCheck: {"question"},
}

// Composer builds role-structured prompts for the chatbot. A Composer is
// stateless apart from its summary profile and is shared across requests.
type Composer struct {
	summaryFormat SummaryFormat
}

// NewComposer returns a composer using the given summary output profile.
func NewComposer(format SummaryFormat) *Composer {
	return &Composer{summaryFormat: format}
}

// Compose fills the template for kind and returns the system instruction
// and user content separately. Every prompt is built fresh per call and
// never cached.
func (c *Composer) Compose(kind Kind, vars map[string]string) (system, user string, err error) {
	for _, name := range requiredVars[kind] {
		if strings.TrimSpace(vars[name]) == "" {
			return "", "", &MissingVariableError{Kind: kind, Variable: name}
		}
	}

	switch kind {
	case KindGroundedQA:
		system = fmt.Sprintf(groundedSystem, vars["source_name"], vars["source_name"]) + plainTextRules + brevityRule
		user = fmt.Sprintf("내용:\n%s\n\n질문: %s", vars["context"], vars["question"])
	case KindFallback:
		system = fallbackDisclaimer + fallbackSystem + plainTextRules + brevityRule
		user = vars["question"]
	case KindSummary:
		system = summarySystem
		if c.summaryFormat == SummaryMarkdown {
			system += markdownRules
		} else {
			system += plainTextRules
		}
		user = vars["text"]
	case KindRelevanceCheck:
		system = classifierSystem
		user = fmt.Sprintf("질문: \"%s\"\n결과:", vars["question"])
	default:
		return "", "", fmt.Errorf("unknown prompt kind %q", kind)
	}
	return system, user, nil
}

// Join flattens a composed prompt into the single content block the
// generation API expects.
func Join(system, user string) string {
	return system + "\n\n" + user
}
