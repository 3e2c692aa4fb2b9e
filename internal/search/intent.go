package search

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai"
)

// Intent is the routed query category.
type Intent string

const (
	IntentKnowledgeSearch     Intent = "KNOWLEDGE_SEARCH"
	IntentHistorySearch       Intent = "HISTORY_SEARCH"
	IntentGeneralProfessional Intent = "GENERAL_PROFESSIONAL"
	IntentOutOfScope          Intent = "OUT_OF_SCOPE"
)

// IntentResult is the classifier verdict for one query.
type IntentResult struct {
	Intent    Intent
	Reasoning string
}

// Router classifies raw queries into one of the four intents. Classification
// never fails a request: any classifier error or unparseable reply falls back
// to KNOWLEDGE_SEARCH.
type Router struct {
	classifier ai.Classifier
	log        zerolog.Logger
}

func NewRouter(classifier ai.Classifier, log zerolog.Logger) *Router {
	return &Router{classifier: classifier, log: log}
}

func (r *Router) Classify(ctx context.Context, query string) IntentResult {
	raw, err := r.classifier.Complete(ctx, classifierInstructions, query)
	if err != nil {
		r.log.Warn().Err(err).Msg("intent classification failed, defaulting to knowledge search")
		return IntentResult{Intent: IntentKnowledgeSearch}
	}

	var parsed struct {
		Intent    string `json:"intent"`
		Reasoning string `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		r.log.Warn().Err(err).Str("raw", raw).Msg("unparseable classifier reply, defaulting to knowledge search")
		return IntentResult{Intent: IntentKnowledgeSearch}
	}

	switch Intent(parsed.Intent) {
	case IntentKnowledgeSearch, IntentHistorySearch, IntentGeneralProfessional, IntentOutOfScope:
		return IntentResult{Intent: Intent(parsed.Intent), Reasoning: parsed.Reasoning}
	default:
		r.log.Warn().Str("intent", parsed.Intent).Msg("unknown intent label, defaulting to knowledge search")
		return IntentResult{Intent: IntentKnowledgeSearch, Reasoning: parsed.Reasoning}
	}
}

// stripCodeFences removes a surrounding markdown code fence if the model
// wrapped its JSON in one.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
