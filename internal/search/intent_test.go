package search

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai/aitest"
)

func TestRouterClassify(t *testing.T) {
	cases := []struct {
		name      string
		response  string
		err       error
		want      Intent
		reasoning string
	}{
		{
			name:      "plain json",
			response:  `{"intent": "HISTORY_SEARCH", "reasoning": "asks about own pitch"}`,
			want:      IntentHistorySearch,
			reasoning: "asks about own pitch",
		},
		{
			name:      "fenced json",
			response:  "```json\n{\"intent\": \"OUT_OF_SCOPE\", \"reasoning\": \"recipe request\"}\n```",
			want:      IntentOutOfScope,
			reasoning: "recipe request",
		},
		{
			name:     "classifier error falls back",
			err:      errors.New("model unavailable"),
			want:     IntentKnowledgeSearch,
		},
		{
			name:     "garbage falls back",
			response: "definitely KNOWLEDGE_SEARCH I think",
			want:     IntentKnowledgeSearch,
		},
		{
			name:      "unknown label falls back",
			response:  `{"intent": "SMALL_TALK", "reasoning": "greeting"}`,
			want:      IntentKnowledgeSearch,
			reasoning: "greeting",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			classifier := &aitest.Classifier{Response: tc.response, Err: tc.err}
			router := NewRouter(classifier, zerolog.Nop())

			got := router.Classify(context.Background(), "when did I mention pricing?")

			assert.Equal(t, tc.want, got.Intent)
			assert.Equal(t, tc.reasoning, got.Reasoning)
			assert.Equal(t, 1, classifier.Calls)
			assert.Equal(t, "when did I mention pricing?", classifier.LastInput)
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
