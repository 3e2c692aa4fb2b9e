package search

import "github.com/doadrianh/bigspring-ai-take-home/internal/model"

// Event types pushed over the search stream, in emission order.
const (
	EventIntent          = "intent"
	EventCitations       = "citations"
	EventAnswerChunk     = "answer_chunk"
	EventRecommendations = "recommendations"
	EventError           = "error"
	EventDone            = "done"
)

// Event is one frame of the ordered response stream.
type Event struct {
	Type string
	Data interface{}
}

// EmitFunc pushes one event to the consumer. A returned error means the
// consumer is gone; the orchestrator stops promptly without emitting more.
type EmitFunc func(Event) error

type IntentPayload struct {
	Intent    Intent `json:"intent"`
	Reasoning string `json:"reasoning"`
}

type CitationsPayload struct {
	Citations []model.Citation `json:"citations"`
}

type AnswerChunkPayload struct {
	Text string `json:"text"`
}

type RecommendationsPayload struct {
	Recommendations []model.Recommendation `json:"recommendations"`
}

type DonePayload struct {
	Status string `json:"status"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
