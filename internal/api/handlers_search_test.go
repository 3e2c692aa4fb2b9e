package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai/aitest"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index/indextest"
	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/search"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store/storetest"
)

type stubRunner struct {
	events []search.Event
	err    error
	user   *model.User
	query  string
}

func (s *stubRunner) Run(ctx context.Context, user *model.User, query string, emit search.EmitFunc) error {
	s.user = user
	s.query = query
	for _, e := range s.events {
		if err := emit(e); err != nil {
			return err
		}
	}
	return s.err
}

func searchFixture() (*storetest.Fake, *stubRunner, *SearchHandler) {
	st := storetest.NewFake()
	st.UserByID["u1"] = &model.User{ID: "u1", Username: "maya", CompanyID: "c1"}
	runner := &stubRunner{
		events: []search.Event{
			{Type: search.EventIntent, Data: search.IntentPayload{Intent: search.IntentKnowledgeSearch, Reasoning: "product question"}},
			{Type: search.EventAnswerChunk, Data: search.AnswerChunkPayload{Text: "hello"}},
			{Type: search.EventDone, Data: search.DonePayload{Status: "complete"}},
		},
	}
	return st, runner, NewSearchHandler(st, runner)
}

func postSearch(h *SearchHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/search", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.HandleSearch(rr, req)
	return rr
}

func TestHandleSearchStreamsEvents(t *testing.T) {
	_, runner, h := searchFixture()

	rr := postSearch(h, `{"user_id": "u1", "query": "what is the dosage?"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	body := rr.Body.String()
	frames := strings.Split(strings.TrimSuffix(body, "\n\n"), "\n\n")
	require.Len(t, frames, 3)
	assert.Equal(t, "event: intent\ndata: {\"intent\":\"KNOWLEDGE_SEARCH\",\"reasoning\":\"product question\"}", frames[0])
	assert.Equal(t, "event: answer_chunk\ndata: {\"text\":\"hello\"}", frames[1])
	assert.Equal(t, "event: done\ndata: {\"status\":\"complete\"}", frames[2])

	assert.Equal(t, "u1", runner.user.ID)
	assert.Equal(t, "what is the dosage?", runner.query)
}

func TestHandleSearchUnknownUser(t *testing.T) {
	_, _, h := searchFixture()

	rr := postSearch(h, `{"user_id": "ghost", "query": "anything"}`)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "User not found")
}

func TestHandleSearchValidation(t *testing.T) {
	_, runner, h := searchFixture()

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing user", `{"query": "q"}`},
		{"missing query", `{"user_id": "u1"}`},
		{"blank query", `{"user_id": "u1", "query": "   "}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postSearch(h, tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
	assert.Nil(t, runner.user)
}

// End to end through the real orchestrator with in-memory dependencies.
func TestHandleSearchFullPipeline(t *testing.T) {
	st := storetest.NewFake()
	st.UserByID["u1"] = &model.User{ID: "u1", Username: "maya", CompanyID: "c1"}
	st.PlayIDsByUser["u1"] = []string{"p1"}
	st.PlayByID["p1"] = &model.Play{ID: "p1", CompanyID: "c1", Title: "Product Training"}
	st.WatchAssetsByPlay["p1"] = []string{"a1"}
	st.AssetByID["a1"] = &model.Asset{ID: "a1", Type: "pdf", CompanyID: "c1", FileName: "guide.json"}

	idx := indextest.NewFake()
	idx.HitsByCollection[index.CollectionKnowledge] = []index.Hit{
		{Text: "Dosage is 40mg.", Distance: 0.1, Meta: index.ChunkMeta{AssetID: "a1", CompanyID: "c1", ChunkType: "text", SourceFile: "guide.json", Page: 1}},
	}

	orch := search.NewOrchestrator(
		st, idx,
		&aitest.Embedder{},
		&aitest.Generator{Chunks: []string{"It is 40mg [Source 1]."}},
		&aitest.Classifier{Response: `{"intent": "KNOWLEDGE_SEARCH", "reasoning": "ok"}`},
		search.Options{},
		zerolog.Nop(),
	)
	h := NewSearchHandler(st, orch)

	rr := postSearch(h, `{"user_id": "u1", "query": "dosage?"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	var types []string
	for _, frame := range strings.Split(body, "\n\n") {
		if strings.HasPrefix(frame, "event: ") {
			types = append(types, strings.TrimPrefix(strings.SplitN(frame, "\n", 2)[0], "event: "))
		}
	}
	assert.Equal(t, []string{"intent", "citations", "answer_chunk", "done"}, types)
	assert.Contains(t, body, `"source_name":"guide"`)
}
