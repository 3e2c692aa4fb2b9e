package search

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

// Options bound the orchestrator's retrieval widths and remote-call
// deadlines. Zero values fall back to the defaults below.
type Options struct {
	KnowledgeTopK int
	HistoryTopK   int
	RemoteTimeout time.Duration
}

const (
	defaultKnowledgeTopK = 8
	defaultHistoryTopK   = 6
	defaultRemoteTimeout = 30 * time.Second
)

// Orchestrator sequences one search request: classify, resolve scope,
// retrieve, assemble, stream the answer, then recommendations. Events are
// emitted strictly in stream order; intent is always first and done is last
// on every successful path.
type Orchestrator struct {
	router      *Router
	scopes      *ScopeResolver
	retriever   *Retriever
	assembler   *Assembler
	synthesizer *Synthesizer
	recommender *Recommender
	opts        Options
	log         zerolog.Logger
}

func NewOrchestrator(st store.Store, idx index.Index, embedder ai.Embedder, gen ai.Generator, classifier ai.Classifier, opts Options, log zerolog.Logger) *Orchestrator {
	if opts.KnowledgeTopK <= 0 {
		opts.KnowledgeTopK = defaultKnowledgeTopK
	}
	if opts.HistoryTopK <= 0 {
		opts.HistoryTopK = defaultHistoryTopK
	}
	if opts.RemoteTimeout <= 0 {
		opts.RemoteTimeout = defaultRemoteTimeout
	}

	scopes := NewScopeResolver(st)
	retriever := NewRetriever(embedder, idx)
	return &Orchestrator{
		router:      NewRouter(classifier, log),
		scopes:      scopes,
		retriever:   retriever,
		assembler:   NewAssembler(st),
		synthesizer: NewSynthesizer(gen),
		recommender: NewRecommender(scopes, retriever, st),
		opts:        opts,
		log:         log,
	}
}

// groundedProfile parameterizes the shared grounded path. Knowledge and
// history searches differ only in scope resolution, collection, filters,
// assembly and the answer profile.
type groundedProfile struct {
	collection   string
	topK         int
	resolveScope func(ctx context.Context, userID string) ([]string, error)
	filterByUser bool
	noResults    string
	assemble     func(ctx context.Context, userID string, chunks []Chunk) (*Assembled, error)
	streamAnswer func(ctx context.Context, query, contextBlock string, emit func(string) error) error
	excludeCited bool
}

func (o *Orchestrator) knowledgeProfile() groundedProfile {
	return groundedProfile{
		collection:   index.CollectionKnowledge,
		topK:         o.opts.KnowledgeTopK,
		resolveScope: o.scopes.KnowledgeScope,
		noResults:    NoKnowledgeResultsMessage,
		assemble: func(ctx context.Context, _ string, chunks []Chunk) (*Assembled, error) {
			return o.assembler.AssembleKnowledge(ctx, chunks)
		},
		streamAnswer: o.synthesizer.StreamKnowledge,
		excludeCited: true,
	}
}

func (o *Orchestrator) historyProfile() groundedProfile {
	return groundedProfile{
		collection:   index.CollectionSubmissions,
		topK:         o.opts.HistoryTopK,
		resolveScope: o.scopes.HistoryScope,
		filterByUser: true,
		noResults:    NoHistoryResultsMessage,
		assemble:     o.assembler.AssembleHistory,
		streamAnswer: o.synthesizer.StreamHistory,
	}
}

// Run executes one search for an already-resolved user. It returns an error
// only when the consumer is gone; every service-side failure is reported
// in-stream as an error event.
func (o *Orchestrator) Run(ctx context.Context, user *model.User, query string, emit EmitFunc) error {
	result := o.classify(ctx, query)
	if err := emit(Event{Type: EventIntent, Data: IntentPayload{Intent: result.Intent, Reasoning: result.Reasoning}}); err != nil {
		return err
	}

	switch result.Intent {
	case IntentOutOfScope:
		if err := emit(Event{Type: EventAnswerChunk, Data: AnswerChunkPayload{Text: OutOfScopeMessage}}); err != nil {
			return err
		}
		return o.done(emit)

	case IntentGeneralProfessional:
		if err := emit(Event{Type: EventAnswerChunk, Data: AnswerChunkPayload{Text: FallbackDisclaimer}}); err != nil {
			return err
		}
		if err := o.synthesizer.StreamFallback(ctx, query, o.answerEmitter(emit)); err != nil {
			return o.failStream(ctx, emit, err)
		}
		return o.done(emit)

	case IntentHistorySearch:
		return o.runGrounded(ctx, user, query, o.historyProfile(), emit)

	default:
		return o.runGrounded(ctx, user, query, o.knowledgeProfile(), emit)
	}
}

func (o *Orchestrator) runGrounded(ctx context.Context, user *model.User, query string, p groundedProfile, emit EmitFunc) error {
	scope, err := p.resolveScope(ctx, user.ID)
	if err != nil {
		return o.failStream(ctx, emit, err)
	}
	if len(scope) == 0 {
		return o.finishNoResults(emit, p.noResults)
	}

	req := RetrieveRequest{
		Query:      query,
		Collection: p.collection,
		Scope:      scope,
		TopK:       p.topK,
	}
	if p.filterByUser {
		req.UserID = user.ID
	} else {
		req.CompanyID = user.CompanyID
	}

	rctx, cancel := context.WithTimeout(ctx, o.opts.RemoteTimeout)
	chunks, err := o.retriever.Retrieve(rctx, req)
	cancel()
	if err != nil {
		return o.failStream(ctx, emit, err)
	}
	if len(chunks) == 0 {
		return o.finishNoResults(emit, p.noResults)
	}

	asm, err := p.assemble(ctx, user.ID, chunks)
	if err != nil {
		return o.failStream(ctx, emit, err)
	}
	if err := emit(Event{Type: EventCitations, Data: CitationsPayload{Citations: asm.Citations}}); err != nil {
		return err
	}

	if err := p.streamAnswer(ctx, query, asm.Context, o.answerEmitter(emit)); err != nil {
		return o.failStream(ctx, emit, err)
	}

	var exclude map[string]bool
	if p.excludeCited {
		exclude = make(map[string]bool, len(asm.Citations))
		for _, c := range asm.Citations {
			exclude[c.AssetID] = true
		}
	}
	if recs := o.tryRecommendations(ctx, query, user, exclude); len(recs) > 0 {
		if err := emit(Event{Type: EventRecommendations, Data: RecommendationsPayload{Recommendations: recs}}); err != nil {
			return err
		}
	}

	return o.done(emit)
}

func (o *Orchestrator) classify(ctx context.Context, query string) IntentResult {
	cctx, cancel := context.WithTimeout(ctx, o.opts.RemoteTimeout)
	defer cancel()
	return o.router.Classify(cctx, query)
}

// tryRecommendations isolates the optional stage: any error or panic is
// logged and the stage yields nothing.
func (o *Orchestrator) tryRecommendations(ctx context.Context, query string, user *model.User, exclude map[string]bool) (recs []model.Recommendation) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Warn().Interface("panic", r).Msg("recommendation stage panicked, omitting recommendations")
			recs = nil
		}
	}()

	rctx, cancel := context.WithTimeout(ctx, o.opts.RemoteTimeout)
	defer cancel()
	recs, err := o.recommender.Recommend(rctx, query, user.ID, user.CompanyID, exclude)
	if err != nil {
		o.log.Warn().Err(err).Str("userId", user.ID).Msg("recommendations failed, omitting")
		return nil
	}
	return recs
}

func (o *Orchestrator) answerEmitter(emit EmitFunc) func(string) error {
	return func(text string) error {
		return emit(Event{Type: EventAnswerChunk, Data: AnswerChunkPayload{Text: text}})
	}
}

func (o *Orchestrator) finishNoResults(emit EmitFunc, message string) error {
	if err := emit(Event{Type: EventAnswerChunk, Data: AnswerChunkPayload{Text: message}}); err != nil {
		return err
	}
	return o.done(emit)
}

func (o *Orchestrator) done(emit EmitFunc) error {
	return emit(Event{Type: EventDone, Data: DonePayload{Status: "complete"}})
}

// failStream reports a service-side failure in-stream and ends the response
// without a done event. A dead consumer wins over the error report.
func (o *Orchestrator) failStream(ctx context.Context, emit EmitFunc, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	o.log.Error().Err(err).Msg("search pipeline failed")
	return emit(Event{Type: EventError, Data: ErrorPayload{Message: "search failed, please try again"}})
}
