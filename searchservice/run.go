package searchservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai/openai"
	"github.com/doadrianh/bigspring-ai-take-home/internal/api"
	"github.com/doadrianh/bigspring-ai-take-home/internal/config"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index/weaviate"
	"github.com/doadrianh/bigspring-ai-take-home/internal/logger"
	"github.com/doadrianh/bigspring-ai-take-home/internal/search"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store/postgres"
)

// Run starts the knowledge search HTTP server and blocks until shutdown or
// error.
func Run() error {
	log := logger.New("search-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Str("weaviate_url", cfg.WeaviateURL).
		Str("embed_model", cfg.EmbedModel).
		Str("classifier_model", cfg.ClassifierModel).
		Str("answer_model", cfg.AnswerModel).
		Msg("Knowledge search service starting")

	ctx, stop := newServerContext()
	defer stop()

	st, idx, provider, err := initDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}

	orch := search.NewOrchestrator(st, idx, provider, provider, provider, search.Options{
		KnowledgeTopK: cfg.KnowledgeTopK,
		HistoryTopK:   cfg.HistoryTopK,
		RemoteTimeout: time.Duration(cfg.RemoteTimeoutSeconds) * time.Second,
	}, log)

	router := api.NewRouter(st, idx, orch)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies constructs the store, vector index and model provider,
// failing fast on anything unreachable at startup.
func initDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, index.Index, *openai.Provider, error) {
	db, err := postgres.Open(cfg.PostgresDSN)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Postgres unavailable")
		return nil, nil, nil, err
	}
	st := postgres.NewWithDB(db)

	idx, err := weaviate.New(cfg.WeaviateURL)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Weaviate client unavailable")
		return nil, nil, nil, err
	}
	if err := weaviate.Bootstrap(ctx, cfg.WeaviateURL); err != nil {
		log.Error().Stack().Err(err).Msg("Weaviate schema bootstrap failed")
		return nil, nil, nil, err
	}

	provider, err := openai.NewProvider(openai.Config{
		BaseURL:         cfg.OpenAIBaseURL,
		APIKey:          cfg.OpenAIAPIKey,
		EmbedModel:      cfg.EmbedModel,
		ClassifierModel: cfg.ClassifierModel,
		AnswerModel:     cfg.AnswerModel,
	})
	if err != nil {
		log.Error().Stack().Err(err).Msg("Model provider unavailable")
		return nil, nil, nil, err
	}
	return st, idx, provider, nil
}

// newHTTPServer builds the server. WriteTimeout stays zero: answer streams
// are open-ended and a fixed write deadline would cut long generations off.
func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on
// SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
