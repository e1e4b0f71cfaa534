package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/KevinUnadkat/social-media-reply/internal/ai"
	"github.com/KevinUnadkat/social-media-reply/internal/config"
	"github.com/KevinUnadkat/social-media-reply/internal/httpapi"
	"github.com/KevinUnadkat/social-media-reply/internal/httpapi/handlers"
	"github.com/KevinUnadkat/social-media-reply/internal/reply"
	"github.com/KevinUnadkat/social-media-reply/internal/store/mongostore"
	"github.com/KevinUnadkat/social-media-reply/internal/store/rabbitmq"
	"github.com/KevinUnadkat/social-media-reply/pkg/log"
)

func main() {
	// .env is a local-dev convenience; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	log.Init(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	ctx := context.Background()

	store, err := mongostore.New(ctx, cfg.MongoURI, cfg.MongoDBName, cfg.MongoCollection)
	if err != nil {
		// Unreachable database is a degraded state, not a fatal one;
		// /health keeps reporting it until it recovers.
		log.Warnf("mongodb unavailable, persistence disabled: %v", err)
		store = &mongostore.Store{}
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			log.Warnf("mongodb disconnect: %v", err)
		}
	}()
	if !store.Configured() && cfg.MongoURI == "" {
		log.Warnf("MONGODB_URI is not set, replies will not be persisted")
	}

	var events handlers.EventPublisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			log.Warnf("rabbitmq unavailable, reply events disabled: %v", err)
		} else {
			events = pub
			defer pub.Close()
		}
	}

	// Provider registry (routed by AI_PROVIDER)
	reg := ai.NewRegistry()
	reg.Register("gemini", func(ctx context.Context, model string) (ai.Provider, error) {
		_ = ctx
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.GeminiModel
		}
		return ai.NewGeminiProvider("", cfg.GoogleAPIKey, m), nil
	})
	reg.Register("openai", func(ctx context.Context, model string) (ai.Provider, error) {
		_ = ctx
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OpenAIModel
		}
		return ai.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, m), nil
	})

	replySvc := reply.NewService(nil)
	if apiKeyFor(cfg) == "" {
		log.Warnf("no API key set for provider %q, reply generation disabled", cfg.AIProvider)
	} else {
		provider, err := reg.Get(ctx, cfg.AIProvider, "")
		if err != nil {
			log.Fatalf("unsupported AI_PROVIDER=%q: %v", cfg.AIProvider, err)
		}
		replySvc = reply.NewService(provider)
	}

	gin.SetMode(cfg.GinMode)
	h := handlers.NewHandler(replySvc, store, events)
	r := httpapi.NewRouter(h)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: r,
	}

	go func() {
		log.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("http server shutdown: %v", err)
	}
	log.Info("server stopped")
}

func apiKeyFor(cfg config.Config) string {
	switch strings.ToLower(cfg.AIProvider) {
	case "openai":
		return cfg.OpenAIAPIKey
	default:
		return cfg.GoogleAPIKey
	}
}
