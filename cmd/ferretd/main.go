// Command ferretd exposes the deep-research pipeline over HTTP.
//
// Configuration is via environment variables (a .env file is honored):
//
//	FERRET_PORT        - Server port (default: 8000)
//	FERRET_PROVIDER    - LLM provider: anthropic, openai, or google (default: anthropic)
//	FERRET_MODEL       - Model override (optional, uses provider default)
//	FERRET_MAX_RESULTS - Search results per run (default: 8)
//	ANTHROPIC_API_KEY  - Anthropic API key
//	OPENAI_API_KEY     - OpenAI API key
//	GOOGLE_API_KEY     - Google API key
//	TAVILY_API_KEY     - Tavily search API key (required)
//
// Usage:
//
//	FERRET_PROVIDER=anthropic go run ./cmd/ferretd
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spetersoncode/ferret"
	"github.com/spetersoncode/ferret/provider/anthropic"
	"github.com/spetersoncode/ferret/provider/google"
	"github.com/spetersoncode/ferret/provider/openai"
	"github.com/spetersoncode/ferret/search"
	"github.com/spetersoncode/ferret/workflow"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	completer, err := createCompleter(cfg)
	if err != nil {
		log.Fatalf("Failed to create completer: %v", err)
	}

	searcher := search.NewTavily(cfg.TavilyKey)
	pipeline := workflow.NewPipeline(completer, searcher,
		workflow.WithMaxResults(cfg.MaxResults),
	)

	handler := NewResearchHandler(pipeline)

	mux := http.NewServeMux()
	mux.Handle("/api/deep-research", corsMiddleware(handler))
	mux.HandleFunc("/health", healthHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // research runs are long; callers impose their own deadline
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("ferretd starting on :%s", cfg.Port)
	log.Printf("Provider: %s", cfg.Provider)
	log.Printf("Endpoint: POST http://localhost:%s/api/deep-research", cfg.Port)
	log.Printf("Health:   GET  http://localhost:%s/health", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped")
}

func createCompleter(cfg *Config) (ferret.Completer, error) {
	switch cfg.Provider {
	case "anthropic":
		var opts []anthropic.ClientOption
		if cfg.Model != "" {
			opts = append(opts, anthropic.WithModel(cfg.Model))
		}
		return anthropic.New(cfg.AnthropicKey, opts...), nil
	case "openai":
		var opts []openai.ClientOption
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		return openai.New(cfg.OpenAIKey, opts...), nil
	case "google":
		var opts []google.ClientOption
		if cfg.Model != "" {
			opts = append(opts, google.WithModel(cfg.Model))
		}
		return google.New(context.Background(), cfg.GoogleKey, opts...)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
