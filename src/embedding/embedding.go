// Package embedding builds the shared embedding function used by both
// ingestion and querying. It is constructed once at process start; a
// construction failure leaves the service without an index rather than
// crashing it.
package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/philippgille/chromem-go"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Config selects the embedding provider. "ollama" talks to a local
// Ollama server; "openai" talks to any OpenAI-compatible endpoint.
type Config struct {
	Provider string
	BaseURL  string
	APIKey   string
	Model    string
}

// NewFunc returns an embedding function mapping a text span to a
// fixed-dimension vector.
func NewFunc(cfg Config) (chromem.EmbeddingFunc, error) {
	var client embeddings.EmbedderClient
	var err error

	switch strings.ToLower(cfg.Provider) {
	case "ollama":
		client, err = ollama.New(
			ollama.WithServerURL(cfg.BaseURL),
			ollama.WithModel(cfg.Model),
		)
	case "openai":
		client, err = openai.New(
			openai.WithBaseURL(cfg.BaseURL),
			openai.WithToken(strings.TrimPrefix(cfg.APIKey, "Bearer ")),
			openai.WithEmbeddingModel(cfg.Model),
		)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	return func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedQuery(ctx, text)
	}, nil
}
