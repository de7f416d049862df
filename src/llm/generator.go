// Package llm generates answers through a hosted OpenAI-compatible
// chat endpoint (Groq by default). The prompt constrains the model to
// the retrieved context and makes it decline when the answer is absent.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// Low temperature favors factual answers over creative ones.
	temperature = 0.1

	promptTemplate = `You are an AI assistant specialized in answering questions based on provided documents.
Use ONLY the following pieces of context (document excerpts) to answer the question.
If the context does not contain the answer, state that you don't know or the information is not available in the provided documents.
Do not make up information or use external knowledge.
Keep your answer concise and directly responsive to the question.

Context:
%s

Question: %s

Helpful Answer:`
)

// Generator calls the remote chat completion endpoint.
type Generator struct {
	apiKey  string
	baseURL string
	model   string
}

func NewGenerator(apiKey, baseURL, model string) *Generator {
	return &Generator{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
	}
}

// Available reports whether the API credential is configured. The
// credential is only required at query time.
func (g *Generator) Available() bool {
	return g.apiKey != ""
}

// Generate asks the model to answer the question from the given
// context chunks and returns the trimmed answer text.
func (g *Generator) Generate(ctx context.Context, question string, contexts []string) (string, error) {
	client, err := openai.New(
		openai.WithBaseURL(g.baseURL),
		openai.WithToken(g.apiKey),
		openai.WithModel(g.model),
	)
	if err != nil {
		return "", fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	prompt := fmt.Sprintf(promptTemplate, strings.Join(contexts, "\n\n"), question)
	answer, err := llms.GenerateFromSinglePrompt(ctx, client, prompt, llms.WithTemperature(temperature))
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}

	return strings.TrimSpace(answer), nil
}
