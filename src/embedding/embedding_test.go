package embedding_test

import (
	"testing"

	"pdfqa/src/embedding"
)

func TestNewFunc(t *testing.T) {
	tests := []struct {
		name    string
		cfg     embedding.Config
		wantErr bool
	}{
		{
			name: "ollama provider",
			cfg: embedding.Config{
				Provider: "ollama",
				BaseURL:  "http://localhost:11434",
				Model:    "nomic-embed-text",
			},
		},
		{
			name: "openai compatible provider",
			cfg: embedding.Config{
				Provider: "openai",
				BaseURL:  "http://localhost:9999/v1",
				APIKey:   "test-key",
				Model:    "text-embedding-3-small",
			},
		},
		{
			name: "provider name is case insensitive",
			cfg: embedding.Config{
				Provider: "Ollama",
				BaseURL:  "http://localhost:11434",
				Model:    "nomic-embed-text",
			},
		},
		{
			name:    "unknown provider",
			cfg:     embedding.Config{Provider: "weaviate"},
			wantErr: true,
		},
		{
			name:    "empty provider",
			cfg:     embedding.Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := embedding.NewFunc(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("NewFunc() returned no error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFunc() error: %v", err)
			}
			if fn == nil {
				t.Error("NewFunc() returned a nil function")
			}
		})
	}
}
