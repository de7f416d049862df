package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"pdfqa/src/chunker"
	"pdfqa/src/core/qa"
	"pdfqa/src/embedding"
	"pdfqa/src/fsutil"
	"pdfqa/src/index"
	"pdfqa/src/llm"
	"pdfqa/src/log"
	"pdfqa/src/pdf"
)

// buildService assembles the question answering pipeline from the
// viper configuration. An embedding initialization failure is logged
// and leaves the service without an index store, matching the policy
// that the process starts anyway and rejects document operations.
func buildService() (qa.Service, error) {
	fs := fsutil.NewLocalFileStore()

	uploadDir := viper.GetString("upload.dir")
	indexDir := viper.GetString("index.dir")
	if err := fs.MakeDirectory(uploadDir); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", uploadDir, err)
	}
	if err := fs.MakeDirectory(indexDir); err != nil {
		return nil, fmt.Errorf("failed to create index directory %s: %w", indexDir, err)
	}

	var store qa.IndexStore
	embedFn, err := embedding.NewFunc(embedding.Config{
		Provider: viper.GetString("embedding.provider"),
		BaseURL:  viper.GetString("embedding.base_url"),
		APIKey:   viper.GetString("embedding.api_key"),
		Model:    viper.GetString("embedding.model"),
	})
	if err != nil {
		log.Error(err, "Failed to initialize embedding function, document operations will be unavailable")
	} else {
		store = index.NewStore(indexDir, embedFn, fs)
	}

	generator := llm.NewGenerator(
		viper.GetString("groq.api_key"),
		viper.GetString("groq.base_url"),
		viper.GetString("groq.model"),
	)

	splitter := chunker.New(
		viper.GetInt("rag.chunk_size"),
		viper.GetInt("rag.chunk_overlap"),
	)

	return qa.NewService(store, pdf.NewExtractor(), splitter, generator, fs, uploadDir), nil
}
