package qa

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"pdfqa/src/fsutil"
	"pdfqa/src/log"
)

const (
	// retrievalLimit is how many nearest chunks back an answer.
	retrievalLimit = 3
	// previewLength is the number of characters of chunk content shown
	// per source document.
	previewLength = 250
)

type service struct {
	mu    sync.Mutex
	index Index

	store     IndexStore
	extractor Extractor
	chunker   Chunker
	generator Generator
	fs        fsutil.FileStore
	uploadDir string
}

// NewService wires the pipeline together. A nil store means the
// embedding function failed to initialize; the service still serves
// requests but rejects ingestion and querying with configuration errors.
func NewService(store IndexStore, extractor Extractor, chunker Chunker, generator Generator, fs fsutil.FileStore, uploadDir string) Service {
	return &service{
		store:     store,
		extractor: extractor,
		chunker:   chunker,
		generator: generator,
		fs:        fs,
		uploadDir: uploadDir,
	}
}

func (s *service) LoadIndex(ctx context.Context) {
	if s.store == nil {
		log.Info("embedding function not initialized, starting without an index")
		return
	}

	idx, err := s.store.Load(ctx)
	if err != nil {
		log.Error(err, "failed to load persisted index, starting without one")
		return
	}
	if idx == nil {
		log.Info("no persisted index found, a new one will be created on first upload")
		return
	}

	s.mu.Lock()
	s.index = idx
	s.mu.Unlock()
	log.Info("persisted index loaded", "chunks", idx.Count())
}

func (s *service) Ingest(ctx context.Context, uploads []Upload) (*IngestReport, error) {
	if s.store == nil {
		return nil, ErrEmbedderNotReady
	}

	report := &IngestReport{}
	var pending []Chunk
	validFiles := 0

	for _, upload := range uploads {
		result, chunks := s.processUpload(upload)
		report.Results = append(report.Results, result)
		if result.Status == FileIndexed || result.Reason == reasonNoText || result.Reason == reasonNoChunks {
			validFiles++
		}
		if result.Status == FileIndexed {
			report.DocumentsIndexed++
			report.TotalChunks += result.Chunks
			pending = append(pending, chunks...)
		}
	}

	if len(pending) == 0 {
		if validFiles == 0 && len(uploads) > 0 {
			return nil, ErrNoValidDocuments
		}
		return report, nil
	}

	// Index mutation and persistence form one transaction: concurrent
	// ingestion requests serialize here so neither the in-memory index
	// nor the on-disk snapshot loses an update.
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		idx, err := s.store.Create(ctx, pending)
		if err != nil {
			return nil, fmt.Errorf("failed to create vector index: %w", err)
		}
		s.index = idx
	} else {
		if err := s.index.Add(ctx, pending); err != nil {
			return nil, fmt.Errorf("failed to update vector index: %w", err)
		}
	}

	if err := s.index.Save(); err != nil {
		return nil, fmt.Errorf("failed to persist vector index: %w", err)
	}

	log.Info("ingestion complete",
		"documents_indexed", report.DocumentsIndexed,
		"total_chunks", report.TotalChunks)
	return report, nil
}

const (
	reasonMissingFilename = "missing filename"
	reasonNotPDF          = "not a .pdf file"
	reasonNoText          = "no extractable text"
	reasonNoChunks        = "text too short to chunk"
)

// processUpload writes the upload to a scratch path, extracts and
// chunks its text, and removes the scratch file again whatever happens.
func (s *service) processUpload(upload Upload) (FileResult, []Chunk) {
	result := FileResult{Filename: upload.Filename}

	if upload.Filename == "" {
		log.Info("skipping upload without a filename")
		result.Status = FileSkipped
		result.Reason = reasonMissingFilename
		return result, nil
	}
	if strings.ToLower(filepath.Ext(upload.Filename)) != ".pdf" {
		log.Info("skipping non-PDF upload", "filename", upload.Filename)
		result.Status = FileSkipped
		result.Reason = reasonNotPDF
		return result, nil
	}

	scratchPath := filepath.Join(s.uploadDir, filepath.Base(upload.Filename))
	if err := s.fs.WriteFile(scratchPath, upload.Data); err != nil {
		log.Error(err, "failed to write scratch file", "filename", upload.Filename)
		result.Status = FileFailed
		result.Reason = err.Error()
		return result, nil
	}
	defer func() {
		if err := s.fs.Remove(scratchPath); err != nil {
			log.Error(err, "failed to remove scratch file", "path", scratchPath)
		}
	}()

	text, err := s.extractor.ExtractText(scratchPath)
	if err != nil {
		log.Error(err, "failed to extract text", "filename", upload.Filename)
		result.Status = FileFailed
		result.Reason = err.Error()
		return result, nil
	}
	if text == "" {
		log.Info("no text extracted, file may be image-based or empty", "filename", upload.Filename)
		result.Status = FileSkipped
		result.Reason = reasonNoText
		return result, nil
	}

	pieces := s.chunker.Split(text)
	if len(pieces) == 0 {
		result.Status = FileSkipped
		result.Reason = reasonNoChunks
		return result, nil
	}

	chunks := make([]Chunk, 0, len(pieces))
	for _, piece := range pieces {
		chunks = append(chunks, Chunk{
			ID:             uuid.New().String(),
			Content:        piece,
			SourceFilename: upload.Filename,
		})
	}

	result.Status = FileIndexed
	result.Chunks = len(chunks)
	log.Debug("file chunked", "filename", upload.Filename, "chunks", len(chunks))
	return result, chunks
}

func (s *service) Ask(ctx context.Context, question string) (*Answer, error) {
	s.mu.Lock()
	idx := s.index
	s.mu.Unlock()

	if idx == nil {
		return nil, ErrNoIndex
	}
	if !s.generator.Available() {
		return nil, ErrLLMNotConfigured
	}
	if strings.TrimSpace(question) == "" {
		return nil, ErrBlankQuestion
	}

	retrieved, err := idx.Search(ctx, question, retrievalLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve context: %w", err)
	}

	contexts := make([]string, 0, len(retrieved))
	for _, r := range retrieved {
		contexts = append(contexts, r.Content)
	}

	answer, err := s.generator.Generate(ctx, question, contexts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}

	sources := make([]SourceDocument, 0, len(retrieved))
	for _, r := range retrieved {
		sources = append(sources, SourceDocument{
			SourceFilename: r.SourceFilename,
			ContentPreview: preview(r.Content),
		})
	}

	return &Answer{
		Answer:  strings.TrimSpace(answer),
		Sources: sources,
	}, nil
}

func (s *service) Reset(ctx context.Context) error {
	// The in-memory index is cleared first and unconditionally; a
	// failing disk cleanup must not leave stale chunks answerable.
	s.mu.Lock()
	s.index = nil
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.Reset(); err != nil {
		return fmt.Errorf("could not fully reset index directory: %w", err)
	}
	log.Info("index reset")
	return nil
}

func (s *service) Status(ctx context.Context) Status {
	s.mu.Lock()
	idx := s.index
	s.mu.Unlock()

	if idx == nil {
		return Status{}
	}
	return Status{IndexLoaded: true, Chunks: idx.Count()}
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) > previewLength {
		runes = runes[:previewLength]
	}
	return string(runes) + "..."
}
