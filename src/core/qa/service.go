package qa

import (
	"context"
	"errors"
)

// Sentinel errors returned by the service. The HTTP layer maps these
// onto status codes; everything else is treated as a server failure.
var (
	// ErrNoValidDocuments means an upload contained files but none of
	// them could be indexed.
	ErrNoValidDocuments = errors.New("no PDF files provided were valid or processable")

	// ErrNoIndex means a question arrived before any document was indexed.
	ErrNoIndex = errors.New("no documents have been indexed yet, upload documents first")

	// ErrBlankQuestion means the question was empty or whitespace only.
	ErrBlankQuestion = errors.New("question cannot be empty")

	// ErrLLMNotConfigured means the LLM credential is absent on the server.
	ErrLLMNotConfigured = errors.New("LLM API key is not configured on the server")

	// ErrEmbedderNotReady means the embedding function failed to
	// initialize at startup, so documents cannot be processed.
	ErrEmbedderNotReady = errors.New("embedding function is not initialized")
)

// Upload is a single named byte stream received from a client.
type Upload struct {
	Filename string
	Data     []byte
}

// Chunk is a bounded span of extracted text plus its source metadata.
// Chunks are immutable once handed to the index.
type Chunk struct {
	ID             string
	Content        string
	SourceFilename string
}

// Retrieved is a chunk returned by a similarity search.
type Retrieved struct {
	Content        string
	SourceFilename string
	Similarity     float32
}

// FileStatus tags the outcome of processing one uploaded file.
type FileStatus string

const (
	FileIndexed FileStatus = "indexed"
	FileSkipped FileStatus = "skipped"
	FileFailed  FileStatus = "failed"
)

// FileResult is the per-file outcome of an ingestion request.
type FileResult struct {
	Filename string     `json:"filename"`
	Status   FileStatus `json:"status"`
	Reason   string     `json:"reason,omitempty"`
	Chunks   int        `json:"chunks"`
}

// IngestReport aggregates the outcomes of one ingestion request.
type IngestReport struct {
	Results          []FileResult
	DocumentsIndexed int
	TotalChunks      int
}

// SourceDocument is a reference to a retrieved chunk shown alongside an
// answer.
type SourceDocument struct {
	SourceFilename string `json:"source_filename"`
	ContentPreview string `json:"content_preview"`
}

// Answer is a generated answer plus the retrieved chunks it was built from.
type Answer struct {
	Answer  string           `json:"answer"`
	Sources []SourceDocument `json:"source_documents"`
}

// Status describes the current state of the index for health reporting.
type Status struct {
	IndexLoaded bool `json:"index_loaded"`
	Chunks      int  `json:"chunks"`
}

// Extractor pulls plain text out of a document on disk.
type Extractor interface {
	ExtractText(path string) (string, error)
}

// Chunker splits raw text into bounded overlapping chunks.
type Chunker interface {
	Split(text string) []string
}

// Index is a similarity-searchable store of embedded chunks. Add and
// Search may be called concurrently only under the service's ownership.
type Index interface {
	Add(ctx context.Context, chunks []Chunk) error
	Search(ctx context.Context, query string, k int) ([]Retrieved, error)
	Count() int
	Save() error
}

// IndexStore creates, loads and resets the persisted index.
type IndexStore interface {
	// Load returns the persisted index, or (nil, nil) when none exists.
	Load(ctx context.Context) (Index, error)
	// Create builds a fresh index from the given chunks.
	Create(ctx context.Context, chunks []Chunk) (Index, error)
	// Reset deletes the persisted index directory and recreates it empty.
	Reset() error
}

// Generator produces an answer from a question and retrieved context
// via the remote LLM.
type Generator interface {
	// Available reports whether the remote credential is configured.
	Available() bool
	Generate(ctx context.Context, question string, contexts []string) (string, error)
}

// Service exposes the three operations of the pipeline plus startup
// loading and health status.
type Service interface {
	// LoadIndex attempts to load the persisted index. Failures leave
	// the index unset and are logged, never propagated.
	LoadIndex(ctx context.Context)

	// Ingest processes uploaded files into the index and persists it.
	Ingest(ctx context.Context, uploads []Upload) (*IngestReport, error)

	// Ask answers a question from the indexed documents.
	Ask(ctx context.Context, question string) (*Answer, error)

	// Reset clears the in-memory index and deletes its persisted form.
	Reset(ctx context.Context) error

	// Status reports whether an index is loaded and how many chunks it holds.
	Status(ctx context.Context) Status
}
