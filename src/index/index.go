// Package index persists embedded chunks in a chromem-go collection.
// The collection lives in memory and is exported to a single file
// inside the index directory on every save, then imported wholesale at
// startup, so the on-disk form is always a complete snapshot.
package index

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/philippgille/chromem-go"

	"pdfqa/src/core/qa"
	"pdfqa/src/fsutil"
)

const (
	collectionName = "documents"
	indexFileName  = "index.gob"
	compress       = false

	metadataSourceFilename = "source_filename"
)

// Store creates, loads and resets the persisted index directory.
type Store struct {
	dir   string
	embed chromem.EmbeddingFunc
	fs    fsutil.FileStore
}

func NewStore(dir string, embed chromem.EmbeddingFunc, fs fsutil.FileStore) *Store {
	return &Store{
		dir:   dir,
		embed: embed,
		fs:    fs,
	}
}

func (s *Store) filePath() string {
	return filepath.Join(s.dir, indexFileName)
}

// Load imports the persisted snapshot. It returns (nil, nil) when no
// snapshot file exists.
func (s *Store) Load(ctx context.Context) (qa.Index, error) {
	path := s.filePath()
	if !s.fs.Exists(path) {
		return nil, nil
	}

	db := chromem.NewDB()
	if err := db.ImportFromFile(path, ""); err != nil {
		return nil, fmt.Errorf("failed to import index from %s: %w", path, err)
	}

	col := db.GetCollection(collectionName, s.embed)
	if col == nil {
		return nil, fmt.Errorf("index file %s holds no %q collection", path, collectionName)
	}

	return &Index{db: db, collection: col, path: path}, nil
}

// Create builds a fresh in-memory index seeded with the given chunks.
func (s *Store) Create(ctx context.Context, chunks []qa.Chunk) (qa.Index, error) {
	db := chromem.NewDB()
	col, err := db.CreateCollection(collectionName, nil, s.embed)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	idx := &Index{db: db, collection: col, path: s.filePath()}
	if len(chunks) > 0 {
		if err := idx.Add(ctx, chunks); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Reset removes the index directory and recreates it empty so later
// saves succeed. The directory is recreated even when removal fails.
func (s *Store) Reset() error {
	rmErr := s.fs.RemoveAll(s.dir)
	if err := s.fs.MakeDirectory(s.dir); err != nil && rmErr == nil {
		rmErr = err
	}
	return rmErr
}

// Index is an append-only similarity index over embedded chunks.
type Index struct {
	db         *chromem.DB
	collection *chromem.Collection
	path       string
}

// Add embeds the chunks and appends them to the collection.
func (i *Index) Add(ctx context.Context, chunks []qa.Chunk) error {
	docs := make([]chromem.Document, 0, len(chunks))
	for _, chunk := range chunks {
		docs = append(docs, chromem.Document{
			ID:      chunk.ID,
			Content: chunk.Content,
			Metadata: map[string]string{
				metadataSourceFilename: chunk.SourceFilename,
			},
		})
	}

	if err := i.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents to index: %w", err)
	}
	return nil
}

// Search returns up to k chunks nearest to the query by embedding
// similarity, most similar first.
func (i *Index) Search(ctx context.Context, query string, k int) ([]qa.Retrieved, error) {
	if count := i.collection.Count(); k > count {
		k = count
	}
	if k <= 0 {
		return nil, nil
	}

	results, err := i.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}

	retrieved := make([]qa.Retrieved, 0, len(results))
	for _, r := range results {
		retrieved = append(retrieved, qa.Retrieved{
			Content:        r.Content,
			SourceFilename: r.Metadata[metadataSourceFilename],
			Similarity:     r.Similarity,
		})
	}
	return retrieved, nil
}

// Count returns the number of chunks held by the index.
func (i *Index) Count() int {
	return i.collection.Count()
}

// Save exports the whole collection to the snapshot file, replacing
// any previous snapshot.
func (i *Index) Save() error {
	if err := i.db.ExportToFile(i.path, compress, "", collectionName); err != nil {
		return fmt.Errorf("failed to export index to %s: %w", i.path, err)
	}
	return nil
}
