package fsutil

// FileStore provides an interface for the file system operations the
// service needs: scratch files during ingestion and the lifecycle of
// the index directory.
type FileStore interface {
	// ReadFile reads a file and returns its contents
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary
	WriteFile(path string, data []byte) error

	// Remove removes a single file
	Remove(path string) error

	// MakeDirectory creates a new directory and all necessary parents
	MakeDirectory(path string) error

	// RemoveAll removes a path and any children it contains
	RemoveAll(path string) error

	// Exists reports whether the path exists
	Exists(path string) bool
}
