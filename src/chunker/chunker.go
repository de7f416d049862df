package chunker

import (
	"strings"
)

const (
	// DefaultChunkSize is the target chunk length in characters.
	DefaultChunkSize = 1000
	// DefaultChunkOverlap is the number of characters shared between
	// neighboring chunks.
	DefaultChunkOverlap = 200
)

// Splitter breaks raw text into overlapping fixed-size windows. Length
// is measured in characters (runes), with no sentence or semantic
// awareness beyond a short lookback for a clean break point.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

// New returns a Splitter with the given chunk size and overlap.
// Non-positive sizes fall back to the defaults; an overlap that is not
// smaller than the chunk size is clamped to half the chunk size.
func New(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = DefaultChunkOverlap
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 2
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// Split returns the overlapping chunks of content. Content no longer
// than the chunk size is returned as a single chunk; empty content
// yields no chunks.
func (s *Splitter) Split(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	runes := []rune(content)
	total := len(runes)
	if total <= s.chunkSize {
		return []string{content}
	}

	step := s.chunkSize - s.chunkOverlap
	var chunks []string
	for start := 0; start < total; start += step {
		end := start + s.chunkSize
		if end > total {
			end = total
		}

		// Look for a space or punctuation within the last 10% of the
		// window so chunks do not cut words mid-way.
		if end < total {
			lookBack := s.chunkSize / 10
			if lookBack > end-start {
				lookBack = end - start
			}
			for i := end - 1; i >= end-lookBack && i > start; i-- {
				if runes[i] == ' ' || runes[i] == '\n' || runes[i] == '.' {
					end = i + 1
					break
				}
			}
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	return chunks
}
