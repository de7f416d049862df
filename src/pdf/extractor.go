package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"pdfqa/src/log"
)

// Extractor pulls plain text out of PDF files page by page. Pages that
// fail to decode or carry no extractable text (scanned images, empty
// pages) contribute nothing; there is no OCR.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText reads the PDF at path and returns the concatenated text
// of all pages, trimmed. An unreadable file returns an error; an
// unreadable page is skipped.
func (e *Extractor) ExtractText(path string) (text string, err error) {
	// The underlying reader panics on some malformed documents, so a
	// broken upload must not take the whole ingestion request down.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse pdf %s: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return "", fmt.Errorf("failed to open pdf %s: %w", path, err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := extractPage(page)
		if err != nil {
			log.Debug("skipping unreadable page", "path", path, "page", i, "reason", err.Error())
			continue
		}
		if pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

func extractPage(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page decode panic: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}
