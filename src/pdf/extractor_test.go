package pdf_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pdfqa/src/pdf"
)

// buildPDF assembles a minimal single-page PDF containing the given
// text, with a hand-written xref table so offsets stay correct.
func buildPDF(text string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, 6)
	writeObj := func(n int, body string) {
		offsets[n] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", n, body)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>")
	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	writeObj(4, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	writeObj(5, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	xref := buf.Len()
	buf.WriteString("xref\n0 6\n")
	buf.WriteString("0000000000 65535 f \n")
	for n := 1; n <= 5; n++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[n])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestExtractText(t *testing.T) {
	path := writeTempFile(t, "capsule.pdf", buildPDF("The capsule pressure limit is 12 bar."))

	e := pdf.NewExtractor()
	text, err := e.ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText() error: %v", err)
	}
	if !strings.Contains(text, "12 bar") {
		t.Errorf("extracted text %q does not contain the page content", text)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	e := pdf.NewExtractor()
	if _, err := e.ExtractText(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("ExtractText() on a missing file returned no error")
	}
}

func TestExtractTextMalformedFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not a pdf at all", []byte("just some plain text, definitely not a PDF")},
		{"truncated header", []byte("%PDF-1.4\n")},
		{"empty file", nil},
	}

	e := pdf.NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "broken.pdf", tt.data)
			// Must return an error, and in particular must not panic:
			// the underlying parser panics on malformed input.
			if _, err := e.ExtractText(path); err == nil {
				t.Error("ExtractText() on malformed input returned no error")
			}
		})
	}
}
