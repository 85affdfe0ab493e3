// Package extract turns source documents into plain text for prompt
// grounding. It supports PDF, plain text/markdown, and HTML, sniffing the
// real format from file contents rather than trusting the extension.
package extract

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Source produces the full text of a document. The same identifier must
// yield the same text within a process run; no other caching contract.
type Source interface {
	ExtractFullText(path string) (string, error)
}

// NotFoundError reports a document path that does not resolve to
// readable content.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// FileSource reads documents from the local filesystem.
type FileSource struct{}

// NewFileSource creates a filesystem-backed Source.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// ExtractFullText reads the document at path and returns its text content.
// A missing or unreadable path fails with *NotFoundError.
func (s *FileSource) ExtractFullText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Path: path, Err: err}
		}
		return "", fmt.Errorf("read document %s: %w", path, err)
	}
	if len(data) == 0 {
		return "", &NotFoundError{Path: path, Err: fmt.Errorf("empty file")}
	}

	switch {
	case isPDF(data):
		return extractPDF(data)
	case looksLikeHTML(data):
		return extractHTML(string(data)), nil
	case isProbablyText(data):
		return normalizeText(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported document type: %s", path)
	}
}

// ExtractPreview returns at most maxBytes of the document's text. The
// core pipeline truncates in its prompt builders; this variant exists for
// callers that want a cheap peek, mirroring the page-limited extraction
// of the PDF loader this package grew out of.
func (s *FileSource) ExtractPreview(path string, maxBytes int) (string, error) {
	text, err := s.ExtractFullText(path)
	if err != nil {
		return "", err
	}
	return Truncate(text, maxBytes), nil
}

// Truncate bounds s to at most max bytes without splitting a multi-byte
// rune at the cut. max <= 0 means no bound.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isPDF(b []byte) bool {
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

func looksLikeHTML(b []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(b[:min(len(b), 2048)])))
	return strings.HasPrefix(head, "<!doctype") ||
		strings.HasPrefix(head, "<html") ||
		(strings.Contains(head, "<html") && strings.Contains(head, "<body"))
}

// isProbablyText accepts content that is mostly printable with no NUL bytes.
func isProbablyText(b []byte) bool {
	sample := b[:min(len(b), 4096)]
	good := 0
	for _, c := range sample {
		if c == 0x00 {
			return false
		}
		if c == '\n' || c == '\r' || c == '\t' || (c >= 0x20 && c <= 0x7E) || c >= 0x80 {
			good++
		}
	}
	return float64(good)/float64(len(sample)) > 0.9
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return normalizeText(string(b)), nil
}

var htmlTagRe = regexp.MustCompile(`(?s)<[^>]*>`)

func extractHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return normalizeText(s)
}

// normalizeText collapses runs of blank lines and trims trailing space,
// keeping paragraph structure intact for the prompt.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	var out []string
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
