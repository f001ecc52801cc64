// Package parser converts source files into store documents. Headings
// become sections, the first paragraph before any section becomes the
// description, and lists and code blocks are kept as such.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docdesk/internal/docstore"
)

// Parser converts raw document bytes into a Document. The returned
// document has no ID; callers assign one.
type Parser interface {
	Parse(r io.Reader, filename string) (*docstore.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// baseTitle is the fallback title: the file name without its extension.
func baseTitle(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// builder accumulates a document from a stream of blocks.
type builder struct {
	doc    *docstore.Document
	titled bool
}

func newBuilder(filename string) *builder {
	return &builder{doc: &docstore.Document{Title: baseTitle(filename)}}
}

// heading takes the first level-1 heading as the title. Every other
// heading starts a section.
func (b *builder) heading(level int, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if level == 1 && !b.titled {
		b.doc.Title = text
		b.titled = true
		return
	}
	b.doc.Sections = append(b.doc.Sections, docstore.Section{Heading: text})
}

func (b *builder) paragraph(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if b.doc.Description == "" && len(b.doc.Sections) == 0 {
		b.doc.Description = text
		return
	}
	s := b.current()
	if s.Content != "" {
		s.Content += "\n\n"
	}
	s.Content += text
}

func (b *builder) list(items []string) {
	var kept []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return
	}
	s := b.current()
	s.List = append(s.List, kept...)
}

func (b *builder) code(code string) {
	code = strings.TrimRight(code, "\n")
	if strings.TrimSpace(code) == "" {
		return
	}
	s := b.current()
	s.CodeBlocks = append(s.CodeBlocks, docstore.CodeBlock{Code: code})
}

func (b *builder) current() *docstore.Section {
	if len(b.doc.Sections) == 0 {
		b.doc.Sections = append(b.doc.Sections, docstore.Section{})
	}
	return &b.doc.Sections[len(b.doc.Sections)-1]
}

func (b *builder) build() *docstore.Document {
	if b.doc.Sections == nil {
		b.doc.Sections = []docstore.Section{}
	}
	return b.doc
}
