package docstore

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrDocumentNotFound is returned when a document id has no match.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrFolderNotFound is returned when a folder id has no match.
	ErrFolderNotFound = errors.New("folder not found")
)

// Decode reads a store payload without validating it against the schema.
func Decode(r io.Reader) (*Store, error) {
	var s Store
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	return &s, nil
}

// Encode writes the store as indented JSON. Nil collections are written as
// empty arrays so clients never see null.
func (s *Store) Encode(w io.Writer) error {
	out := Store{Folders: s.Folders, Files: s.Files}
	if out.Folders == nil {
		out.Folders = []Folder{}
	}
	if out.Files == nil {
		out.Files = []Document{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// FindDocument returns the document with the given id.
func (s *Store) FindDocument(id string) (*Document, error) {
	for i := range s.Files {
		if s.Files[i].ID == id {
			return &s.Files[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
}

// FindFolder looks a folder up by id breadth-first: top-level folders are
// searched first, then their direct subfolders in order, then each deeper
// level. The first match wins, so a shallower folder shadows a deeper one
// sharing its id.
func (s *Store) FindFolder(id string) (*Folder, error) {
	level := make([]*Folder, 0, len(s.Folders))
	for i := range s.Folders {
		level = append(level, &s.Folders[i])
	}
	for len(level) > 0 {
		var next []*Folder
		for _, f := range level {
			if f.ID == id {
				return f, nil
			}
			for i := range f.Subfolders {
				next = append(next, &f.Subfolders[i])
			}
		}
		level = next
	}
	return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, id)
}

// ResolveFiles returns the documents referenced by f.Files in order.
// Ids with no matching document are skipped.
func (s *Store) ResolveFiles(f *Folder) []*Document {
	docs := make([]*Document, 0, len(f.Files))
	for _, id := range f.Files {
		doc, err := s.FindDocument(id)
		if err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

// Problem is a referential-integrity finding reported by Check.
type Problem struct {
	FolderID string `json:"folder_id,omitempty"`
	DocID    string `json:"doc_id"`
	Reason   string `json:"reason"`
}

func (p Problem) String() string {
	if p.FolderID != "" {
		return fmt.Sprintf("folder %s: document %s: %s", p.FolderID, p.DocID, p.Reason)
	}
	return fmt.Sprintf("document %s: %s", p.DocID, p.Reason)
}

// Check reports duplicate document ids and folder entries that reference
// unknown documents. Neither is fatal at runtime: lookups take the first
// match and unresolved entries are skipped.
func (s *Store) Check() []Problem {
	var problems []Problem
	seen := make(map[string]bool, len(s.Files))
	for _, d := range s.Files {
		if seen[d.ID] {
			problems = append(problems, Problem{DocID: d.ID, Reason: "duplicate document id"})
		}
		seen[d.ID] = true
	}

	var walk func(f *Folder)
	walk = func(f *Folder) {
		for _, id := range f.Files {
			if !seen[id] {
				problems = append(problems, Problem{FolderID: f.ID, DocID: id, Reason: "unresolved file id"})
			}
		}
		for i := range f.Subfolders {
			walk(&f.Subfolders[i])
		}
	}
	for i := range s.Folders {
		walk(&s.Folders[i])
	}
	return problems
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

func encodeBytes(s *Store) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
